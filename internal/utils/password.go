package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of plain using cost. A cost outside
// the range bcrypt accepts falls back to [bcrypt.DefaultCost].
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest is
// a mismatch, not an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// PasswordHasher is the credential codec: a one-way, salted bcrypt transform.
// The cost factor is fixed at construction; the hasher is safe for
// concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost. Out-of-range costs are
// handled by [HashPassword].
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt digest of plain. A fresh salt is embedded in every
// digest, so hashing the same input twice yields different strings.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	return HashPassword(plain, h.cost)
}

// Compare reports whether plain matches digest.
func (h *PasswordHasher) Compare(plain, digest string) bool {
	return CheckPassword(plain, digest)
}
