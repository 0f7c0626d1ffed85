package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by session tokens. ID duplicates the
// subject so that clients decoding the payload find the user id under "id".
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or cookies.
//
// UserID is the owner identifier extracted from the verified claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "id"/"sub" claims.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
