package utils

import "github.com/google/uuid"

// UUIDGenerator produces entity identifiers. Version 7 UUIDs are time-ordered,
// which keeps index inserts local; on failure a random v4 is returned.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical string form.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
