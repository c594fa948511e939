package crypto

import "github.com/google/uuid"

// UUIDGenerator implements [TokenGenerator] using UUIDs: 122 random bits
// plus a timestamp component in the v7 layout, far beyond the collision
// budget of this service.
type UUIDGenerator struct {
}

// NewUUIDGenerator constructs a [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Next returns a fresh opaque token. UUID v7 is preferred; on the rare
// entropy-source failure it falls back to v4.
func (g *UUIDGenerator) Next() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
