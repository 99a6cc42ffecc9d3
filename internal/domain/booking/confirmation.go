package booking

import "github.com/google/uuid"

// CodeGenerator produces confirmation codes for new bookings. Codes must be
// unguessable; uniqueness is probabilistic, so the ledger re-checks before
// commit and retries generation on the rare collision.
type CodeGenerator interface {
	Generate() string
}

// UUIDCodeGenerator issues random version-4 UUIDs rendered as text.
type UUIDCodeGenerator struct{}

// NewUUIDCodeGenerator creates a new UUIDCodeGenerator.
func NewUUIDCodeGenerator() *UUIDCodeGenerator {
	return &UUIDCodeGenerator{}
}

// Generate returns a fresh random confirmation code.
func (g *UUIDCodeGenerator) Generate() string {
	return uuid.NewString()
}
