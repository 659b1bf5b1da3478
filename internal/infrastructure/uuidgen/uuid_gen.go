package uuidgen

import (
	"github.com/google/uuid"

	"github.com/bereketsol/Reelbite/internal/domain/contract"
)

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID string.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
