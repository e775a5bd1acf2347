package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDSequenceGenerator implements usecase.SequenceGenerator with
// entity-prefixed ULIDs.
type ULIDSequenceGenerator struct{}

// NewULIDSequenceGenerator creates a new ULIDSequenceGenerator.
func NewULIDSequenceGenerator() *ULIDSequenceGenerator {
	return &ULIDSequenceGenerator{}
}

// NextSequence generates a new id for the given entity.
func (g *ULIDSequenceGenerator) NextSequence(entity string) string {
	return entity + "-" + ulid.Make().String()
}
