package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFilter has AND semantics across fields, OR semantics within each field slice
type ProductFilter struct {
	ExcludeIDs    []uuid.UUID
	Categories    []string
	AvailableOnly bool
	MaxPrice      *decimal.Decimal
}

func (f ProductFilter) Validate() error {
	if len(f.Categories) == 0 && !f.AvailableOnly && f.MaxPrice == nil {
		return errors.New("all fields are empty")
	}

	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return errors.New("maxPrice is negative")
	}

	return nil
}
