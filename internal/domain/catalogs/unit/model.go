// Package unit provides the Unit catalog (units of measure a product is sold in).
package unit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit represents a measurement unit attached to a product.
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Symbol is the short symbol (e.g., "kg", "pcs", "box")
	Symbol string `json:"symbol,omitempty"`

	// ConversionFactor is the multiplier from this unit to the product's base unit,
	// e.g. a box of 12 pieces has factor 12.
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
}

// NewUnit creates a Unit with the given factor.
func NewUnit(id, name string, factor decimal.Decimal) Unit {
	return Unit{ID: id, Name: name, ConversionFactor: factor}
}

// EffectiveFactor returns the conversion factor, or 1 when it is missing,
// zero or negative.
func (u Unit) EffectiveFactor() decimal.Decimal {
	if !u.ConversionFactor.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return u.ConversionFactor
}

// DisplayName returns the name, falling back to the symbol.
func (u Unit) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.Symbol
}
