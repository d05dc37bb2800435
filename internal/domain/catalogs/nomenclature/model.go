// Package nomenclature provides the product catalog (produits, variantes) and
// the unit cost resolution used for profit computation.
package nomenclature

import (
	"strings"

	"github.com/shopspring/decimal"

	"boukir/internal/domain/catalogs/unit"
)

// Product is a catalog product with its fallback cost fields.
type Product struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	Name      string `json:"name"`

	// CostBasis is the cost of goods (coût de revient)
	CostBasis decimal.Decimal `json:"costBasis"`

	// PurchasePrice is the last purchase price (prix d'achat)
	PurchasePrice decimal.Decimal `json:"purchasePrice"`

	Variants []Variant   `json:"variants,omitempty"`
	Units    []unit.Unit `json:"units,omitempty"`
}

// Variant is a product variant (size, colour...) with its own cost fields.
type Variant struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// Cost returns the first non-zero of cost basis and purchase price.
func (p *Product) Cost() decimal.Decimal {
	return firstNonZero(p.CostBasis, p.PurchasePrice)
}

// DisplayName returns the product name, falling back to reference then id.
func (p *Product) DisplayName() string {
	switch {
	case strings.TrimSpace(p.Name) != "":
		return p.Name
	case strings.TrimSpace(p.Reference) != "":
		return p.Reference
	}
	return p.ID
}

func firstNonZero(values ...decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}
