package nomenclature

import (
	"strings"

	"github.com/shopspring/decimal"

	"boukir/internal/core/types"
	"boukir/internal/domain/documents"
)

// CostSource names the fallback step that supplied a line's raw unit cost.
type CostSource string

const (
	CostFromVariantCost     CostSource = "variant_cost"
	CostFromVariantPurchase CostSource = "variant_purchase"
	CostFromLineSnapshot    CostSource = "line_snapshot"
	CostFromProduct         CostSource = "product"
	CostNone                CostSource = "none"
)

// Cost is the resolved unit cost of a line item.
type Cost struct {
	Raw      decimal.Decimal
	Factor   decimal.Decimal
	Adjusted decimal.Decimal
	Source   CostSource

	VariantName string
	UnitName    string

	// ProductKnown is false when the product id is not in the catalog.
	ProductKnown bool
}

// CostResolver resolves line unit costs against a catalog.
type CostResolver struct {
	catalog *Catalog
}

// NewCostResolver creates a CostResolver. A nil catalog is allowed.
func NewCostResolver(catalog *Catalog) *CostResolver {
	return &CostResolver{catalog: catalog}
}

// Resolve returns the adjusted unit cost of a line:
//
//  1. variant cost basis (when the variant exists in the catalog)
//  2. variant purchase price
//  3. line snapshot cost basis, then line snapshot purchase price
//  4. product cost basis, then product purchase price
//  5. zero
//
// The first non-zero value wins and is multiplied by the line unit's
// conversion factor (1 when the unit is unknown or its factor is not positive).
func (r *CostResolver) Resolve(line documents.LineItem) Cost {
	productID := line.ProductID
	product, productOK := r.catalog.Product(productID)
	variant, variantOK := r.catalog.Variant(productID, line.VariantID)

	out := Cost{
		Raw:          decimal.Zero,
		Factor:       types.One(),
		Source:       CostNone,
		ProductKnown: productOK,
	}

	switch {
	case variantOK && !variant.CostBasis.IsZero():
		out.Raw, out.Source = variant.CostBasis, CostFromVariantCost
	case variantOK && !variant.PurchasePrice.IsZero():
		out.Raw, out.Source = variant.PurchasePrice, CostFromVariantPurchase
	default:
		if snap := firstNonZero(line.CostBasis.Money(), line.PurchasePrice.Money()); !snap.IsZero() {
			out.Raw, out.Source = snap, CostFromLineSnapshot
		} else if productOK {
			if pc := product.Cost(); !pc.IsZero() {
				out.Raw, out.Source = pc, CostFromProduct
			}
		}
	}

	u, unitOK := r.catalog.Unit(productID, line.UnitID)
	if unitOK {
		out.Factor = u.EffectiveFactor()
	}
	out.Adjusted = out.Raw.Mul(out.Factor)

	out.VariantName = strings.TrimSpace(line.VariantName)
	if out.VariantName == "" && variantOK {
		out.VariantName = variant.Name
	}
	out.UnitName = strings.TrimSpace(line.UnitName)
	if out.UnitName == "" && unitOK {
		out.UnitName = u.DisplayName()
	}
	return out
}
