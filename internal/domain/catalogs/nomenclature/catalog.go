package nomenclature

import (
	"strings"

	"boukir/internal/domain/catalogs/unit"
)

// Catalog indexes products, variants and units by id for the report pass.
// A nil *Catalog behaves like an empty one.
type Catalog struct {
	products map[string]*Product
	variants map[string]map[string]*Variant
	units    map[string]*unit.Unit
	ptUnits  map[string]map[string]*unit.Unit
}

// NewCatalog builds the index. Units listed on products are indexed per
// product; standalone units form the global unit index. Later duplicates win.
func NewCatalog(products []Product, units []unit.Unit) *Catalog {
	c := &Catalog{
		products: make(map[string]*Product, len(products)),
		variants: make(map[string]map[string]*Variant),
		units:    make(map[string]*unit.Unit, len(units)),
		ptUnits:  make(map[string]map[string]*unit.Unit),
	}

	for i := range units {
		u := &units[i]
		c.units[key(u.ID)] = u
	}

	for i := range products {
		p := &products[i]
		pid := key(p.ID)
		if pid == "" {
			continue
		}
		c.products[pid] = p

		if len(p.Variants) > 0 {
			vs := make(map[string]*Variant, len(p.Variants))
			for j := range p.Variants {
				vs[key(p.Variants[j].ID)] = &p.Variants[j]
			}
			c.variants[pid] = vs
		}
		if len(p.Units) > 0 {
			us := make(map[string]*unit.Unit, len(p.Units))
			for j := range p.Units {
				us[key(p.Units[j].ID)] = &p.Units[j]
			}
			c.ptUnits[pid] = us
		}
	}
	return c
}

// Product looks up a product by id.
func (c *Catalog) Product(productID string) (*Product, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.products[key(productID)]
	return p, ok
}

// Variant looks up a variant of a product.
func (c *Catalog) Variant(productID, variantID string) (*Variant, bool) {
	if c == nil || key(variantID) == "" {
		return nil, false
	}
	v, ok := c.variants[key(productID)][key(variantID)]
	return v, ok
}

// Unit looks up a unit, first among the product's units, then globally.
func (c *Catalog) Unit(productID, unitID string) (*unit.Unit, bool) {
	if c == nil || key(unitID) == "" {
		return nil, false
	}
	if u, ok := c.ptUnits[key(productID)][key(unitID)]; ok {
		return u, true
	}
	u, ok := c.units[key(unitID)]
	return u, ok
}

// Len returns the number of indexed products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

func key(id string) string {
	return strings.TrimSpace(id)
}
