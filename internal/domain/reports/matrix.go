package reports

import (
	"cmp"
	"slices"
)

// ProductRow is one displayed row of the product-keyed matrix.
type ProductRow struct {
	ProductID string        `json:"productId"`
	Name      string        `json:"name,omitempty"`
	Stats     *ProductStats `json:"stats"`
}

// CounterpartyRow is one displayed row of the counterparty-keyed matrix.
type CounterpartyRow struct {
	CounterpartyID string             `json:"counterpartyId"`
	Stats          *CounterpartyStats `json:"stats"`
}

// TopProducts returns the n products with the highest signed amount, or only
// selectedID when it is set (nothing if it had no activity). n <= 0 means
// DefaultTopN.
func (r *Report) TopProducts(selectedID string, n int) []ProductRow {
	if selectedID != "" {
		stats, ok := r.Products[selectedID]
		if !ok {
			return nil
		}
		return []ProductRow{{ProductID: selectedID, Name: r.productNames[selectedID], Stats: stats}}
	}

	rows := make([]ProductRow, 0, len(r.Products))
	for pid, stats := range r.Products {
		rows = append(rows, ProductRow{ProductID: pid, Name: r.productNames[pid], Stats: stats})
	}
	slices.SortFunc(rows, func(a, b ProductRow) int {
		if c := b.Stats.Amount.Cmp(a.Stats.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return head(rows, n)
}

// TopCounterparties is TopProducts for the counterparty-keyed matrix.
func (r *Report) TopCounterparties(selectedID string, n int) []CounterpartyRow {
	if selectedID != "" {
		stats, ok := r.Counterparties[selectedID]
		if !ok {
			return nil
		}
		return []CounterpartyRow{{CounterpartyID: selectedID, Stats: stats}}
	}

	rows := make([]CounterpartyRow, 0, len(r.Counterparties))
	for cid, stats := range r.Counterparties {
		rows = append(rows, CounterpartyRow{CounterpartyID: cid, Stats: stats})
	}
	slices.SortFunc(rows, func(a, b CounterpartyRow) int {
		if c := b.Stats.Amount.Cmp(a.Stats.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.CounterpartyID, b.CounterpartyID)
	})
	return head(rows, n)
}

// SelectedProducts applies the report's own selection and top-N options.
func (r *Report) SelectedProducts() []ProductRow {
	return r.TopProducts(r.Options.SelectedProductID, r.Options.topN())
}

// SelectedCounterparties applies the report's own selection and top-N options.
func (r *Report) SelectedCounterparties() []CounterpartyRow {
	return r.TopCounterparties(r.Options.SelectedCounterpartyID, r.Options.topN())
}

// Pair returns the stats of one (product, counterparty) pair.
func (r *Report) Pair(productID, counterpartyID string) (*PairStats, bool) {
	product, ok := r.Products[productID]
	if !ok {
		return nil, false
	}
	pair, ok := product.Counterparties[counterpartyID]
	return pair, ok
}

// PairLedger computes the drill-down ledger of one pair.
func (r *Report) PairLedger(productID, counterpartyID string) ([]LedgerRow, bool) {
	pair, ok := r.Pair(productID, counterpartyID)
	if !ok {
		return nil, false
	}
	return Ledger(pair.Details), true
}

// ExpandedSet is the set of pairs the render layer currently shows expanded.
// It belongs to the caller; the report never stores it.
type ExpandedSet map[PairKey]struct{}

// NewExpandedSet builds a set from pair keys.
func NewExpandedSet(keys ...PairKey) ExpandedSet {
	s := make(ExpandedSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Toggle flips a pair and returns whether it is now expanded.
func (s ExpandedSet) Toggle(k PairKey) bool {
	if _, ok := s[k]; ok {
		delete(s, k)
		return false
	}
	s[k] = struct{}{}
	return true
}

// Expanded returns the ledgers of the expanded pairs that exist in the report.
func (r *Report) Expanded(set ExpandedSet) map[PairKey][]LedgerRow {
	out := make(map[PairKey][]LedgerRow, len(set))
	for k := range set {
		if rows, ok := r.PairLedger(k.ProductID, k.CounterpartyID); ok {
			out[k] = rows
		}
	}
	return out
}

// ProductName returns the catalog display name of a product, or its id.
func (r *Report) ProductName(productID string) string {
	if name, ok := r.productNames[productID]; ok {
		return name
	}
	return productID
}

func head[T any](rows []T, n int) []T {
	if n <= 0 {
		n = DefaultTopN
	}
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
