// Package reports builds the sales/profit reconciliation report: two mirrored
// matrices (product x counterparty and counterparty x product) with per-pair
// detail lines and running balances.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
)

// Totals accumulates the contributions of a set of lines.
// Amount is gross; NetAmount is Amount minus Discount. All fields are signed.
type Totals struct {
	Count     int             `json:"count"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Discount  decimal.Decimal `json:"discount"`
	NetAmount decimal.Decimal `json:"netAmount"`
	Profit    decimal.Decimal `json:"profit"`
}

// contribution is the signed effect of one line.
type contribution struct {
	quantity decimal.Decimal
	amount   decimal.Decimal
	discount decimal.Decimal
	profit   decimal.Decimal
}

func (t *Totals) add(c contribution) {
	t.Count++
	t.Quantity = t.Quantity.Add(c.quantity)
	t.Amount = t.Amount.Add(c.amount)
	t.Discount = t.Discount.Add(c.discount)
	t.NetAmount = t.NetAmount.Add(c.amount.Sub(c.discount))
	t.Profit = t.Profit.Add(c.profit)
}

// DetailLine is one contribution to a (product, counterparty) pair.
// Quantity, Total, Discount, NetTotal and Profit are signed.
type DetailLine struct {
	DocumentID     string          `json:"documentId"`
	DocumentNumber string          `json:"documentNumber"`
	Date           time.Time       `json:"date"`
	DateRaw        string          `json:"dateRaw"`
	DateOK         bool            `json:"dateOk"`
	Kind           documents.Kind  `json:"kind"`
	Status         string          `json:"status"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	Total          decimal.Decimal `json:"total"`
	Discount       decimal.Decimal `json:"discount"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	Profit         decimal.Decimal `json:"profit"`
	VariantName    string          `json:"variantName,omitempty"`
	UnitName       string          `json:"unitName,omitempty"`

	CostSource nomenclature.CostSource `json:"costSource"`
}

// PairStats holds a (product, counterparty) pair's totals and its detail lines
// in the order they were aggregated.
type PairStats struct {
	Totals
	Details []DetailLine `json:"details"`
}

// ProductStats is one row of the product-keyed matrix.
type ProductStats struct {
	Totals
	Counterparties map[string]*PairStats `json:"counterparties"`
}

// CounterpartyStats is one row of the counterparty-keyed matrix.
// Guest marks a walk-in or online buyer with no client record.
type CounterpartyStats struct {
	Totals
	Guest    bool               `json:"guest,omitempty"`
	Products map[string]*Totals `json:"products"`
}

// LedgerRow is one row of a pair's drill-down ledger.
// Final marks the synthetic closing row that carries the cumulative totals.
type LedgerRow struct {
	DetailLine
	Balance          decimal.Decimal `json:"balance"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	CumulativeProfit decimal.Decimal `json:"cumulativeProfit"`
	Final            bool            `json:"final"`
}

// PairKey identifies a (product, counterparty) pair.
type PairKey struct {
	ProductID      string `json:"productId"`
	CounterpartyID string `json:"counterpartyId"`
}

// Counters are diagnostics about a pass, exposed alongside the matrices.
type Counters struct {
	Documents        int `json:"documents"`
	EmptyDocuments   int `json:"emptyDocuments"`
	SkippedDocuments int `json:"skippedDocuments"`
	Lines            int `json:"lines"`
	SkippedLines     int `json:"skippedLines"`
	UnknownKinds     int `json:"unknownKinds"`
	UnknownProducts  int `json:"unknownProducts"`
}

// Note is a data-quality remark raised during a pass. Notes never fail a pass.
type Note struct {
	Code       string         `json:"code"`
	DocumentID string         `json:"documentId,omitempty"`
	Kind       documents.Kind `json:"kind,omitempty"`
	Detail     string         `json:"detail,omitempty"`
}

// Note codes.
const (
	NoteUnknownKind      = "unknown_kind"
	NoteNoCounterparty   = "no_counterparty"
	NoteMissingProductID = "missing_product_id"
	NoteUnknownProduct   = "unknown_product"
	NoteUnparsableDate   = "unparsable_date"
	NoteEmptyDocument    = "empty_document"
)

// Report is the result of one pass.
type Report struct {
	PassID      string    `json:"passId,omitempty"`
	GeneratedAt time.Time `json:"generatedAt,omitempty"`

	Options     Options                     `json:"options"`
	Labels      []string                    `json:"labels"`
	Diagnostics []documents.GroupDiagnostic `json:"diagnostics"`
	Counters    Counters                    `json:"counters"`
	Notes       []Note                      `json:"notes,omitempty"`

	Products       map[string]*ProductStats      `json:"products"`
	Counterparties map[string]*CounterpartyStats `json:"counterparties"`

	productNames map[string]string
}
