// Package documents models the transaction documents (bons, avoirs) handed to the
// reporting core by the data layer, and filters them for a report pass.
package documents

import (
	"time"

	"boukir/internal/core/types"
)

// Document is one transaction record as fetched by the data layer.
// The core treats it as read-only.
type Document struct {
	ID     string `json:"id"`
	Number string `json:"number,omitempty"`
	Kind   Kind   `json:"kind"`

	// Date is the raw business date (ISO or dd-mm-yy display form).
	Date   string `json:"date"`
	Status string `json:"status"`

	// Counterparty references. Which one applies depends on Kind.
	ClientID   string `json:"clientId,omitempty"`
	SupplierID string `json:"supplierId,omitempty"`
	ContactID  string `json:"contactId,omitempty"`

	// Guest buyer details for cash and online channels.
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	OrderNumber   string `json:"orderNumber,omitempty"`

	// NotCalculated excludes the document from every statistic.
	NotCalculated bool `json:"isNotCalculated,omitempty"`

	Lines []LineItem `json:"items"`
}

// LineItem is one product line within a document.
// Numeric fields are kept raw (JSON number or string) and parsed tolerantly
// by the report.
type LineItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	UnitID    string `json:"unitId,omitempty"`

	Quantity  types.Number `json:"quantity"`
	UnitPrice types.Number `json:"unitPrice"`

	// LineTotal overrides quantity*unitPrice when set.
	LineTotal types.Number `json:"lineTotal,omitempty"`

	// DiscountPerUnit (remise) only affects the displayed net total.
	DiscountPerUnit types.Number `json:"discountPerUnit,omitempty"`

	// Cost snapshot frozen at order time by some channels.
	CostBasis     types.Number `json:"costBasis,omitempty"`
	PurchasePrice types.Number `json:"purchasePrice,omitempty"`

	// Display snapshots.
	VariantName string `json:"variantName,omitempty"`
	UnitName    string `json:"unitName,omitempty"`
}

// DisplayNumber returns the document number, falling back to its id.
func (d Document) DisplayNumber() string {
	if d.Number != "" {
		return d.Number
	}
	return d.ID
}

// Channels holds the raw document lists per kind.
type Channels map[Kind][]Document

// Count returns the number of raw documents across all kinds.
func (c Channels) Count() int {
	n := 0
	for _, docs := range c {
		n += len(docs)
	}
	return n
}

// Tagged is a document that passed normalization, with its kind applied and
// its date parsed. DateOK is false when the raw date could not be parsed.
type Tagged struct {
	Document
	ParsedDate time.Time
	DateOK     bool
}
