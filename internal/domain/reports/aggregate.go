package reports

import (
	"strings"

	"github.com/shopspring/decimal"

	"boukir/internal/domain/catalogs/counterparty"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
)

// keyedDocument is a filtered document with its final counterparty key and sign.
type keyedDocument struct {
	documents.Tagged
	CounterpartyID string
	Sign           int
}

// aggregator folds line items into the two mirrored matrices. It lives for one
// pass only.
type aggregator struct {
	costs *nomenclature.CostResolver

	products       map[string]*ProductStats
	counterparties map[string]*CounterpartyStats
	counters       Counters
	notes          []Note
}

func newAggregator(costs *nomenclature.CostResolver) *aggregator {
	return &aggregator{
		costs:          costs,
		products:       make(map[string]*ProductStats),
		counterparties: make(map[string]*CounterpartyStats),
	}
}

// add folds every valid line of doc.
func (a *aggregator) add(doc keyedDocument) {
	a.counters.Documents++
	if len(doc.Lines) == 0 {
		a.counters.EmptyDocuments++
		a.note(Note{Code: NoteEmptyDocument, DocumentID: doc.ID, Kind: doc.Kind})
		return
	}

	sign := decimal.NewFromInt(int64(doc.Sign))
	for _, line := range doc.Lines {
		productID := strings.TrimSpace(line.ProductID)
		if productID == "" {
			a.counters.SkippedLines++
			a.note(Note{Code: NoteMissingProductID, DocumentID: doc.ID, Kind: doc.Kind})
			continue
		}
		line.ProductID = productID
		a.addLine(doc, line, sign)
	}
}

func (a *aggregator) addLine(doc keyedDocument, line documents.LineItem, sign decimal.Decimal) {
	a.counters.Lines++

	quantity := line.Quantity.Money()
	unitPrice := line.UnitPrice.Money()
	gross, ok := line.LineTotal.Parse()
	if !ok {
		gross = quantity.Mul(unitPrice)
	}
	discount := line.DiscountPerUnit.Money().Mul(quantity)

	cost := a.costs.Resolve(line)
	if !cost.ProductKnown {
		a.counters.UnknownProducts++
		a.note(Note{Code: NoteUnknownProduct, DocumentID: doc.ID, Kind: doc.Kind, Detail: line.ProductID})
	}

	// Discounts lower the net amount only; profit stays on the unit price.
	c := contribution{
		quantity: quantity.Mul(sign),
		amount:   gross.Mul(sign),
		discount: discount.Mul(sign),
		profit:   unitPrice.Sub(cost.Adjusted).Mul(quantity).Mul(sign),
	}

	product := a.products[line.ProductID]
	if product == nil {
		product = &ProductStats{Counterparties: make(map[string]*PairStats)}
		a.products[line.ProductID] = product
	}
	pair := product.Counterparties[doc.CounterpartyID]
	if pair == nil {
		pair = &PairStats{}
		product.Counterparties[doc.CounterpartyID] = pair
	}
	product.add(c)
	pair.add(c)

	cp := a.counterparties[doc.CounterpartyID]
	if cp == nil {
		cp = &CounterpartyStats{
			Guest:    counterparty.IsSynthetic(doc.CounterpartyID),
			Products: make(map[string]*Totals),
		}
		a.counterparties[doc.CounterpartyID] = cp
	}
	cpProduct := cp.Products[line.ProductID]
	if cpProduct == nil {
		cpProduct = &Totals{}
		cp.Products[line.ProductID] = cpProduct
	}
	cp.add(c)
	cpProduct.add(c)

	pair.Details = append(pair.Details, DetailLine{
		DocumentID:     doc.ID,
		DocumentNumber: doc.DisplayNumber(),
		Date:           doc.ParsedDate,
		DateRaw:        doc.Date,
		DateOK:         doc.DateOK,
		Kind:           doc.Kind,
		Status:         doc.Status,
		Quantity:       c.quantity,
		UnitPrice:      unitPrice,
		UnitCost:       cost.Adjusted,
		Total:          c.amount,
		Discount:       c.discount,
		NetTotal:       c.amount.Sub(c.discount),
		Profit:         c.profit,
		VariantName:    cost.VariantName,
		UnitName:       cost.UnitName,
		CostSource:     cost.Source,
	})
}

func (a *aggregator) note(n Note) {
	a.notes = append(a.notes, n)
}
