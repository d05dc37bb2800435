package reports

import (
	"boukir/internal/domain/catalogs/counterparty"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
	"boukir/pkg/logger"
)

// Inputs is everything one pass reads. The engine never mutates it.
type Inputs struct {
	Channels documents.Channels
	Catalog  *nomenclature.Catalog
	Options  Options
}

// Engine computes reports. It keeps no state between passes and is safe for
// concurrent use.
type Engine struct {
	log        *logger.Logger
	normalizer *documents.Normalizer
}

// NewEngine creates an engine. A nil log falls back to the default logger;
// empty layouts select documents.DefaultDateLayouts.
func NewEngine(log *logger.Logger, dateLayouts ...string) *Engine {
	if log == nil {
		log = logger.Default()
	}
	return &Engine{
		log:        log.WithComponent("reports.engine"),
		normalizer: documents.NewNormalizer(dateLayouts...),
	}
}

// Compute runs one full pass: normalize, key, aggregate. It never fails;
// data-quality problems are reported as notes and counters.
func (e *Engine) Compute(in Inputs) *Report {
	opts := in.Options
	normalized := e.normalizer.Normalize(in.Channels, opts.Period, opts.Groups)

	var (
		keyed   = make([]keyedDocument, 0, len(normalized.Documents))
		notes   []Note
		skipped int
	)
	for _, doc := range normalized.Documents {
		sign, ok := documents.Sign(doc.Kind)
		if !ok {
			e.log.Warnw("unknown document kind, counting as positive",
				"document_id", doc.ID, "kind", doc.Kind)
			notes = append(notes, Note{Code: NoteUnknownKind, DocumentID: doc.ID, Kind: doc.Kind})
		}
		if !doc.DateOK && doc.Date != "" {
			notes = append(notes, Note{Code: NoteUnparsableDate, DocumentID: doc.ID, Kind: doc.Kind, Detail: doc.Date})
		}

		key, ok := counterparty.Resolve(doc.Document)
		if !ok {
			e.log.Debugw("document has no counterparty, skipped",
				"document_id", doc.ID, "kind", doc.Kind)
			notes = append(notes, Note{Code: NoteNoCounterparty, DocumentID: doc.ID, Kind: doc.Kind})
			skipped++
			continue
		}
		keyed = append(keyed, keyedDocument{Tagged: doc, CounterpartyID: key, Sign: sign})
	}

	// Collapsing counterparties happens before aggregation so the aggregator
	// never sees the option.
	for i := range keyed {
		keyed[i].CounterpartyID = counterparty.Remap(keyed[i].CounterpartyID, opts.IgnoreCounterparty)
	}

	agg := newAggregator(nomenclature.NewCostResolver(in.Catalog))
	for _, doc := range keyed {
		agg.add(doc)
	}

	counters := agg.counters
	counters.SkippedDocuments = skipped
	counters.UnknownKinds = normalized.UnknownKinds

	report := &Report{
		Options:        opts,
		Labels:         opts.Labels(),
		Diagnostics:    normalized.Diagnostics,
		Counters:       counters,
		Notes:          append(notes, agg.notes...),
		Products:       agg.products,
		Counterparties: agg.counterparties,
		productNames:   make(map[string]string, len(agg.products)),
	}
	for pid := range agg.products {
		if p, ok := in.Catalog.Product(pid); ok {
			report.productNames[pid] = p.DisplayName()
		}
	}

	if counters.UnknownProducts > 0 {
		e.log.Debugw("lines reference products missing from the catalog",
			"count", counters.UnknownProducts)
	}
	e.log.Infow("report computed",
		"documents", counters.Documents,
		"lines", counters.Lines,
		"skipped_documents", counters.SkippedDocuments,
		"skipped_lines", counters.SkippedLines,
		"products", len(report.Products),
		"counterparties", len(report.Counterparties),
		"groups", report.Labels,
	)
	return report
}
