// Package memory provides an in-process data layer for the report service.
package memory

import (
	"context"
	"slices"
	"sync"

	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/catalogs/unit"
	"boukir/internal/domain/documents"
	"boukir/internal/domain/reports"
)

// Source holds documents and catalog entries in memory.
// Reads return copies so callers cannot change the stored data.
type Source struct {
	mu       sync.RWMutex
	channels documents.Channels
	products []nomenclature.Product
	units    []unit.Unit

	docErr     error
	catalogErr error
	loads      int
}

// NewSource creates an empty source.
func NewSource() *Source {
	return &Source{channels: make(documents.Channels)}
}

// AddDocuments appends documents to the list of kind.
func (s *Source) AddDocuments(kind documents.Kind, docs ...documents.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[kind] = append(s.channels[kind], docs...)
}

// AddProducts registers catalog products.
func (s *Source) AddProducts(products ...nomenclature.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, products...)
}

// AddUnits registers standalone units.
func (s *Source) AddUnits(units ...unit.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = append(s.units, units...)
}

// FailDocuments makes Documents return err (nil clears it).
func (s *Source) FailDocuments(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docErr = err
}

// FailCatalog makes Catalog return err (nil clears it).
func (s *Source) FailCatalog(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogErr = err
}

// Loads returns how many times Documents was called.
func (s *Source) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

// Documents implements reports.Source.
func (s *Source) Documents(ctx context.Context) (documents.Channels, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.docErr != nil {
		return nil, s.docErr
	}

	out := make(documents.Channels, len(s.channels))
	for kind, docs := range s.channels {
		cp := make([]documents.Document, len(docs))
		for i, d := range docs {
			d.Lines = slices.Clone(d.Lines)
			cp[i] = d
		}
		out[kind] = cp
	}
	return out, nil
}

// Catalog implements reports.Source.
func (s *Source) Catalog(ctx context.Context) (*nomenclature.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalogErr != nil {
		return nil, s.catalogErr
	}

	products := make([]nomenclature.Product, len(s.products))
	for i, p := range s.products {
		p.Variants = slices.Clone(p.Variants)
		p.Units = slices.Clone(p.Units)
		products[i] = p
	}
	return nomenclature.NewCatalog(products, slices.Clone(s.units)), nil
}

var _ reports.Source = (*Source)(nil)
