package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/catalogs/unit"
	"boukir/internal/domain/documents"
)

// Fixture is the JSON shape accepted by Load: documents keyed by kind plus the
// catalog.
type Fixture struct {
	Documents documents.Channels     `json:"documents"`
	Products  []nomenclature.Product `json:"products"`
	Units     []unit.Unit            `json:"units"`
}

// Load decodes a fixture into a new Source.
func Load(r io.Reader) (*Source, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	s := NewSource()
	for kind, docs := range f.Documents {
		s.AddDocuments(kind, docs...)
	}
	s.AddProducts(f.Products...)
	s.AddUnits(f.Units...)
	return s, nil
}

// LoadFile reads a fixture from disk.
func LoadFile(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()
	return Load(file)
}
