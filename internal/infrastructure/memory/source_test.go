package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boukir/internal/core/types"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
)

func TestSource_DocumentsAreCopies(t *testing.T) {
	s := NewSource()
	s.AddDocuments(documents.KindSale, documents.Document{
		ID:    "1",
		Lines: []documents.LineItem{{ProductID: "p1", Quantity: "2"}},
	})

	first, err := s.Documents(context.Background())
	require.NoError(t, err)
	first[documents.KindSale][0].Lines[0].Quantity = "99"
	first[documents.KindSale][0].ID = "changed"

	second, err := s.Documents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", second[documents.KindSale][0].ID)
	assert.Equal(t, types.Number("2"), second[documents.KindSale][0].Lines[0].Quantity)
	assert.Equal(t, 2, s.Loads())
}

func TestSource_Catalog(t *testing.T) {
	s := NewSource()
	s.AddProducts(nomenclature.Product{ID: "p1", Name: "Tube", CostBasis: decimal.NewFromInt(4)})

	catalog, err := s.Catalog(context.Background())
	require.NoError(t, err)
	p, ok := catalog.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Tube", p.Name)
}

func TestSource_InjectedErrors(t *testing.T) {
	s := NewSource()
	boom := errors.New("boom")

	s.FailDocuments(boom)
	_, err := s.Documents(context.Background())
	assert.ErrorIs(t, err, boom)

	s.FailCatalog(boom)
	_, err = s.Catalog(context.Background())
	assert.ErrorIs(t, err, boom)

	s.FailDocuments(nil)
	_, err = s.Documents(context.Background())
	assert.NoError(t, err)
}

func TestSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource().Documents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	raw := `{
		"documents": {
			"Sale": [{"id": "1", "date": "2025-01-01", "status": "Validé", "clientId": "C1",
				"items": [{"productId": "p1", "quantity": "2", "unitPrice": "10,5"}]}]
		},
		"products": [{"id": "p1", "name": "Tube", "costBasis": "4"}],
		"units": [{"id": "u1", "name": "Box", "conversionFactor": "12"}]
	}`

	s, err := Load(strings.NewReader(raw))
	require.NoError(t, err)

	channels, err := s.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, channels[documents.KindSale], 1)
	assert.Equal(t, types.Number("10,5"), channels[documents.KindSale][0].Lines[0].UnitPrice)

	catalog, err := s.Catalog(context.Background())
	require.NoError(t, err)
	u, ok := catalog.Unit("p1", "u1")
	require.True(t, ok)
	assert.True(t, u.ConversionFactor.Equal(decimal.NewFromInt(12)))
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestLoad_NumericFieldsAcceptNumbersAndStrings(t *testing.T) {
	raw := `{"documents": {"Sale": [{"id": "1", "date": "2025-01-01", "clientId": "C1", "items": [
		{"productId": "p1", "quantity": 3, "unitPrice": 10},
		{"productId": "p2", "quantity": "2", "unitPrice": "4,5", "lineTotal": null, "discountPerUnit": true}
	]}]}}`

	s, err := Load(strings.NewReader(raw))
	require.NoError(t, err)

	channels, err := s.Documents(context.Background())
	require.NoError(t, err)
	lines := channels[documents.KindSale][0].Lines
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Quantity.Money().Equal(decimal.NewFromInt(3)))
	assert.True(t, lines[0].UnitPrice.Money().Equal(decimal.NewFromInt(10)))
	assert.True(t, lines[1].UnitPrice.Money().Equal(decimal.RequireFromString("4.5")))
	_, ok := lines[1].LineTotal.Parse()
	assert.False(t, ok)
	assert.True(t, lines[1].DiscountPerUnit.Money().IsZero())
}
