package reports

import (
	"context"

	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
)

// Source is the data layer a Service reads from. Implementations return
// snapshots: the service treats the returned values as read-only.
type Source interface {
	// Documents returns every channel's document list, keyed by kind.
	Documents(ctx context.Context) (documents.Channels, error)
	// Catalog returns the product, variant and unit catalog.
	Catalog(ctx context.Context) (*nomenclature.Catalog, error)
}
