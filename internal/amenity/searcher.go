package amenity

import (
	"context"

	"github.com/haikapp/haik/internal/models"
)

// Searcher is the external places-search collaborator. Implementations
// are expected to be fallible; the fetcher treats any error as an
// empty result.
type Searcher interface {
	// Search returns points of interest matching the query around the
	// center, limited to radiusMeters and at most limit results.
	// neighborhoodName is passed through for provider-side
	// disambiguation of places on district borders.
	Search(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, limit int, neighborhoodName string) ([]models.Place, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, limit int, neighborhoodName string) ([]models.Place, error)

// Search implements Searcher.
func (f SearcherFunc) Search(ctx context.Context, query string, center models.Coordinate, radiusMeters float64, limit int, neighborhoodName string) ([]models.Place, error) {
	return f(ctx, query, center, radiusMeters, limit, neighborhoodName)
}
