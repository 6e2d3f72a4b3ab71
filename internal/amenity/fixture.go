package amenity

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/haikapp/haik/internal/models"
)

// FixtureSearcher serves amenity counts from a static table keyed by
// neighborhood name and category. It stands in for the real places
// provider in the CLI and in tests; the mobile host injects the live
// collaborator.
type FixtureSearcher struct {
	counts map[string]map[models.Category]int
}

// NewFixtureSearcher builds a searcher over a fixed count table.
func NewFixtureSearcher(counts map[string]map[models.Category]int) *FixtureSearcher {
	return &FixtureSearcher{counts: counts}
}

// LoadFixtureSearcher reads a count table from a YAML file of the form
// neighborhood -> category -> count.
func LoadFixtureSearcher(path string) (*FixtureSearcher, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read counts fixture: %w", err)
	}
	var counts map[string]map[models.Category]int
	if err := yaml.Unmarshal(b, &counts); err != nil {
		return nil, fmt.Errorf("decode counts fixture %s: %w", path, err)
	}
	return NewFixtureSearcher(counts), nil
}

// Search implements Searcher by synthesizing the configured number of
// places. Unknown neighborhoods and categories yield empty results.
func (f *FixtureSearcher) Search(_ context.Context, query string, center models.Coordinate, _ float64, limit int, neighborhoodName string) ([]models.Place, error) {
	n := 0
	if per, ok := f.counts[neighborhoodName]; ok {
		for _, c := range models.AllCategories() {
			if c.SearchQuery() == query {
				n = per[c]
				break
			}
		}
	}
	if limit > 0 && n > limit {
		n = limit
	}

	places := make([]models.Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, models.Place{
			Name:       fmt.Sprintf("%s %d", query, i+1),
			Coordinate: center,
		})
	}
	return places, nil
}
