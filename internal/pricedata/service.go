package pricedata

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/haikapp/haik/internal/models"
)

//go:embed riyadh_avg.json
var riyadhAvgJSON []byte

// MinTierSamples is the minimum number of known prices system-wide
// before tier classification is meaningful.
const MinTierSamples = 6

// Service answers price lookups over a static record set, indexed by
// normalized neighborhood name. Read-only after construction; safe to
// share across concurrent recommendation runs.
type Service struct {
	records []models.PriceRecord
	lookup  map[string]models.PriceRecord
	// known holds all non-null prices, sorted ascending, for tier
	// boundary computation.
	known []float64
}

// NewService builds the lookup index over the given records.
func NewService(records []models.PriceRecord) *Service {
	s := &Service{
		records: records,
		lookup:  make(map[string]models.PriceRecord, len(records)),
	}
	for _, r := range records {
		s.lookup[Normalize(r.Neighborhood)] = r
		if r.AvgPricePerMeter != nil {
			s.known = append(s.known, *r.AvgPricePerMeter)
		}
	}
	sort.Float64s(s.known)

	if len(s.known) < MinTierSamples {
		log.Warn().
			Int("known_prices", len(s.known)).
			Int("required", MinTierSamples).
			Msg("price dataset too small for tier classification")
	}
	return s
}

// NewBundledService loads the embedded Riyadh dataset.
func NewBundledService() (*Service, error) {
	records, err := decodeRecords(riyadhAvgJSON)
	if err != nil {
		return nil, fmt.Errorf("decode bundled price dataset: %w", err)
	}
	return NewService(records), nil
}

// LoadRecords reads a price record array from a JSON file.
func LoadRecords(path string) ([]models.PriceRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price dataset: %w", err)
	}
	records, err := decodeRecords(b)
	if err != nil {
		return nil, fmt.Errorf("decode price dataset %s: %w", path, err)
	}
	return records, nil
}

func decodeRecords(b []byte) ([]models.PriceRecord, error) {
	var records []models.PriceRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Records returns the loaded record set.
func (s *Service) Records() []models.PriceRecord { return s.records }

// Record resolves a neighborhood name to its price record. Lookup
// order: exact normalized name, each supplied alias, then the name
// prefixed with the generic "neighborhood" word. Absence is not an
// error.
func (s *Service) Record(name string, aliases ...string) (models.PriceRecord, bool) {
	if r, ok := s.lookup[Normalize(name)]; ok {
		return r, true
	}
	for _, a := range aliases {
		if r, ok := s.lookup[Normalize(a)]; ok {
			return r, true
		}
	}
	if r, ok := s.lookup[Normalize(neighborhoodWord+" "+name)]; ok {
		return r, true
	}
	return models.PriceRecord{}, false
}

// AvgPricePerMeter returns the average price for a neighborhood, or
// absent when the dataset has no (or a null) entry.
func (s *Service) AvgPricePerMeter(name string, aliases ...string) (float64, bool) {
	r, ok := s.Record(name, aliases...)
	if !ok || r.AvgPricePerMeter == nil {
		return 0, false
	}
	return *r.AvgPricePerMeter, true
}

// TransactionsCount returns the recorded transaction count for a
// neighborhood.
func (s *Service) TransactionsCount(name string, aliases ...string) (int, bool) {
	r, ok := s.Record(name, aliases...)
	if !ok {
		return 0, false
	}
	return r.TransactionsCount, true
}
