package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/haikapp/haik/internal/amenity"
	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/models"
	"github.com/haikapp/haik/internal/pricedata"
)

// Engine runs the recommendation pipeline: candidate selection,
// amenity fetch, scoring, and ranking. One engine instance owns one
// session's amenity cache and must not be shared across concurrent
// flows; the catalog and price service are read-only and shareable.
type Engine struct {
	catalog *catalog.Catalog
	prices  *pricedata.Service
	fetcher *amenity.Fetcher
	config  Config
}

// NewEngine wires an engine from its collaborators.
func NewEngine(cat *catalog.Catalog, prices *pricedata.Service, fetcher *amenity.Fetcher, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommendation config: %w", err)
	}
	return &Engine{
		catalog: cat,
		prices:  prices,
		fetcher: fetcher,
		config:  config,
	}, nil
}

// SelectCandidates decides which neighborhoods one run evaluates: the
// nearest ShortlistSize around a picked anchor when a near-work or
// near-family priority has one, otherwise the full catalog.
func (e *Engine) SelectCandidates(answers *models.AnswerSet) []models.Neighborhood {
	for _, p := range answers.Priorities() {
		if !p.RequiresAnchor() {
			continue
		}
		if anchor, ok := e.anchorCoordinate(p, answers); ok {
			return e.catalog.NearestN(anchor, e.config.ShortlistSize)
		}
	}
	return e.catalog.All()
}

// Run executes the full pipeline for one answer set and returns the
// top-K ranked neighborhoods with justification labels. The only
// returned error is context cancellation during the fetch stage;
// degraded signals (fetch failures, missing prices) are absorbed into
// neutral or zero sub-scores.
func (e *Engine) Run(ctx context.Context, answers *models.AnswerSet, progress amenity.ProgressFunc) ([]models.RecommendedNeighborhood, error) {
	runID := uuid.New().String()
	start := time.Now()

	candidates := e.SelectCandidates(answers)
	categories := amenity.ResolveCategories(answers).Sorted()

	log.Info().
		Str("run_id", runID).
		Int("candidates", len(candidates)).
		Int("categories", len(categories)).
		Msg("starting recommendation run")

	if _, err := e.fetcher.FetchCounts(ctx, candidates, categories, progress); err != nil {
		return nil, fmt.Errorf("amenity fetch: %w", err)
	}

	scored := make([]models.RecommendedNeighborhood, 0, len(candidates))
	for _, n := range candidates {
		scored = append(scored, e.scoreOne(n, answers))
	}

	// Stable sort keeps candidate order on ties, which is catalog
	// order (or ascending anchor distance for shortlists).
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompatibilityScore > scored[j].CompatibilityScore
	})
	if len(scored) > e.config.TopK {
		scored = scored[:e.config.TopK]
	}

	log.Info().
		Str("run_id", runID).
		Int("results", len(scored)).
		Dur("duration", time.Since(start)).
		Msg("recommendation run completed")

	return scored, nil
}

// scoreOne computes the four sub-scores and the weighted total for a
// candidate. All sub-scores are clamped to [0,1] before scaling.
func (e *Engine) scoreOne(n models.Neighborhood, answers *models.AnswerSet) models.RecommendedNeighborhood {
	lifestyle := clamp01(e.lifestyleScore(n, answers))
	priority := clamp01(e.priorityScore(n, answers))
	transport := clamp01(e.transportScore(n, answers))
	price := clamp01(e.priceScore(n, answers))

	w := e.config.Weights
	total := w.Lifestyle*lifestyle + w.Priority*priority + w.Transport*transport + w.Price*price

	return models.RecommendedNeighborhood{
		Name:               n.Name,
		Coordinate:         n.Coordinate,
		CompatibilityScore: clamp01(total) * 100,
		LifestyleScore:     lifestyle * 100,
		PriorityScore:      priority * 100,
		TransportScore:     transport * 100,
		PriceScore:         price * 100,
		Rating:             n.Rating,
		Reasons:            e.reasonsFor(n, answers),
	}
}
