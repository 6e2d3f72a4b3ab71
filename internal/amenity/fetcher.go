package amenity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/haikapp/haik/internal/models"
)

// FetcherConfig holds tuning for the amenity count fetch stage.
type FetcherConfig struct {
	// RadiusMeters is the search span around a neighborhood center.
	RadiusMeters float64
	// ResultLimit caps how many places one lookup may return.
	ResultLimit int
	// MaxConcurrent bounds in-flight lookups for one batch.
	MaxConcurrent int
	// LookupTimeout bounds one external lookup. A timeout counts as a
	// provider failure (count zero).
	LookupTimeout time.Duration
}

// DefaultFetcherConfig returns the fetch defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		RadiusMeters:  3500,
		ResultLimit:   40,
		MaxConcurrent: 6,
		LookupTimeout: 8 * time.Second,
	}
}

// ProgressFunc receives incremental done/total progress across one
// fetch batch. Calls are serialized with respect to the done counter
// but may arrive out of pair order.
type ProgressFunc func(done, total int)

// Fetcher fans out amenity count lookups to the places provider with
// bounded concurrency, memoizing results in a per-session cache.
type Fetcher struct {
	searcher Searcher
	cache    *CountCache
	config   FetcherConfig
}

// NewFetcher creates a fetcher over the given collaborator and cache.
func NewFetcher(searcher Searcher, cache *CountCache, config FetcherConfig) *Fetcher {
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = DefaultFetcherConfig().MaxConcurrent
	}
	if config.ResultLimit <= 0 {
		config.ResultLimit = DefaultFetcherConfig().ResultLimit
	}
	if config.RadiusMeters <= 0 {
		config.RadiusMeters = DefaultFetcherConfig().RadiusMeters
	}
	return &Fetcher{searcher: searcher, cache: cache, config: config}
}

// Cache returns the fetcher's session cache.
func (f *Fetcher) Cache() *CountCache { return f.cache }

// FetchCounts ensures every (neighborhood, category) pair is cached,
// issuing one lookup per missing pair. Provider failures degrade to a
// cached count of zero and never abort the batch. The returned map is
// a snapshot of the cache for the requested neighborhoods. The only
// error returned is context cancellation; a cancelled batch leaves a
// valid partial cache behind, with lookups aborted mid-flight left
// uncached for a later run to retry.
func (f *Fetcher) FetchCounts(ctx context.Context, neighborhoods []models.Neighborhood, categories []models.Category, progress ProgressFunc) (map[uuid.UUID]map[models.Category]int, error) {
	total := len(neighborhoods) * len(categories)
	if total == 0 {
		return f.cache.Snapshot(neighborhoods), nil
	}

	log.Debug().
		Int("neighborhoods", len(neighborhoods)).
		Int("categories", len(categories)).
		Int("max_concurrent", f.config.MaxConcurrent).
		Msg("starting amenity count batch")

	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.config.MaxConcurrent)

batch:
	for _, n := range neighborhoods {
		for _, cat := range categories {
			if err := ctx.Err(); err != nil {
				break batch
			}
			n, cat := n, cat
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if _, ok := f.cache.Get(n.ID, cat); !ok {
					count, ok := f.fetchOne(gctx, n, cat)
					if ok {
						f.cache.PutIfAbsent(n.ID, cat, count)
					}
				}
				d := done.Add(1)
				if progress != nil {
					progress(int(d), total)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.cache.Snapshot(neighborhoods), nil
}

// fetchOne performs a single count lookup. A provider error, including
// a lookup timeout, degrades to a cacheable zero. A lookup aborted by
// run cancellation is not a provider answer: ok is false and the pair
// stays uncached, so a later run refetches it.
func (f *Fetcher) fetchOne(ctx context.Context, n models.Neighborhood, cat models.Category) (count int, ok bool) {
	lookupCtx := ctx
	if f.config.LookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, f.config.LookupTimeout)
		defer cancel()
	}

	places, err := f.searcher.Search(lookupCtx, cat.SearchQuery(), n.Coordinate, f.config.RadiusMeters, f.config.ResultLimit, n.Name)
	if err != nil {
		if ctx.Err() != nil {
			return 0, false
		}
		log.Debug().
			Str("neighborhood", n.Name).
			Str("category", string(cat)).
			Err(err).
			Msg("amenity lookup failed, counting as zero")
		return 0, true
	}
	return len(places), true
}
