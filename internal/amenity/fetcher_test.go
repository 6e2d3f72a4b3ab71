package amenity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haikapp/haik/internal/models"
)

// countingSearcher tracks lookups per (neighborhood, query) pair.
type countingSearcher struct {
	mu      sync.Mutex
	calls   map[string]int
	results map[string]int
	err     error
}

func newCountingSearcher(results map[string]int) *countingSearcher {
	return &countingSearcher{
		calls:   make(map[string]int),
		results: results,
	}
}

func (s *countingSearcher) key(name, query string) string { return name + "/" + query }

func (s *countingSearcher) Search(_ context.Context, query string, center models.Coordinate, _ float64, _ int, neighborhoodName string) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[s.key(neighborhoodName, query)]++
	if s.err != nil {
		return nil, s.err
	}

	n := s.results[s.key(neighborhoodName, query)]
	places := make([]models.Place, n)
	for i := range places {
		places[i] = models.Place{Name: query, Coordinate: center}
	}
	return places, nil
}

func (s *countingSearcher) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func testNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		models.NewNeighborhood("الملقا", "شمال", 24.8246, 46.6099),
		models.NewNeighborhood("الملز", "وسط", 24.6676, 46.7377),
	}
}

func TestFetcher_FetchCounts(t *testing.T) {
	neighborhoods := testNeighborhoods()
	searcher := newCountingSearcher(map[string]int{
		"الملقا/" + models.CategorySchools.SearchQuery(): 7,
		"الملز/" + models.CategorySchools.SearchQuery():  12,
	})

	f := NewFetcher(searcher, NewCountCache(), DefaultFetcherConfig())

	counts, err := f.FetchCounts(context.Background(), neighborhoods, []models.Category{models.CategorySchools, models.CategoryMetro}, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, counts[neighborhoods[0].ID][models.CategorySchools])
	assert.Equal(t, 12, counts[neighborhoods[1].ID][models.CategorySchools])
	assert.Equal(t, 0, counts[neighborhoods[0].ID][models.CategoryMetro])
	assert.Equal(t, 4, searcher.totalCalls())
}

func TestFetcher_CacheIdempotence(t *testing.T) {
	neighborhoods := testNeighborhoods()
	searcher := newCountingSearcher(map[string]int{
		"الملقا/" + models.CategorySchools.SearchQuery(): 7,
	})

	f := NewFetcher(searcher, NewCountCache(), DefaultFetcherConfig())
	categories := []models.Category{models.CategorySchools}

	first, err := f.FetchCounts(context.Background(), neighborhoods, categories, nil)
	require.NoError(t, err)
	second, err := f.FetchCounts(context.Background(), neighborhoods, categories, nil)
	require.NoError(t, err)

	// Exactly one lookup per pair across both batches.
	assert.Equal(t, len(neighborhoods), searcher.totalCalls())
	assert.Equal(t, first, second)
}

func TestFetcher_FailureDegradesToZero(t *testing.T) {
	neighborhoods := testNeighborhoods()
	searcher := newCountingSearcher(nil)
	searcher.err = errors.New("provider unavailable")

	f := NewFetcher(searcher, NewCountCache(), DefaultFetcherConfig())

	counts, err := f.FetchCounts(context.Background(), neighborhoods, []models.Category{models.CategoryCafes}, nil)
	require.NoError(t, err, "provider failures must not abort the batch")

	for _, n := range neighborhoods {
		assert.Equal(t, 0, counts[n.ID][models.CategoryCafes])
	}
}

func TestFetcher_Progress(t *testing.T) {
	neighborhoods := testNeighborhoods()
	searcher := newCountingSearcher(nil)
	f := NewFetcher(searcher, NewCountCache(), DefaultFetcherConfig())

	var calls atomic.Int64
	var lastDone, lastTotal atomic.Int64

	categories := []models.Category{models.CategoryCafes, models.CategoryParks, models.CategoryMetro}
	_, err := f.FetchCounts(context.Background(), neighborhoods, categories, func(done, total int) {
		calls.Add(1)
		if int64(done) > lastDone.Load() {
			lastDone.Store(int64(done))
		}
		lastTotal.Store(int64(total))
	})
	require.NoError(t, err)

	want := len(neighborhoods) * len(categories)
	assert.Equal(t, int64(want), calls.Load())
	assert.Equal(t, int64(want), lastDone.Load())
	assert.Equal(t, int64(want), lastTotal.Load())
}

// blockingSearcher stalls every lookup until its context is cancelled.
type blockingSearcher struct {
	started chan struct{}
	once    sync.Once
}

func (s *blockingSearcher) Search(ctx context.Context, _ string, _ models.Coordinate, _ float64, _ int, _ string) ([]models.Place, error) {
	s.once.Do(func() { close(s.started) })
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestFetcher_SuccessfulBatchReturnsNoError(t *testing.T) {
	neighborhoods := testNeighborhoods()[:1]
	searcher := newCountingSearcher(map[string]int{
		"الملقا/" + models.CategorySchools.SearchQuery(): 7,
	})

	f := NewFetcher(searcher, NewCountCache(), DefaultFetcherConfig())

	counts, err := f.FetchCounts(context.Background(), neighborhoods, []models.Category{models.CategorySchools}, nil)
	require.NoError(t, err, "a healthy batch on a live context must succeed")
	assert.Equal(t, 7, counts[neighborhoods[0].ID][models.CategorySchools])
}

func TestFetcher_CancelledLookupIsNotCached(t *testing.T) {
	neighborhoods := testNeighborhoods()[:1]
	cache := NewCountCache()
	blocking := &blockingSearcher{started: make(chan struct{})}
	f := NewFetcher(blocking, cache, DefaultFetcherConfig())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := f.FetchCounts(ctx, neighborhoods, []models.Category{models.CategoryCafes}, nil)
		errCh <- err
	}()

	<-blocking.started
	cancel()
	require.Error(t, <-errCh)

	// An aborted lookup is not a provider answer; caching it as zero
	// would poison every later run sharing this cache.
	_, ok := cache.Get(neighborhoods[0].ID, models.CategoryCafes)
	assert.False(t, ok)

	// A fresh run over the same cache refetches the pair.
	searcher := newCountingSearcher(map[string]int{
		"الملقا/" + models.CategoryCafes.SearchQuery(): 9,
	})
	counts, err := NewFetcher(searcher, cache, DefaultFetcherConfig()).
		FetchCounts(context.Background(), neighborhoods, []models.Category{models.CategoryCafes}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, counts[neighborhoods[0].ID][models.CategoryCafes])
	assert.Equal(t, 1, searcher.totalCalls())
}

func TestFetcher_CancellationLeavesValidPartialCache(t *testing.T) {
	neighborhoods := testNeighborhoods()
	searcher := newCountingSearcher(nil)

	cache := NewCountCache()
	f := NewFetcher(searcher, cache, DefaultFetcherConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchCounts(ctx, neighborhoods, []models.Category{models.CategoryCafes}, nil)
	require.Error(t, err)

	// A subsequent run with a live context completes and reuses
	// whatever the cancelled batch already cached.
	counts, err := f.FetchCounts(context.Background(), neighborhoods, []models.Category{models.CategoryCafes}, nil)
	require.NoError(t, err)
	for _, n := range neighborhoods {
		_, ok := counts[n.ID][models.CategoryCafes]
		assert.True(t, ok)
	}
}

func TestCountCache_FirstWriteWins(t *testing.T) {
	cache := NewCountCache()
	id := testNeighborhoods()[0].ID

	assert.Equal(t, 5, cache.PutIfAbsent(id, models.CategoryCafes, 5))
	assert.Equal(t, 5, cache.PutIfAbsent(id, models.CategoryCafes, 9))
	assert.Equal(t, 5, cache.Count(id, models.CategoryCafes))
}

func TestCountCache_UnfetchedPairIsZero(t *testing.T) {
	cache := NewCountCache()
	id := testNeighborhoods()[0].ID

	assert.Equal(t, 0, cache.Count(id, models.CategoryMetro))
	_, ok := cache.Get(id, models.CategoryMetro)
	assert.False(t, ok)
}
