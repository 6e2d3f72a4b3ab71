package pricedata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.EnsureSchema())

	records := sampleRecords()
	require.NoError(t, store.UpsertMany(records))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	got, err := store.Records()
	require.NoError(t, err)
	require.Len(t, got, len(records))

	byName := map[string]int{}
	for i, r := range got {
		byName[r.Neighborhood] = i
	}

	malqa := got[byName["الملقا"]]
	require.NotNil(t, malqa.AvgPricePerMeter)
	assert.InDelta(t, 6500, *malqa.AvgPricePerMeter, 1e-9)
	assert.Equal(t, 263, malqa.TransactionsCount)

	marwa := got[byName["المروة"]]
	assert.Nil(t, marwa.AvgPricePerMeter)
}

func TestStore_UpsertReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.EnsureSchema())
	require.NoError(t, store.UpsertMany(sampleRecords()))
	require.NoError(t, store.UpsertMany(sampleRecords()))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, len(sampleRecords()), n)
}
