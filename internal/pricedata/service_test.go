package pricedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haikapp/haik/internal/models"
)

func price(v float64) *float64 { return &v }

func sampleRecords() []models.PriceRecord {
	return []models.PriceRecord{
		{Neighborhood: "السفارات", AvgPricePerMeter: price(8300), TransactionsCount: 21},
		{Neighborhood: "الملقا", AvgPricePerMeter: price(6500), TransactionsCount: 263},
		{Neighborhood: "الياسمين", AvgPricePerMeter: price(5200), TransactionsCount: 311},
		{Neighborhood: "قرطبة", AvgPricePerMeter: price(4100), TransactionsCount: 208},
		{Neighborhood: "النسيم", AvgPricePerMeter: price(2500), TransactionsCount: 142},
		{Neighborhood: "الشفاء", AvgPricePerMeter: price(2200), TransactionsCount: 187},
		{Neighborhood: "المروة", AvgPricePerMeter: nil, TransactionsCount: 0},
	}
}

func TestService_Record_LookupOrder(t *testing.T) {
	s := NewService(sampleRecords())

	t.Run("exact normalized name", func(t *testing.T) {
		r, ok := s.Record("الملقا")
		require.True(t, ok)
		assert.Equal(t, "الملقا", r.Neighborhood)
	})

	t.Run("prefixed name resolves to bare dataset entry", func(t *testing.T) {
		r, ok := s.Record("حي السفارات")
		require.True(t, ok)
		assert.Equal(t, "السفارات", r.Neighborhood)
	})

	t.Run("alias resolution", func(t *testing.T) {
		r, ok := s.Record("حي الدبلوماسيين", "السفارات")
		require.True(t, ok)
		assert.Equal(t, "السفارات", r.Neighborhood)
	})

	t.Run("unknown name is absent, not an error", func(t *testing.T) {
		_, ok := s.Record("غير موجود")
		assert.False(t, ok)
	})
}

func TestService_AvgPricePerMeter(t *testing.T) {
	s := NewService(sampleRecords())

	v, ok := s.AvgPricePerMeter("الملقا")
	require.True(t, ok)
	assert.InDelta(t, 6500, v, 1e-9)

	// Present record with null price is absent.
	_, ok = s.AvgPricePerMeter("المروة")
	assert.False(t, ok)
}

func TestService_TransactionsCount(t *testing.T) {
	s := NewService(sampleRecords())

	n, ok := s.TransactionsCount("الياسمين")
	require.True(t, ok)
	assert.Equal(t, 311, n)
}

func TestService_TierBoundaries(t *testing.T) {
	s := NewService(sampleRecords())

	// Six known prices: 2200 2500 4100 5200 6500 8300.
	low, high, ok := s.TierBoundaries()
	require.True(t, ok)
	assert.InDelta(t, 2500, low, 1e-9)
	assert.InDelta(t, 5200, high, 1e-9)
}

func TestService_Tiers_ExhaustiveAndDisjoint(t *testing.T) {
	s := NewService(sampleRecords())

	counts := map[models.PriceTier]int{}
	for _, r := range sampleRecords() {
		if r.AvgPricePerMeter == nil {
			continue
		}
		tier := s.ClassifyPrice(*r.AvgPricePerMeter)
		assert.NotEqual(t, models.PriceTierUnknown, tier)
		counts[tier]++
	}

	assert.Equal(t, 2, counts[models.PriceTierLow])
	assert.Equal(t, 2, counts[models.PriceTierMid])
	assert.Equal(t, 2, counts[models.PriceTierHigh])
}

func TestService_TierFor_InsufficientSamples(t *testing.T) {
	s := NewService(sampleRecords()[:5])

	assert.Equal(t, models.PriceTierUnknown, s.TierFor("الملقا"))
}

func TestService_TierFor_MissingPrice(t *testing.T) {
	s := NewService(sampleRecords())

	assert.Equal(t, models.PriceTierUnknown, s.TierFor("المروة"))
	assert.Equal(t, models.PriceTierUnknown, s.TierFor("غير موجود"))
}

func TestNewBundledService(t *testing.T) {
	s, err := NewBundledService()
	require.NoError(t, err)

	assert.NotEmpty(t, s.Records())

	// The bundled dataset is large enough for tier classification.
	_, _, ok := s.TierBoundaries()
	assert.True(t, ok)

	// Catalog names with the generic prefix resolve to bare entries.
	_, ok = s.Record("حي السفارات")
	assert.True(t, ok)
}
