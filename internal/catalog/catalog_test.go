package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haikapp/haik/internal/models"
)

func TestRiyadh(t *testing.T) {
	c := Riyadh()

	assert.Equal(t, 40, c.Len())

	// Every entry has a name, region, and plausible Riyadh coordinates.
	for _, n := range c.All() {
		assert.NotEmpty(t, n.Name)
		assert.NotEmpty(t, n.Region)
		assert.InDelta(t, 24.7, n.Coordinate.Latitude, 0.5)
		assert.InDelta(t, 46.65, n.Coordinate.Longitude, 0.5)
	}
}

func TestCatalog_ByName(t *testing.T) {
	c := Riyadh()

	n, ok := c.ByName("الملقا")
	require.True(t, ok)
	assert.Equal(t, "شمال", n.Region)

	_, ok = c.ByName("غير موجود")
	assert.False(t, ok)
}

func TestDistanceMeters(t *testing.T) {
	a := models.Coordinate{Latitude: 24.7136, Longitude: 46.6753}

	t.Run("zero distance to itself", func(t *testing.T) {
		assert.InDelta(t, 0, DistanceMeters(a, a), 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		b := models.Coordinate{Latitude: 24.8246, Longitude: 46.6099}
		assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		b := models.Coordinate{Latitude: a.Latitude + 1, Longitude: a.Longitude}
		assert.InDelta(t, 111000, DistanceMeters(a, b), 500)
	})
}

func TestCatalog_NearestN(t *testing.T) {
	c := Riyadh()
	anchor, ok := c.ByName("الملقا")
	require.True(t, ok)

	nearest := c.NearestN(anchor.Coordinate, 12)
	require.Len(t, nearest, 12)

	// The anchor itself is the closest entry.
	assert.Equal(t, "الملقا", nearest[0].Name)

	// Ascending distance order.
	for i := 1; i < len(nearest); i++ {
		di := DistanceMeters(nearest[i-1].Coordinate, anchor.Coordinate)
		dj := DistanceMeters(nearest[i].Coordinate, anchor.Coordinate)
		assert.LessOrEqual(t, di, dj)
	}
}

func TestCatalog_NearestN_Deterministic(t *testing.T) {
	c := Riyadh()
	anchor := models.Coordinate{Latitude: 24.7, Longitude: 46.7}

	first := c.NearestN(anchor, 12)
	second := c.NearestN(anchor, 12)

	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}
