package catalog

import (
	"math"
	"sort"

	"github.com/haikapp/haik/internal/models"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two
// coordinates using the haversine formula.
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// NearestN returns the n catalog entries closest to the anchor, sorted
// ascending by distance. Ties keep catalog order (stable sort).
func (c *Catalog) NearestN(anchor models.Coordinate, n int) []models.Neighborhood {
	out := make([]models.Neighborhood, len(c.entries))
	copy(out, c.entries)

	sort.SliceStable(out, func(i, j int) bool {
		return DistanceMeters(out[i].Coordinate, anchor) < DistanceMeters(out[j].Coordinate, anchor)
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
