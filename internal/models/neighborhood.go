// Package models defines the core data structures shared across the
// Haik recommendation pipeline.
package models

import "github.com/google/uuid"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Neighborhood is one entry of the static reference catalog.
// Rating and ReviewCount are session-mutable display fields populated
// from review aggregation; the recommendation core never reads them.
type Neighborhood struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Region      string     `json:"region"`
	Coordinate  Coordinate `json:"coordinate"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"review_count"`
}

// NewNeighborhood creates a catalog entry with a fresh identifier.
func NewNeighborhood(name, region string, lat, lon float64) Neighborhood {
	return Neighborhood{
		ID:         uuid.New(),
		Name:       name,
		Region:     region,
		Coordinate: Coordinate{Latitude: lat, Longitude: lon},
	}
}
