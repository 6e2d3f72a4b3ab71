package models

// ResultInfo is one human-readable justification for a recommended
// neighborhood: an icon tag plus a short qualitative label.
type ResultInfo struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// RecommendedNeighborhood is one ranked result of a recommendation
// run. All scores are on the 0-100 display scale. Immutable once
// created by the scoring stage.
type RecommendedNeighborhood struct {
	Name               string       `json:"name"`
	Coordinate         Coordinate   `json:"coordinate"`
	CompatibilityScore float64      `json:"compatibility_score"`
	LifestyleScore     float64      `json:"lifestyle_score"`
	PriorityScore      float64      `json:"priority_score"`
	TransportScore     float64      `json:"transport_score"`
	PriceScore         float64      `json:"price_score"`
	Rating             float64      `json:"rating"`
	Reasons            []ResultInfo `json:"reasons"`
}
