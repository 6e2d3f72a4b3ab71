package models

// PriceRecord is one row of the static price-per-square-meter dataset.
// AvgPricePerMeter is nil when no transactions were recorded.
type PriceRecord struct {
	Neighborhood      string   `json:"neighborhood"`
	AvgPricePerMeter  *float64 `json:"avgPricePerMeter"`
	TransactionsCount int      `json:"transactionsCount"`
}

// PriceTier classifies a neighborhood's average price against the
// system-wide tertiles.
type PriceTier int

const (
	// PriceTierUnknown means the neighborhood has no price data or the
	// dataset has too few samples to split into tiers.
	PriceTierUnknown PriceTier = iota
	PriceTierLow
	PriceTierMid
	PriceTierHigh
)

func (t PriceTier) String() string {
	switch t {
	case PriceTierLow:
		return "low"
	case PriceTierMid:
		return "mid"
	case PriceTierHigh:
		return "high"
	}
	return "unknown"
}
