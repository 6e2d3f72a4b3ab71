package pricedata

import "github.com/haikapp/haik/internal/models"

// TierBoundaries returns the 33rd/66th percentile cut prices over all
// known prices. ok is false when fewer than MinTierSamples prices are
// known, in which case callers must treat the price signal as
// unavailable.
func (s *Service) TierBoundaries() (low, high float64, ok bool) {
	n := len(s.known)
	if n < MinTierSamples {
		return 0, 0, false
	}
	return s.known[n*33/100], s.known[n*66/100], true
}

// ClassifyPrice places a price into its system-wide tertile.
func (s *Service) ClassifyPrice(price float64) models.PriceTier {
	low, high, ok := s.TierBoundaries()
	if !ok {
		return models.PriceTierUnknown
	}
	switch {
	case price <= low:
		return models.PriceTierLow
	case price <= high:
		return models.PriceTierMid
	default:
		return models.PriceTierHigh
	}
}

// TierFor classifies a neighborhood's average price. Unknown when the
// neighborhood has no price data or the dataset is too small to split.
func (s *Service) TierFor(name string, aliases ...string) models.PriceTier {
	price, ok := s.AvgPricePerMeter(name, aliases...)
	if !ok {
		return models.PriceTierUnknown
	}
	return s.ClassifyPrice(price)
}
