package recommend

import (
	"github.com/rs/zerolog/log"

	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/models"
	"github.com/haikapp/haik/internal/questionnaire"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// cappedScore normalizes a count to 0..1 with a linear ramp that
// saturates at cap.
func cappedScore(value, cap int) float64 {
	if cap <= 0 {
		return 0
	}
	return clamp01(float64(value) / float64(cap))
}

// distanceScore maps a distance to 0..1: 0m scores 1.0, maxMeters and
// beyond score 0.0.
func distanceScore(meters, maxMeters float64) float64 {
	if maxMeters <= 0 {
		return 0
	}
	return clamp01(1.0 - meters/maxMeters)
}

func (e *Engine) count(n models.Neighborhood, cat models.Category) int {
	return e.fetcher.Cache().Count(n.ID, cat)
}

// activityCount is the activity-intensity proxy.
func (e *Engine) activityCount(n models.Neighborhood) int {
	return e.count(n, models.CategoryCafes) +
		e.count(n, models.CategoryRestaurants) +
		e.count(n, models.CategoryMall) +
		e.count(n, models.CategoryCinema)
}

// fullServicesCount is the services-completeness proxy.
func (e *Engine) fullServicesCount(n models.Neighborhood) int {
	return e.count(n, models.CategoryGroceries) +
		e.count(n, models.CategorySupermarkets) +
		e.count(n, models.CategoryHospitals) +
		e.count(n, models.CategoryGasStations) +
		e.count(n, models.CategoryMall)
}

func (e *Engine) servicesCount(n models.Neighborhood) int {
	return e.count(n, models.CategoryGroceries) +
		e.count(n, models.CategorySupermarkets) +
		e.count(n, models.CategoryHospitals) +
		e.count(n, models.CategoryGasStations)
}

func (e *Engine) entertainmentCount(n models.Neighborhood) int {
	return e.count(n, models.CategoryCafes) +
		e.count(n, models.CategoryRestaurants) +
		e.count(n, models.CategoryCinema) +
		e.count(n, models.CategoryParks)
}

func (e *Engine) lifestyleScore(n models.Neighborhood, answers *models.AnswerSet) float64 {
	choice, ok := answers.Lifestyle()
	if !ok {
		return 0.5
	}
	switch choice {
	case models.LifestyleQuiet:
		return 1.0 - cappedScore(e.activityCount(n), e.config.Caps.Activity)
	case models.LifestyleActive:
		return cappedScore(e.activityCount(n), e.config.Caps.Activity)
	case models.LifestyleFullServices:
		return cappedScore(e.fullServicesCount(n), e.config.Caps.FullServices)
	}
	return 0.5
}

func (e *Engine) transportScore(n models.Neighborhood, answers *models.AnswerSet) float64 {
	choice, ok := answers.Transport()
	if !ok {
		return 0.7
	}
	metro := e.count(n, models.CategoryMetro)

	switch choice {
	case models.TransportMetroPrimary:
		if metro >= 2 {
			return 1.0
		}
		if metro == 1 {
			return 0.6
		}
		return 0.0
	case models.TransportMetroSometimes:
		if metro >= 1 {
			return 1.0
		}
		return 0.0
	case models.TransportCar:
		// Metro availability is a non-factor.
		return 1.0
	}
	return 0.7
}

func (e *Engine) priceScore(n models.Neighborhood, answers *models.AnswerSet) float64 {
	budget, ok := answers.Budget()
	if !ok {
		return 0.5
	}
	tier := e.prices.TierFor(n.Name)
	if tier == models.PriceTierUnknown {
		return 0.5
	}

	switch budget {
	case models.BudgetLow:
		switch tier {
		case models.PriceTierLow:
			return 1.0
		case models.PriceTierMid:
			return 0.35
		default:
			return 0.0
		}
	case models.BudgetMid:
		if tier == models.PriceTierMid {
			return 1.0
		}
		return 0.4
	case models.BudgetHigh:
		switch tier {
		case models.PriceTierHigh:
			return 1.0
		case models.PriceTierMid:
			return 0.45
		default:
			return 0.15
		}
	}
	return 0.5
}

func (e *Engine) priorityScore(n models.Neighborhood, answers *models.AnswerSet) float64 {
	priorities := answers.Priorities()
	if len(priorities) != questionnaire.MaxPriorities {
		// Caller contract violation; degrade instead of failing the run.
		log.Warn().
			Int("priorities", len(priorities)).
			Msg("priority score requires exactly two selections")
		return 0
	}

	first := e.scoreOnePriority(n, priorities[0], answers)
	second := e.scoreOnePriority(n, priorities[1], answers)
	return e.config.FirstPriorityWeight*first + e.config.SecondPriorityWeight*second
}

func (e *Engine) scoreOnePriority(n models.Neighborhood, p models.PriorityChoice, answers *models.AnswerSet) float64 {
	switch p {
	case models.PriorityNearWork, models.PriorityNearFamily:
		anchor, ok := e.anchorCoordinate(p, answers)
		if !ok {
			return 0
		}
		d := catalog.DistanceMeters(n.Coordinate, anchor)
		return distanceScore(d, e.config.AnchorWindowMeters)
	case models.PriorityServices:
		return cappedScore(e.servicesCount(n), e.config.Caps.Services)
	case models.PrioritySchools:
		return cappedScore(e.count(n, models.CategorySchools), e.config.Caps.Schools)
	case models.PriorityMalls:
		return cappedScore(e.count(n, models.CategoryMall), e.config.Caps.Malls)
	case models.PriorityEntertainment:
		return cappedScore(e.entertainmentCount(n), e.config.Caps.Entertainment)
	}
	return 0
}

// anchorCoordinate resolves the picked anchor neighborhood for an
// anchor-flagged priority to its catalog coordinate.
func (e *Engine) anchorCoordinate(p models.PriorityChoice, answers *models.AnswerSet) (models.Coordinate, bool) {
	name, ok := answers.AnchorFor(string(p))
	if !ok {
		return models.Coordinate{}, false
	}
	n, ok := e.catalog.ByName(name)
	if !ok {
		return models.Coordinate{}, false
	}
	return n.Coordinate, true
}
