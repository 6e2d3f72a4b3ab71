package recommend

import (
	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/models"
)

// reasonsFor builds the justification labels for a candidate: one per
// selected priority in selection order, then exactly one for the
// transport answer, capped at three items. Labels are deterministic
// functions of already-fetched counts and distances; no I/O.
func (e *Engine) reasonsFor(n models.Neighborhood, answers *models.AnswerSet) []models.ResultInfo {
	var items []models.ResultInfo

	for _, p := range answers.Priorities() {
		items = append(items, e.priorityReason(n, p, answers))
	}

	transport, _ := answers.Transport()
	items = append(items, e.transportReason(n, transport))

	if len(items) > 3 {
		items = items[:3]
	}
	return items
}

func (e *Engine) priorityReason(n models.Neighborhood, p models.PriorityChoice, answers *models.AnswerSet) models.ResultInfo {
	switch p {
	case models.PriorityNearWork:
		return models.ResultInfo{Icon: "briefcase", Label: e.nearLabel(n, p, answers)}
	case models.PriorityNearFamily:
		return models.ResultInfo{Icon: "house", Label: e.nearLabel(n, p, answers)}
	case models.PriorityServices:
		return models.ResultInfo{Icon: "cart", Label: servicesLabel(e.servicesCount(n))}
	case models.PrioritySchools:
		return models.ResultInfo{Icon: "schools", Label: schoolsLabel(e.count(n, models.CategorySchools))}
	case models.PriorityMalls:
		return models.ResultInfo{Icon: "mall", Label: mallsLabel(e.count(n, models.CategoryMall))}
	case models.PriorityEntertainment:
		return models.ResultInfo{Icon: "entertainment", Label: entertainmentLabel(e.entertainmentCount(n))}
	}
	return models.ResultInfo{Icon: "star", Label: "أولوية"}
}

func (e *Engine) transportReason(n models.Neighborhood, t models.TransportChoice) models.ResultInfo {
	switch t {
	case models.TransportMetroPrimary:
		return models.ResultInfo{Icon: "metro", Label: metroPrimaryLabel(e.count(n, models.CategoryMetro))}
	case models.TransportMetroSometimes:
		return models.ResultInfo{Icon: "metro", Label: metroSometimesLabel(e.count(n, models.CategoryMetro))}
	case models.TransportCar:
		return models.ResultInfo{Icon: "car", Label: "مناسب للسيارة"}
	}
	return models.ResultInfo{Icon: "car", Label: "تنقل مرن"}
}

// nearLabel buckets the distance to the picked anchor qualitatively.
func (e *Engine) nearLabel(n models.Neighborhood, p models.PriorityChoice, answers *models.AnswerSet) string {
	anchor, ok := e.anchorCoordinate(p, answers)
	if !ok {
		return "قريب"
	}
	km := catalog.DistanceMeters(n.Coordinate, anchor) / 1000.0
	switch {
	case km <= 3:
		return "قريب جدًا"
	case km <= 8:
		return "قريب"
	case km <= 15:
		return "متوسط القرب"
	default:
		return "بعيد نسبيًا"
	}
}

func servicesLabel(v int) string {
	switch {
	case v >= 35:
		return "خدمات كثيرة"
	case v >= 18:
		return "خدمات جيدة"
	default:
		return "خدمات محدودة"
	}
}

func schoolsLabel(v int) string {
	switch {
	case v >= 12:
		return "مدارس كثيرة"
	case v >= 5:
		return "مدارس متوفرة"
	default:
		return "مدارس قليلة"
	}
}

func mallsLabel(v int) string {
	switch {
	case v >= 6:
		return "مولات كثيرة"
	case v >= 2:
		return "مولات متوفرة"
	default:
		return "مولات قليلة"
	}
}

func entertainmentLabel(v int) string {
	switch {
	case v >= 35:
		return "ترفيه كثير"
	case v >= 18:
		return "ترفيه متوفر"
	default:
		return "ترفيه قليل"
	}
}

func metroPrimaryLabel(m int) string {
	switch {
	case m >= 2:
		return "مترو مناسب"
	case m == 1:
		return "مترو محدود"
	default:
		return "بدون مترو قريب"
	}
}

func metroSometimesLabel(m int) string {
	if m >= 1 {
		return "مترو متوفر"
	}
	return "بدون مترو قريب"
}
