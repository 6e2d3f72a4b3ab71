// Package amenity resolves which amenity categories a recommendation
// run must measure and fetches per-neighborhood counts from the
// places provider, caching results for the session.
package amenity

import "github.com/haikapp/haik/internal/models"

// CategorySet is an unordered set of amenity categories.
type CategorySet map[models.Category]struct{}

// Add inserts a category into the set.
func (s CategorySet) Add(c models.Category) { s[c] = struct{}{} }

// Contains reports set membership.
func (s CategorySet) Contains(c models.Category) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the set's categories in the fixed catalog order of
// AllCategories, for deterministic iteration.
func (s CategorySet) Sorted() []models.Category {
	out := make([]models.Category, 0, len(s))
	for _, c := range models.AllCategories() {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// ResolveCategories maps the collected answers to the minimal set of
// categories the scorer needs measured. Priorities with no amenity
// signal (near work, near family) and the budget answer contribute
// nothing; their scores come from geometry and static price data.
func ResolveCategories(answers *models.AnswerSet) CategorySet {
	set := make(CategorySet)

	if l, ok := answers.Lifestyle(); ok {
		switch l {
		case models.LifestyleQuiet, models.LifestyleActive:
			set.Add(models.CategoryCafes)
			set.Add(models.CategoryRestaurants)
			set.Add(models.CategoryMall)
			set.Add(models.CategoryCinema)
		case models.LifestyleFullServices:
			set.Add(models.CategoryGroceries)
			set.Add(models.CategorySupermarkets)
			set.Add(models.CategoryHospitals)
			set.Add(models.CategoryGasStations)
			set.Add(models.CategoryMall)
		}
	}

	for _, p := range answers.Priorities() {
		switch p {
		case models.PriorityServices:
			set.Add(models.CategoryGroceries)
			set.Add(models.CategorySupermarkets)
			set.Add(models.CategoryHospitals)
			set.Add(models.CategoryGasStations)
		case models.PrioritySchools:
			set.Add(models.CategorySchools)
		case models.PriorityMalls:
			set.Add(models.CategoryMall)
		case models.PriorityEntertainment:
			set.Add(models.CategoryCafes)
			set.Add(models.CategoryRestaurants)
			set.Add(models.CategoryCinema)
			set.Add(models.CategoryParks)
		}
	}

	if t, ok := answers.Transport(); ok {
		if t == models.TransportMetroPrimary || t == models.TransportMetroSometimes {
			set.Add(models.CategoryMetro)
		}
	}

	return set
}
