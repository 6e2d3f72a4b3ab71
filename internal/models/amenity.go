package models

// Category is one of the closed set of amenity classes counted around
// a neighborhood center.
type Category string

const (
	CategoryHospitals    Category = "hospitals"
	CategoryGroceries    Category = "groceries"
	CategorySchools      Category = "schools"
	CategoryGasStations  Category = "gas_stations"
	CategoryCinema       Category = "cinema"
	CategoryCafes        Category = "cafes"
	CategoryRestaurants  Category = "restaurants"
	CategorySupermarkets Category = "supermarkets"
	CategoryMall         Category = "mall"
	CategoryParks        Category = "parks"
	CategoryLibraries    Category = "libraries"
	CategoryMetro        Category = "metro"
)

// AllCategories lists every category in a fixed order.
func AllCategories() []Category {
	return []Category{
		CategoryHospitals,
		CategoryGroceries,
		CategorySchools,
		CategoryGasStations,
		CategoryCinema,
		CategoryCafes,
		CategoryRestaurants,
		CategorySupermarkets,
		CategoryMall,
		CategoryParks,
		CategoryLibraries,
		CategoryMetro,
	}
}

// SearchQuery returns the Arabic query string sent to the places
// provider for this category.
func (c Category) SearchQuery() string {
	switch c {
	case CategoryHospitals:
		return "مستشفيات"
	case CategoryGroceries:
		return "تموينات"
	case CategorySchools:
		return "مدارس"
	case CategoryGasStations:
		return "محطات بنزين"
	case CategoryCinema:
		return "السينما"
	case CategoryCafes:
		return "مقاهي"
	case CategoryRestaurants:
		return "المطاعم"
	case CategorySupermarkets:
		return "سوبرماركت"
	case CategoryMall:
		return "مركز تجاري"
	case CategoryParks:
		return "الحدائق"
	case CategoryLibraries:
		return "المكتبات"
	case CategoryMetro:
		return "مترو"
	}
	return string(c)
}

// Icon returns the display icon tag for this category.
func (c Category) Icon() string {
	switch c {
	case CategoryParks:
		return "calm"
	case CategoryCinema:
		return "entertainment"
	case CategorySchools:
		return "schools"
	case CategoryMall:
		return "mall"
	case CategoryMetro:
		return "metro"
	case CategoryGroceries, CategorySupermarkets:
		return "full_services"
	case CategoryGasStations:
		return "fuelpump"
	case CategoryLibraries:
		return "books"
	case CategoryHospitals:
		return "stethoscope"
	}
	return "services"
}

// Place is one point-of-interest returned by the places provider.
type Place struct {
	Name       string     `json:"name"`
	Address    string     `json:"address,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}
