package planner

type Kind string

const (
	KindAttraction Kind = "attraction"
	KindRestaurant Kind = "restaurant"
)

// Entity is the read-only view of a catalog record used for prompting and
// mention matching. Category holds the cuisine for restaurants.
type Entity struct {
	ID                string `json:"id"`
	Kind              Kind   `json:"kind"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	Location          string `json:"location,omitempty"`
	PriceRange        string `json:"price_range,omitempty"`
	Specialties       string `json:"specialties,omitempty"`
	WetSeasonSuitable *bool  `json:"wet_season_suitable,omitempty"`
	Indoor            *bool  `json:"indoor,omitempty"`
}

// Catalog is a point-in-time snapshot. Nothing in this package mutates it.
type Catalog struct {
	Attractions []Entity `json:"attractions"`
	Restaurants []Entity `json:"restaurants"`
}

func (c Catalog) Len() int {
	return len(c.Attractions) + len(c.Restaurants)
}
