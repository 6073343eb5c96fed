package response_models

type Attraction struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	Location             string `json:"location"`
	SuitableForWetSeason *bool  `json:"suitable_for_wet_season,omitempty"`
	Indoor               *bool  `json:"indoor,omitempty"`
	ImageURL             string `json:"image_url,omitempty"`
	PriceRange           string `json:"price_range"`
	OpeningHours         string `json:"opening_hours,omitempty"`
	RecommendedDuration  string `json:"recommended_duration,omitempty"`
}

type Restaurant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CuisineType  string `json:"cuisine_type"`
	Location     string `json:"location"`
	PriceRange   string `json:"price_range"`
	ImageURL     string `json:"image_url,omitempty"`
	Specialties  string `json:"specialties,omitempty"`
	OpeningHours string `json:"opening_hours,omitempty"`
}

// Mention is one catalog entity found in a block of text.
type Mention struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Rule string `json:"rule"`
}

type MentionResult struct {
	Attractions []Mention `json:"attractions"`
	Restaurants []Mention `json:"restaurants"`
}
