package request_models

type AttractionRequest struct {
	Name                 string `json:"name" binding:"required,max=200"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	Location             string `json:"location"`
	SuitableForWetSeason *bool  `json:"suitable_for_wet_season"`
	Indoor               *bool  `json:"indoor"`
	ImageURL             string `json:"image_url" binding:"omitempty,url"`
	PriceRange           string `json:"price_range"`
	OpeningHours         string `json:"opening_hours"`
	RecommendedDuration  string `json:"recommended_duration"`
}

type RestaurantRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Description  string `json:"description"`
	CuisineType  string `json:"cuisine_type"`
	Location     string `json:"location"`
	PriceRange   string `json:"price_range"`
	ImageURL     string `json:"image_url" binding:"omitempty,url"`
	Specialties  string `json:"specialties"`
	OpeningHours string `json:"opening_hours"`
}

type MentionRequest struct {
	Text string `json:"text" binding:"required"`
}
