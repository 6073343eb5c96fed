package db_models

type Attraction struct {
	BaseModel
	Name                 string `gorm:"not null;index"`
	Description          string
	Category             string `gorm:"default:'Nature Scenery'"`
	Location             string
	SuitableForWetSeason *bool
	Indoor               *bool
	ImageURL             string
	PriceRange           string `gorm:"default:'Medium'"`
	OpeningHours         string
	RecommendedDuration  string
}

type Restaurant struct {
	BaseModel
	Name         string `gorm:"not null;index"`
	Description  string
	CuisineType  string `gorm:"default:'Australian Local'"`
	Location     string
	PriceRange   string `gorm:"default:'$$'"`
	ImageURL     string
	Specialties  string
	OpeningHours string
}
