package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const PlanStatusPlanning = "Planning"

// TravelPlan is written once per completed conversation and never updated.
type TravelPlan struct {
	BaseModel
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	SessionID     string    `gorm:"index"`
	PlanName      string
	DepartureCity string
	TravelDate    string // YYYY-MM-DD
	DurationDays  int
	Budget        float64
	IsWetSeason   bool
	Interests     datatypes.JSON
	Preferences   string
	Content       string `gorm:"type:text"`
	Status        string `gorm:"default:Planning"`
	AttractionIDs datatypes.JSON
	RestaurantIDs datatypes.JSON
}
