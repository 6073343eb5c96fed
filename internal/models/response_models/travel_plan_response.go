package response_models

type TravelPlan struct {
	ID            string   `json:"id"`
	PlanName      string   `json:"plan_name"`
	DepartureCity string   `json:"departure_city"`
	TravelDate    string   `json:"travel_date"`
	DurationDays  int      `json:"duration_days"`
	Budget        float64  `json:"budget"`
	IsWetSeason   bool     `json:"is_wet_season"`
	Interests     []string `json:"interests"`
	Preferences   string   `json:"preferences"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	AttractionIDs []string `json:"attraction_ids"`
	RestaurantIDs []string `json:"restaurant_ids"`
}

type TravelPlanDetail struct {
	TravelPlan
	Content     string       `json:"content"`
	Attractions []Attraction `json:"attractions"`
	Restaurants []Restaurant `json:"restaurants"`
}
