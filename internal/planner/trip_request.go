package planner

import (
	"fmt"
	"strings"
	"time"
)

// TripRequest accumulates the answers given during a conversation.
// Season is derived from TravelDate and has no field of its own.
type TripRequest struct {
	TravelDate    time.Time `json:"travel_date"`
	DurationDays  int       `json:"duration_days"`
	Budget        float64   `json:"budget"`
	DepartureCity string    `json:"departure_city"`
	Interests     []string  `json:"interests"`
	Preferences   string    `json:"preferences"`
}

func (r TripRequest) HasDate() bool {
	return !r.TravelDate.IsZero()
}

// Season returns "" until a travel date has been recorded.
func (r TripRequest) Season() Season {
	if !r.HasDate() {
		return ""
	}
	return Classify(r.TravelDate)
}

// Title is the display name used when the generated plan is saved.
func (r TripRequest) Title() string {
	return fmt.Sprintf("%s to Darwin %d-Day Trip", r.DepartureCity, r.DurationDays)
}

// Summary renders interests and preferences in the form stored alongside a plan.
func (r TripRequest) Summary() string {
	return fmt.Sprintf("Interests: %s; %s", strings.Join(r.Interests, ", "), r.Preferences)
}

func (r TripRequest) clone() TripRequest {
	out := r
	if r.Interests != nil {
		out.Interests = append([]string(nil), r.Interests...)
	}
	return out
}
