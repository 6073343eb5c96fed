package response_models

type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	At      string `json:"at"`
}

type TripRequest struct {
	TravelDate    string   `json:"travel_date,omitempty"`
	Season        string   `json:"season,omitempty"`
	DurationDays  int      `json:"duration_days,omitempty"`
	Budget        float64  `json:"budget,omitempty"`
	DepartureCity string   `json:"departure_city,omitempty"`
	Interests     []string `json:"interests"`
	Preferences   string   `json:"preferences,omitempty"`
}

type GeneratedPlan struct {
	PlanID   string        `json:"plan_id,omitempty"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Mentions MentionResult `json:"mentions"`
	Saved    bool          `json:"saved"`
}

type Conversation struct {
	ID                 string                `json:"id"`
	CurrentStep        int                   `json:"current_step"`
	TotalSteps         int                   `json:"total_steps"`
	StepLabel          string                `json:"step_label"`
	StepLabels         []string              `json:"step_labels"`
	Completed          bool                  `json:"completed"`
	GenerationInFlight bool                  `json:"generation_in_flight"`
	Reply              string                `json:"reply,omitempty"`
	Request            TripRequest           `json:"request"`
	Messages           []ConversationMessage `json:"messages"`
	Plan               *GeneratedPlan        `json:"plan,omitempty"`
	Failure            string                `json:"failure,omitempty"`
}
