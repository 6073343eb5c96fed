package planner

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Step int

const (
	StepAwaitingDate Step = iota
	StepAwaitingDuration
	StepAwaitingBudget
	StepAwaitingDeparture
	StepAwaitingInterests
	StepAwaitingPreferences
	StepDone
)

// QuestionCount is the number of answers needed to reach StepDone.
const QuestionCount = int(StepDone)

const MaxDurationDays = 30

const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

const (
	GreetingMessage = "Hello! I'm the Darwin Travel AI Assistant. I'll ask you a few quick questions and then put together a personalised itinerary. " +
		"When are you planning to visit Darwin? (Please enter departure date, format: YYYY-MM-DD, e.g., 2024-03-15)"
	AlreadyGeneratedMessage  = "I've already generated a complete travel plan for you. If you need to replan, please click the restart button below."
	GenerationFailedMessage  = "Sorry, there was a problem generating the plan. Please try again or contact customer service."
	GenerationStartedMessage = "Thanks! I'm putting together your Darwin travel plan now. This usually takes under a minute."
)

var stepLabels = map[Step]string{
	StepAwaitingDate:        "travel date",
	StepAwaitingDuration:    "duration",
	StepAwaitingBudget:      "budget",
	StepAwaitingDeparture:   "departure city",
	StepAwaitingInterests:   "interests",
	StepAwaitingPreferences: "preferences",
	StepDone:                "done",
}

func (s Step) String() string {
	if label, ok := stepLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// StepLabels lists the question labels in the order they are asked.
func StepLabels() []string {
	out := make([]string, 0, QuestionCount)
	for s := StepAwaitingDate; s < StepDone; s++ {
		out = append(out, s.String())
	}
	return out
}

type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ConversationState is threaded through every Collector call. Callers keep
// the returned value and pass it back in on the next answer.
type ConversationState struct {
	Step               Step        `json:"step"`
	Request            TripRequest `json:"request"`
	Transcript         []Message   `json:"transcript"`
	GenerationInFlight bool        `json:"generation_in_flight"`
}

func (s ConversationState) clone() ConversationState {
	out := s
	out.Request = s.Request.clone()
	out.Transcript = append([]Message(nil), s.Transcript...)
	return out
}

type Reply struct {
	Prompt   string
	Advanced bool
	// GenerationRequested is set on the single transition into StepDone.
	GenerationRequested bool
}

type Collector struct {
	location *time.Location
	now      func() time.Time
}

func NewCollector(location *time.Location, now func() time.Time) *Collector {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Collector{location: location, now: now}
}

func (c *Collector) Start() ConversationState {
	return ConversationState{
		Step:       StepAwaitingDate,
		Transcript: []Message{c.message(RoleAssistant, GreetingMessage)},
	}
}

// Reset discards the request and transcript. It is refused while a
// generation is outstanding.
func (c *Collector) Reset(state ConversationState) (ConversationState, error) {
	if state.GenerationInFlight {
		return state, ErrBusy
	}
	return c.Start(), nil
}

// Settle records the outcome of the generation started when the
// conversation reached StepDone.
func (c *Collector) Settle(state ConversationState, outcome string) ConversationState {
	next := state.clone()
	next.GenerationInFlight = false
	if outcome != "" {
		next.Transcript = append(next.Transcript, c.message(RoleAssistant, outcome))
	}
	return next
}

func (c *Collector) Submit(state ConversationState, raw string) (ConversationState, Reply, error) {
	if state.GenerationInFlight {
		return state, Reply{}, ErrBusy
	}
	if state.Step >= StepDone {
		return state, Reply{Prompt: AlreadyGeneratedMessage}, nil
	}

	next := state.clone()
	var prompt string

	switch state.Step {
	case StepAwaitingDate:
		date, err := ParseTravelDate(raw, c.location)
		if err != nil {
			return state, Reply{}, stepError(state.Step, ErrParse,
				"Sorry, I couldn't read that date. Please use the format YYYY-MM-DD, e.g., 2024-03-15.")
		}
		next.Request.TravelDate = date
		prompt = datePrompt(date)

	case StepAwaitingDuration:
		days, err := parseDuration(raw)
		if err != nil {
			return state, Reply{}, stepError(state.Step, ErrValidation,
				fmt.Sprintf("Please enter the number of days as a whole number between 1 and %d.", MaxDurationDays))
		}
		next.Request.DurationDays = days
		prompt = fmt.Sprintf("Got it, %d days in Darwin. What's your budget in AUD? (e.g., 2000)", days)

	case StepAwaitingBudget:
		budget, err := parseBudget(raw)
		if err != nil {
			return state, Reply{}, stepError(state.Step, ErrValidation,
				"Please enter your budget as a positive amount in AUD, e.g., 2000.")
		}
		next.Request.Budget = budget
		prompt = fmt.Sprintf("A budget of AUD %s noted. Which city will you be departing from?", FormatBudget(budget))

	case StepAwaitingDeparture:
		city := strings.TrimSpace(raw)
		if city == "" {
			return state, Reply{}, stepError(state.Step, ErrValidation,
				"Please tell me which city you'll be departing from.")
		}
		next.Request.DepartureCity = city
		prompt = fmt.Sprintf("Departing from %s. What are you interested in? (e.g., Nature, Wildlife, Food, Culture; separate them with commas)", city)

	case StepAwaitingInterests:
		next.Request.Interests = ParseInterests(raw)
		prompt = "Any other preferences or special requirements? (e.g., travelling with kids, accessibility needs, or type 'none')"

	case StepAwaitingPreferences:
		next.Request.Preferences = raw
		next.GenerationInFlight = true
		prompt = GenerationStartedMessage
	}

	next.Step = state.Step + 1
	next.Transcript = append(next.Transcript,
		c.message(RoleUser, raw),
		c.message(RoleAssistant, prompt))

	return next, Reply{
		Prompt:              prompt,
		Advanced:            true,
		GenerationRequested: next.Step == StepDone,
	}, nil
}

func (c *Collector) message(role, content string) Message {
	return Message{Role: role, Content: content, At: c.now()}
}

func datePrompt(date time.Time) string {
	season := "dry season (May to October), the best time for outdoor adventures"
	if Classify(date).IsWet() {
		season = "wet season (November to April), so expect heat, humidity and afternoon storms"
	}
	return fmt.Sprintf("Great! You plan to arrive on %s, which falls in Darwin's %s. How many days do you plan to stay?",
		date.Format("2006-01-02"), season)
}

var (
	durationPattern = regexp.MustCompile(`(?i)^(\d+)\s*(?:days?)?$`)
	budgetNoise     = regexp.MustCompile(`(?i)aud|\$|,|\s`)
	interestSplit   = regexp.MustCompile(`[,，、]`)
)

func parseDuration(raw string) (int, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, ErrValidation
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 || days > MaxDurationDays {
		return 0, ErrValidation
	}
	return days, nil
}

func parseBudget(raw string) (float64, error) {
	cleaned := budgetNoise.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, ErrValidation
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrValidation
	}
	return v, nil
}

// ParseInterests splits on ASCII, fullwidth and ideographic commas. Empty
// tokens are dropped and repeats (ignoring case) keep their first spelling.
func ParseInterests(raw string) []string {
	parts := interestSplit.Split(raw, -1)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

func FormatBudget(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
