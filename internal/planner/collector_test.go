package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector() *Collector {
	fixed := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	return NewCollector(time.UTC, func() time.Time { return fixed })
}

func submitAll(t *testing.T, c *Collector, state ConversationState, answers ...string) ConversationState {
	t.Helper()
	for _, a := range answers {
		var err error
		state, _, err = c.Submit(state, a)
		require.NoError(t, err, "answer %q", a)
	}
	return state
}

func TestCollector_Start(t *testing.T) {
	c := newTestCollector()
	s := c.Start()

	assert.Equal(t, StepAwaitingDate, s.Step)
	assert.False(t, s.GenerationInFlight)
	require.Len(t, s.Transcript, 1)
	assert.Equal(t, RoleAssistant, s.Transcript[0].Role)
	assert.Equal(t, GreetingMessage, s.Transcript[0].Content)
	assert.Equal(t, TripRequest{}, s.Request)
}

func TestCollector_DateStep(t *testing.T) {
	c := newTestCollector()
	start := c.Start()

	next, reply, err := c.Submit(start, "???")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepAwaitingDate, stepErr.Step)
	assert.NotEmpty(t, stepErr.Message)
	assert.False(t, reply.Advanced)
	assert.Equal(t, StepAwaitingDate, next.Step)
	assert.Len(t, next.Transcript, 1)

	// numbers meant for later questions are not dates
	for _, bare := range []string{"2000", "1500", "1700000000", "20240315"} {
		next, reply, err = c.Submit(start, bare)
		assert.ErrorIs(t, err, ErrParse, "answer %q", bare)
		assert.False(t, reply.Advanced)
		assert.Equal(t, StepAwaitingDate, next.Step)
		assert.True(t, next.Request.TravelDate.IsZero())
	}

	next, reply, err = c.Submit(start, "2024-03-15")
	require.NoError(t, err)
	assert.True(t, reply.Advanced)
	assert.Equal(t, StepAwaitingDuration, next.Step)
	assert.Equal(t, SeasonWet, next.Request.Season())
	assert.Contains(t, reply.Prompt, "wet season")
	assert.Len(t, next.Transcript, 3)

	// the input state is untouched
	assert.Equal(t, StepAwaitingDate, start.Step)
	assert.Len(t, start.Transcript, 1)
}

func TestCollector_NumericValidation(t *testing.T) {
	c := newTestCollector()
	atDuration := submitAll(t, c, c.Start(), "2024-07-01")

	for _, bad := range []string{"", "abc", "0", "-3", "2.5", "31", "five days"} {
		next, reply, err := c.Submit(atDuration, bad)
		assert.ErrorIs(t, err, ErrValidation, "duration %q", bad)
		assert.False(t, reply.Advanced)
		assert.Equal(t, StepAwaitingDuration, next.Step)
	}

	atBudget, _, err := c.Submit(atDuration, "5 days")
	require.NoError(t, err)
	assert.Equal(t, 5, atBudget.Request.DurationDays)

	for _, bad := range []string{"", "cheap", "0", "-100", "NaN", "Inf"} {
		next, _, err := c.Submit(atBudget, bad)
		assert.ErrorIs(t, err, ErrValidation, "budget %q", bad)
		assert.Equal(t, StepAwaitingBudget, next.Step)
	}

	next, _, err := c.Submit(atBudget, "AUD $2,500.50")
	require.NoError(t, err)
	assert.Equal(t, 2500.50, next.Request.Budget)
	assert.Equal(t, StepAwaitingDeparture, next.Step)
}

func TestCollector_DepartureRequired(t *testing.T) {
	c := newTestCollector()
	s := submitAll(t, c, c.Start(), "2024-07-01", "4", "1500")

	next, _, err := c.Submit(s, "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepAwaitingDeparture, next.Step)

	next, _, err = c.Submit(s, "  Sydney ")
	require.NoError(t, err)
	assert.Equal(t, "Sydney", next.Request.DepartureCity)
}

func TestParseInterests(t *testing.T) {
	assert.Equal(t, []string{"Nature", "Food", "Wildlife"}, ParseInterests("Nature, Food,  Wildlife"))
	assert.Equal(t, []string{"Nature", "Food", "Culture"}, ParseInterests("Nature，Food、Culture"))
	assert.Equal(t, []string{"Nature"}, ParseInterests("Nature, nature, ,NATURE"))
	assert.Empty(t, ParseInterests(" , ,, "))
}

func TestCollector_EmptyInterestsAdvance(t *testing.T) {
	c := newTestCollector()
	s := submitAll(t, c, c.Start(), "2024-07-01", "4", "1500", "Perth")

	next, reply, err := c.Submit(s, ", ,")
	require.NoError(t, err)
	assert.True(t, reply.Advanced)
	assert.Empty(t, next.Request.Interests)
	assert.Equal(t, StepAwaitingPreferences, next.Step)
}

func TestCollector_EndToEnd(t *testing.T) {
	c := newTestCollector()
	s := c.Start()

	answers := []string{"2024-07-01", "5", "3000", "Melbourne", "Nature, Food, Wildlife"}
	for _, a := range answers {
		var reply Reply
		var err error
		s, reply, err = c.Submit(s, a)
		require.NoError(t, err)
		assert.False(t, reply.GenerationRequested)
	}

	s, reply, err := c.Submit(s, "none")
	require.NoError(t, err)
	assert.True(t, reply.GenerationRequested)
	assert.Equal(t, StepDone, s.Step)
	assert.True(t, s.GenerationInFlight)
	assert.Equal(t, "none", s.Request.Preferences)
	assert.Equal(t, "Melbourne to Darwin 5-Day Trip", s.Request.Title())
	assert.Equal(t, "Interests: Nature, Food, Wildlife; none", s.Request.Summary())

	before := s.Request
	busy, reply, err := c.Submit(s, "another answer")
	assert.ErrorIs(t, err, ErrBusy)
	assert.False(t, reply.GenerationRequested)
	assert.Equal(t, before, busy.Request)

	_, err = c.Reset(s)
	assert.ErrorIs(t, err, ErrBusy)

	settled := c.Settle(s, "Your plan is ready.")
	assert.False(t, settled.GenerationInFlight)
	assert.Equal(t, StepDone, settled.Step)
	assert.Equal(t, "Your plan is ready.", settled.Transcript[len(settled.Transcript)-1].Content)

	again, reply, err := c.Submit(settled, "hello?")
	require.NoError(t, err)
	assert.Equal(t, AlreadyGeneratedMessage, reply.Prompt)
	assert.False(t, reply.Advanced)
	assert.False(t, reply.GenerationRequested)
	assert.Equal(t, settled, again)
}

func TestCollector_Reset(t *testing.T) {
	c := newTestCollector()
	s := submitAll(t, c, c.Start(), "2024-07-01", "5", "3000", "Melbourne")

	fresh, err := c.Reset(s)
	require.NoError(t, err)
	assert.Equal(t, StepAwaitingDate, fresh.Step)
	assert.Equal(t, TripRequest{}, fresh.Request)
	assert.Equal(t, "", string(fresh.Request.Season()))
	require.Len(t, fresh.Transcript, 1)
	assert.Equal(t, GreetingMessage, fresh.Transcript[0].Content)
}

func TestStepLabels(t *testing.T) {
	labels := StepLabels()
	assert.Len(t, labels, QuestionCount)
	assert.Equal(t, "travel date", labels[0])
	assert.Equal(t, "preferences", labels[len(labels)-1])
}
