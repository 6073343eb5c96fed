package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"darwinplanner/internal/config"
	"darwinplanner/internal/infra"
	"darwinplanner/internal/models/db_models"
	"darwinplanner/internal/planner"
	"darwinplanner/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenDatabase(config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		AutoMigrate: true,
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, logger.NewNop()) })
	return db
}

func boolPtr(v bool) *bool { return &v }

func testCatalog() planner.Catalog {
	return planner.Catalog{
		Attractions: []planner.Entity{
			{ID: "a1", Kind: planner.KindAttraction, Name: "Crocosaurus Cove", WetSeasonSuitable: boolPtr(true), Indoor: boolPtr(true)},
			{ID: "a2", Kind: planner.KindAttraction, Name: "Kakadu National Park"},
		},
		Restaurants: []planner.Entity{
			{ID: "r1", Kind: planner.KindRestaurant, Name: "Hanuman Darwin"},
			{ID: "r2", Kind: planner.KindRestaurant, Name: "Char Restaurant"},
		},
	}
}

func completedState(t *testing.T) planner.ConversationState {
	t.Helper()
	c := planner.NewCollector(time.UTC, nil)
	state := c.Start()
	for _, answer := range []string{"2025-07-10", "3", "2000", "Sydney", "Wildlife, Food", "none"} {
		var err error
		state, _, err = c.Submit(state, answer)
		require.NoError(t, err)
	}
	require.Equal(t, planner.StepDone, state.Step)
	return state
}

type fakeSnapshotter struct {
	catalog planner.Catalog
	err     error
}

func (f *fakeSnapshotter) Snapshot(context.Context) (planner.Catalog, error) {
	return f.catalog, f.err
}

type fakeOracle struct {
	mu       sync.Mutex
	text     string
	err      error
	prompts  []string
	grounded []bool
}

func (f *fakeOracle) Generate(_ context.Context, prompt string, grounded bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.grounded = append(f.grounded, grounded)
	return f.text, f.err
}

type fakeRecorder struct {
	saved []*db_models.TravelPlan
	err   error
}

func (f *fakeRecorder) CreatePlan(_ context.Context, plan *db_models.TravelPlan) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	plan.ID = uuid.New()
	f.saved = append(f.saved, plan)
	return plan.ID, nil
}

type fakeOrchestrator struct {
	outcome *PlanOutcome
	err     error
	panics  bool
	calls   int
}

func (f *fakeOrchestrator) Generate(context.Context, uuid.UUID, string, planner.ConversationState) (*PlanOutcome, error) {
	f.calls++
	if f.panics {
		panic("oracle client exploded")
	}
	return f.outcome, f.err
}

var errBoom = errors.New("boom")
