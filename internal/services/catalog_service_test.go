package services

import (
	"context"
	"testing"

	"darwinplanner/internal/models/request_models"
	"darwinplanner/internal/planner"
	"darwinplanner/internal/repositories"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestCatalogService(t *testing.T) CatalogServiceInterface {
	t.Helper()
	db := openTestDB(t)
	return NewCatalogService(repositories.NewAttractionRepository(db), repositories.NewRestaurantRepository(db), logger.NewNop())
}

func seedTestCatalog(t *testing.T, svc CatalogServiceInterface) {
	t.Helper()
	ctx := context.Background()
	for _, req := range []request_models.AttractionRequest{
		{Name: "Crocosaurus Cove", Category: "Wildlife", SuitableForWetSeason: boolPtr(true), Indoor: boolPtr(true)},
		{Name: "Kakadu National Park", Category: "Nature Scenery"},
	} {
		_, err := svc.CreateAttraction(ctx, req)
		require.NoError(t, err)
	}
	for _, req := range []request_models.RestaurantRequest{
		{Name: "Hanuman Darwin", CuisineType: "Asian Fusion"},
		{Name: "Char Restaurant", CuisineType: "Steakhouse"},
	} {
		_, err := svc.CreateRestaurant(ctx, req)
		require.NoError(t, err)
	}
}

func TestCatalogService_AttractionCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	created, err := svc.CreateAttraction(ctx, request_models.AttractionRequest{Name: "Crocosaurus Cove", Indoor: boolPtr(true)})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetAttraction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crocosaurus Cove", got.Name)
	require.NotNil(t, got.Indoor)
	assert.True(t, *got.Indoor)

	id := uuid.MustParse(created.ID)
	updated, err := svc.UpdateAttraction(ctx, id, request_models.AttractionRequest{Name: "Crocosaurus Cove Darwin", Category: "Wildlife"})
	require.NoError(t, err)
	assert.Equal(t, "Crocosaurus Cove Darwin", updated.Name)
	assert.Equal(t, "Wildlife", updated.Category)

	require.NoError(t, svc.DeleteAttraction(ctx, id))
	_, err = svc.GetAttraction(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrAttractionNotFound)
	assert.ErrorIs(t, svc.DeleteAttraction(ctx, id), utils.ErrAttractionNotFound)
}

func TestCatalogService_RestaurantNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	_, err := svc.UpdateRestaurant(ctx, uuid.New(), request_models.RestaurantRequest{Name: "Nowhere"})
	assert.ErrorIs(t, err, utils.ErrRestaurantNotFound)
	_, err = svc.GetRestaurant(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrRestaurantNotFound)
}

func TestCatalogService_ListValidatesPaging(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)
	seedTestCatalog(t, svc)

	_, err := svc.ListAttractions(ctx, 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.ListRestaurants(ctx, 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	attractions, err := svc.ListAttractions(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, attractions, 2)

	restaurants, err := svc.ListRestaurants(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestCatalogService_Snapshot(t *testing.T) {
	svc := newTestCatalogService(t)
	seedTestCatalog(t, svc)

	catalog, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Attractions, 2)
	require.Len(t, catalog.Restaurants, 2)

	for _, e := range catalog.Attractions {
		assert.Equal(t, planner.KindAttraction, e.Kind)
		if e.Name == "Crocosaurus Cove" {
			require.NotNil(t, e.WetSeasonSuitable)
			assert.True(t, *e.WetSeasonSuitable)
		}
	}
	for _, e := range catalog.Restaurants {
		assert.Equal(t, planner.KindRestaurant, e.Kind)
		assert.NotEmpty(t, e.Category)
	}
}

func TestCatalogService_ResolveMentions(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)
	seedTestCatalog(t, svc)

	result, err := svc.ResolveMentions(ctx, "Crocosaurus Cove, then Hanuman.")
	require.NoError(t, err)

	require.Len(t, result.Attractions, 1)
	assert.Equal(t, "Crocosaurus Cove", result.Attractions[0].Name)
	assert.Equal(t, string(planner.RuleExact), result.Attractions[0].Rule)

	require.Len(t, result.Restaurants, 1)
	assert.Equal(t, "Hanuman Darwin", result.Restaurants[0].Name)
	assert.Equal(t, string(planner.RuleWord), result.Restaurants[0].Rule)

	attractions, restaurants, err := svc.MentionedEntities(ctx, "Crocosaurus Cove, then Hanuman.")
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, "Wildlife", attractions[0].Category)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Asian Fusion", restaurants[0].CuisineType)
}

func TestCatalogService_ResolveMentionsEmptyText(t *testing.T) {
	svc := newTestCatalogService(t)
	seedTestCatalog(t, svc)

	result, err := svc.ResolveMentions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, result.Attractions)
	assert.Empty(t, result.Restaurants)
}

func TestCatalogService_RepositoryFailuresAreLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	db := openTestDB(t)
	svc := NewCatalogService(repositories.NewAttractionRepository(db), repositories.NewRestaurantRepository(db), log)
	plans := NewTravelPlanService(repositories.NewTravelPlanRepository(db), svc, log)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.ListAttractions(ctx, 1, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Equal(t, 1, logs.FilterMessage("listing attractions").Len())

	_, err = svc.Snapshot(ctx)
	assert.ErrorIs(t, err, planner.ErrUnavailable)
	assert.Equal(t, 1, logs.FilterMessage("catalog snapshot failed").Len())

	_, err = plans.ListPlans(ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Equal(t, 1, logs.FilterMessage("listing travel plans").Len())
}
