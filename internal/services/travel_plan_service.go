package services

import (
	"context"
	"encoding/json"

	"darwinplanner/internal/models/db_models"
	"darwinplanner/internal/models/response_models"
	"darwinplanner/internal/repositories"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TravelPlanServiceInterface interface {
	CreatePlan(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error)
	ListPlans(ctx context.Context, ownerID uuid.UUID) ([]response_models.TravelPlan, error)
	GetPlan(ctx context.Context, ownerID uuid.UUID, planID string) (response_models.TravelPlanDetail, error)
	DeletePlan(ctx context.Context, ownerID uuid.UUID, planID string) error
}

type TravelPlanService struct {
	planRepo repositories.TravelPlanRepository
	catalog  CatalogServiceInterface
	log      *logger.Logger
}

func NewTravelPlanService(planRepo repositories.TravelPlanRepository, catalog CatalogServiceInterface, log *logger.Logger) TravelPlanServiceInterface {
	return &TravelPlanService{
		planRepo: planRepo,
		catalog:  catalog,
		log:      log,
	}
}

func (s *TravelPlanService) CreatePlan(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error) {
	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		s.log.Error("saving travel plan", "owner_id", plan.OwnerID, "error", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *TravelPlanService) ListPlans(ctx context.Context, ownerID uuid.UUID) ([]response_models.TravelPlan, error) {
	plans, err := s.planRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("listing travel plans", "owner_id", ownerID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TravelPlan, 0, len(plans))
	for i := range plans {
		out = append(out, s.travelPlanResponse(&plans[i]))
	}
	return out, nil
}

// GetPlan re-resolves the plan text against the current catalog, so
// entities removed since generation are no longer listed.
func (s *TravelPlanService) GetPlan(ctx context.Context, ownerID uuid.UUID, planID string) (response_models.TravelPlanDetail, error) {
	plan, err := s.ownedPlan(ctx, ownerID, planID)
	if err != nil {
		return response_models.TravelPlanDetail{}, err
	}

	attractions, restaurants, err := s.catalog.MentionedEntities(ctx, plan.Content)
	if err != nil {
		return response_models.TravelPlanDetail{}, err
	}

	return response_models.TravelPlanDetail{
		TravelPlan:  s.travelPlanResponse(plan),
		Content:     plan.Content,
		Attractions: attractions,
		Restaurants: restaurants,
	}, nil
}

func (s *TravelPlanService) DeletePlan(ctx context.Context, ownerID uuid.UUID, planID string) error {
	plan, err := s.ownedPlan(ctx, ownerID, planID)
	if err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, plan.ID); err != nil {
		s.log.Error("deleting travel plan", "plan_id", planID, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// Plans owned by someone else are reported as missing.
func (s *TravelPlanService) ownedPlan(ctx context.Context, ownerID uuid.UUID, planID string) (*db_models.TravelPlan, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		s.log.Error("fetching travel plan", "plan_id", planID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.OwnerID != ownerID {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *TravelPlanService) travelPlanResponse(p *db_models.TravelPlan) response_models.TravelPlan {
	return response_models.TravelPlan{
		ID:            p.ID.String(),
		PlanName:      p.PlanName,
		DepartureCity: p.DepartureCity,
		TravelDate:    p.TravelDate,
		DurationDays:  p.DurationDays,
		Budget:        p.Budget,
		IsWetSeason:   p.IsWetSeason,
		Interests:     s.stringList(p.Interests),
		Preferences:   p.Preferences,
		Status:        p.Status,
		CreatedAt:     utils.FormatRFC3339Darwin(utils.FromUnixSecondsDarwin(p.CreatedAt)),
		AttractionIDs: s.stringList(p.AttractionIDs),
		RestaurantIDs: s.stringList(p.RestaurantIDs),
	}
}

func (s *TravelPlanService) stringList(raw datatypes.JSON) []string {
	out := make([]string, 0)
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("malformed string list column", "error", err)
		return make([]string, 0)
	}
	if out == nil {
		return make([]string, 0)
	}
	return out
}

func jsonList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}
