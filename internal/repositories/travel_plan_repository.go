package repositories

import (
	"context"
	"errors"

	"darwinplanner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TravelPlanRepository interface {
	Create(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TravelPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) TravelPlanRepository {
	return &travelPlanRepository{db: db}
}

func (r *travelPlanRepository) Create(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return uuid.Nil, err
	}
	return plan.ID, nil
}

func (r *travelPlanRepository) GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// ListByOwner returns newest first.
func (r *travelPlanRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *travelPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.TravelPlan{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
