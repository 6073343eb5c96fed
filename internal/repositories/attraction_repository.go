package repositories

import (
	"context"
	"errors"
	"fmt"

	"darwinplanner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttractionRepository interface {
	Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error)
	Update(ctx context.Context, attraction *db_models.Attraction) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	ListAll(ctx context.Context) ([]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(attraction).Error; err != nil {
		return uuid.Nil, err
	}
	return attraction.ID, nil
}

func (r *attractionRepository) Update(ctx context.Context, attraction *db_models.Attraction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(attraction)
		if result.Error != nil {
			return fmt.Errorf("failed to update attraction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Reads return nil, nil when nothing matches.

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at, name").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

// ListAll returns the whole catalog in a stable order; it is small and
// curated, so no paging.
func (r *attractionRepository) ListAll(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Order("created_at, name").Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}
