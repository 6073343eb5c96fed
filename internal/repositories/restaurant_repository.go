package repositories

import (
	"context"
	"errors"
	"fmt"

	"darwinplanner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *db_models.Restaurant) (uuid.UUID, error)
	Update(ctx context.Context, restaurant *db_models.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Restaurant, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Restaurant, error)
	ListAll(ctx context.Context) ([]db_models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *db_models.Restaurant) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return uuid.Nil, err
	}
	return restaurant.ID, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(restaurant)
		if result.Error != nil {
			return fmt.Errorf("failed to update restaurant: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Restaurant{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at, name").
		Offset(offset).
		Limit(pageSize).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) ListAll(ctx context.Context) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	if err := r.db.WithContext(ctx).Order("created_at, name").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
