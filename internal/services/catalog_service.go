package services

import (
	"context"
	"fmt"

	"darwinplanner/internal/models/db_models"
	"darwinplanner/internal/models/request_models"
	"darwinplanner/internal/models/response_models"
	"darwinplanner/internal/planner"
	"darwinplanner/internal/repositories"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxPageSize = 100

type CatalogServiceInterface interface {
	ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error)
	GetAttraction(ctx context.Context, id string) (response_models.Attraction, error)
	CreateAttraction(ctx context.Context, request request_models.AttractionRequest) (response_models.Attraction, error)
	UpdateAttraction(ctx context.Context, id uuid.UUID, request request_models.AttractionRequest) (response_models.Attraction, error)
	DeleteAttraction(ctx context.Context, id uuid.UUID) error

	ListRestaurants(ctx context.Context, page, pageSize int) ([]response_models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (response_models.Restaurant, error)
	CreateRestaurant(ctx context.Context, request request_models.RestaurantRequest) (response_models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id uuid.UUID, request request_models.RestaurantRequest) (response_models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error

	// Snapshot reads the whole catalog for one plan generation.
	Snapshot(ctx context.Context) (planner.Catalog, error)
	ResolveMentions(ctx context.Context, text string) (response_models.MentionResult, error)
	MentionedEntities(ctx context.Context, text string) ([]response_models.Attraction, []response_models.Restaurant, error)
}

type CatalogService struct {
	attractionRepo repositories.AttractionRepository
	restaurantRepo repositories.RestaurantRepository
	log            *logger.Logger
}

func NewCatalogService(
	attractionRepo repositories.AttractionRepository,
	restaurantRepo repositories.RestaurantRepository,
	log *logger.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		attractionRepo: attractionRepo,
		restaurantRepo: restaurantRepo,
		log:            log,
	}
}

func validatePage(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func (s *CatalogService) ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}

	attractions, err := s.attractionRepo.List(ctx, page, pageSize)
	if err != nil {
		s.log.Error("listing attractions", "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Attraction, 0, len(attractions))
	for i := range attractions {
		out = append(out, attractionResponse(&attractions[i]))
	}
	return out, nil
}

func (s *CatalogService) GetAttraction(ctx context.Context, id string) (response_models.Attraction, error) {
	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("fetching attraction", "id", id, "error", err)
		return response_models.Attraction{}, utils.ErrDatabaseError
	}
	if attraction == nil {
		return response_models.Attraction{}, utils.ErrAttractionNotFound
	}
	return attractionResponse(attraction), nil
}

func (s *CatalogService) CreateAttraction(ctx context.Context, request request_models.AttractionRequest) (response_models.Attraction, error) {
	attraction := &db_models.Attraction{}
	applyAttractionRequest(attraction, request)

	if _, err := s.attractionRepo.Create(ctx, attraction); err != nil {
		s.log.Error("creating attraction", "name", request.Name, "error", err)
		return response_models.Attraction{}, utils.ErrDatabaseError
	}
	return attractionResponse(attraction), nil
}

func (s *CatalogService) UpdateAttraction(ctx context.Context, id uuid.UUID, request request_models.AttractionRequest) (response_models.Attraction, error) {
	existing, err := s.attractionRepo.GetByID(ctx, id.String())
	if err != nil {
		s.log.Error("fetching attraction", "id", id, "error", err)
		return response_models.Attraction{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.Attraction{}, utils.ErrAttractionNotFound
	}

	applyAttractionRequest(existing, request)
	if err := s.attractionRepo.Update(ctx, existing); err != nil {
		s.log.Error("updating attraction", "id", id, "error", err)
		return response_models.Attraction{}, utils.ErrDatabaseError
	}
	return attractionResponse(existing), nil
}

func (s *CatalogService) DeleteAttraction(ctx context.Context, id uuid.UUID) error {
	existing, err := s.attractionRepo.GetByID(ctx, id.String())
	if err != nil {
		s.log.Error("fetching attraction", "id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrAttractionNotFound
	}

	if err := s.attractionRepo.Delete(ctx, id); err != nil {
		s.log.Error("deleting attraction", "id", id, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context, page, pageSize int) ([]response_models.Restaurant, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}

	restaurants, err := s.restaurantRepo.List(ctx, page, pageSize)
	if err != nil {
		s.log.Error("listing restaurants", "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, restaurantResponse(&restaurants[i]))
	}
	return out, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (response_models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("fetching restaurant", "id", id, "error", err)
		return response_models.Restaurant{}, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return response_models.Restaurant{}, utils.ErrRestaurantNotFound
	}
	return restaurantResponse(restaurant), nil
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, request request_models.RestaurantRequest) (response_models.Restaurant, error) {
	restaurant := &db_models.Restaurant{}
	applyRestaurantRequest(restaurant, request)

	if _, err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		s.log.Error("creating restaurant", "name", request.Name, "error", err)
		return response_models.Restaurant{}, utils.ErrDatabaseError
	}
	return restaurantResponse(restaurant), nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, id uuid.UUID, request request_models.RestaurantRequest) (response_models.Restaurant, error) {
	existing, err := s.restaurantRepo.GetByID(ctx, id.String())
	if err != nil {
		s.log.Error("fetching restaurant", "id", id, "error", err)
		return response_models.Restaurant{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.Restaurant{}, utils.ErrRestaurantNotFound
	}

	applyRestaurantRequest(existing, request)
	if err := s.restaurantRepo.Update(ctx, existing); err != nil {
		s.log.Error("updating restaurant", "id", id, "error", err)
		return response_models.Restaurant{}, utils.ErrDatabaseError
	}
	return restaurantResponse(existing), nil
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	existing, err := s.restaurantRepo.GetByID(ctx, id.String())
	if err != nil {
		s.log.Error("fetching restaurant", "id", id, "error", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrRestaurantNotFound
	}

	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		s.log.Error("deleting restaurant", "id", id, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// loadAll reads both tables concurrently.
func (s *CatalogService) loadAll(ctx context.Context) ([]db_models.Attraction, []db_models.Restaurant, error) {
	var (
		attractions []db_models.Attraction
		restaurants []db_models.Restaurant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attractions, err = s.attractionRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("listing attractions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.restaurantRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("listing restaurants: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return attractions, restaurants, nil
}

func (s *CatalogService) Snapshot(ctx context.Context) (planner.Catalog, error) {
	attractions, restaurants, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error("catalog snapshot failed", "error", err)
		return planner.Catalog{}, fmt.Errorf("%w: %v", planner.ErrUnavailable, err)
	}
	return toCatalog(attractions, restaurants), nil
}

func (s *CatalogService) ResolveMentions(ctx context.Context, text string) (response_models.MentionResult, error) {
	catalog, err := s.Snapshot(ctx)
	if err != nil {
		return response_models.MentionResult{}, err
	}
	return mentionResult(planner.ResolveCatalog(text, catalog)), nil
}

// MentionedEntities returns the full records of every catalog entity the
// text refers to, in catalog order.
func (s *CatalogService) MentionedEntities(ctx context.Context, text string) ([]response_models.Attraction, []response_models.Restaurant, error) {
	attractions, restaurants, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error("loading catalog for mentions", "error", err)
		return nil, nil, fmt.Errorf("%w: %v", planner.ErrUnavailable, err)
	}

	result := planner.ResolveCatalog(text, toCatalog(attractions, restaurants))
	matched := make(map[string]bool, result.Len())
	for _, m := range result.Mentions {
		matched[m.Entity.ID] = true
	}

	outA := make([]response_models.Attraction, 0)
	for i := range attractions {
		if matched[attractions[i].ID.String()] {
			outA = append(outA, attractionResponse(&attractions[i]))
		}
	}
	outR := make([]response_models.Restaurant, 0)
	for i := range restaurants {
		if matched[restaurants[i].ID.String()] {
			outR = append(outR, restaurantResponse(&restaurants[i]))
		}
	}
	return outA, outR, nil
}

func applyAttractionRequest(a *db_models.Attraction, r request_models.AttractionRequest) {
	a.Name = r.Name
	a.Description = r.Description
	a.Category = r.Category
	a.Location = r.Location
	a.SuitableForWetSeason = r.SuitableForWetSeason
	a.Indoor = r.Indoor
	a.ImageURL = r.ImageURL
	a.PriceRange = r.PriceRange
	a.OpeningHours = r.OpeningHours
	a.RecommendedDuration = r.RecommendedDuration
}

func applyRestaurantRequest(rs *db_models.Restaurant, r request_models.RestaurantRequest) {
	rs.Name = r.Name
	rs.Description = r.Description
	rs.CuisineType = r.CuisineType
	rs.Location = r.Location
	rs.PriceRange = r.PriceRange
	rs.ImageURL = r.ImageURL
	rs.Specialties = r.Specialties
	rs.OpeningHours = r.OpeningHours
}

func attractionResponse(a *db_models.Attraction) response_models.Attraction {
	return response_models.Attraction{
		ID:                   a.ID.String(),
		Name:                 a.Name,
		Description:          a.Description,
		Category:             a.Category,
		Location:             a.Location,
		SuitableForWetSeason: a.SuitableForWetSeason,
		Indoor:               a.Indoor,
		ImageURL:             a.ImageURL,
		PriceRange:           a.PriceRange,
		OpeningHours:         a.OpeningHours,
		RecommendedDuration:  a.RecommendedDuration,
	}
}

func restaurantResponse(r *db_models.Restaurant) response_models.Restaurant {
	return response_models.Restaurant{
		ID:           r.ID.String(),
		Name:         r.Name,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		Location:     r.Location,
		PriceRange:   r.PriceRange,
		ImageURL:     r.ImageURL,
		Specialties:  r.Specialties,
		OpeningHours: r.OpeningHours,
	}
}

// toCatalog copies the rows so the snapshot shares no memory with them.
func toCatalog(attractions []db_models.Attraction, restaurants []db_models.Restaurant) planner.Catalog {
	catalog := planner.Catalog{
		Attractions: make([]planner.Entity, 0, len(attractions)),
		Restaurants: make([]planner.Entity, 0, len(restaurants)),
	}
	for _, a := range attractions {
		catalog.Attractions = append(catalog.Attractions, planner.Entity{
			ID:                a.ID.String(),
			Kind:              planner.KindAttraction,
			Name:              a.Name,
			Description:       a.Description,
			Category:          a.Category,
			Location:          a.Location,
			PriceRange:        a.PriceRange,
			WetSeasonSuitable: copyFlag(a.SuitableForWetSeason),
			Indoor:            copyFlag(a.Indoor),
		})
	}
	for _, r := range restaurants {
		catalog.Restaurants = append(catalog.Restaurants, planner.Entity{
			ID:          r.ID.String(),
			Kind:        planner.KindRestaurant,
			Name:        r.Name,
			Description: r.Description,
			Category:    r.CuisineType,
			Location:    r.Location,
			PriceRange:  r.PriceRange,
			Specialties: r.Specialties,
		})
	}
	return catalog
}

func copyFlag(v *bool) *bool {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func mentionResult(result planner.MatchResult) response_models.MentionResult {
	out := response_models.MentionResult{
		Attractions: make([]response_models.Mention, 0),
		Restaurants: make([]response_models.Mention, 0),
	}
	for _, m := range result.Mentions {
		mention := response_models.Mention{
			ID:   m.Entity.ID,
			Kind: string(m.Entity.Kind),
			Name: m.Entity.Name,
			Rule: string(m.Rule),
		}
		if m.Entity.Kind == planner.KindRestaurant {
			out.Restaurants = append(out.Restaurants, mention)
		} else {
			out.Attractions = append(out.Attractions, mention)
		}
	}
	return out
}
