package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/miamibe/food-eats/internal/domain"
)

// mealListLimit bounds a single restaurant's menu page.
const mealListLimit = 100

// Service handles catalog management: restaurants and their meals.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateMeal stores a new meal under a generated id and returns it.
func (s *Service) CreateMeal(ctx context.Context, m domain.Meal) (domain.Meal, error) {
	if _, err := s.repo.GetRestaurant(ctx, m.RestaurantID); err != nil {
		return domain.Meal{}, fmt.Errorf("check restaurant: %w", err)
	}

	m.ID = uuid.NewString()
	if err := s.repo.UpsertMeal(ctx, &m); err != nil {
		return domain.Meal{}, fmt.Errorf("create meal: %w", err)
	}
	return m, nil
}

// UpsertRestaurant stores a restaurant under the caller-chosen id.
func (s *Service) UpsertRestaurant(ctx context.Context, r domain.Restaurant) error {
	if err := s.repo.UpsertRestaurant(ctx, &r); err != nil {
		return fmt.Errorf("upsert restaurant: %w", err)
	}
	return nil
}

// GetRestaurant retrieves a restaurant by id.
func (s *Service) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	r, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("get restaurant: %w", err)
	}
	return r, nil
}

// ListRestaurants returns all restaurants.
func (s *Service) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// MealsByRestaurant returns the available meals of one restaurant. A missing
// restaurant is an error even when the meal search itself would succeed.
func (s *Service) MealsByRestaurant(ctx context.Context, restaurantID string) ([]domain.Meal, error) {
	if _, err := s.repo.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}

	meals, err := s.repo.MealsByRestaurant(ctx, restaurantID, mealListLimit)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}
