package catalog

import (
	"context"

	"github.com/miamibe/food-eats/internal/domain"
)

// Repository defines the storage contract for catalog management.
type Repository interface {
	UpsertMeal(ctx context.Context, m *domain.Meal) error
	UpsertRestaurant(ctx context.Context, r *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	MealsByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Meal, error)
}
