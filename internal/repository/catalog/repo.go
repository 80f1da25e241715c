package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miamibe/food-eats/internal/db"
	"github.com/miamibe/food-eats/internal/domain"
)

// store is the consumer interface for catalog operations (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Search(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
}

// Pricing maps price preferences onto numeric bounds. Values come from
// config; zero-value Pricing is replaced by DefaultPricing.
type Pricing struct {
	BudgetBelow  float64
	PremiumAbove float64
	ModerateMin  float64
	ModerateMax  float64
}

// DefaultPricing mirrors the thresholds the clients were built against.
func DefaultPricing() Pricing {
	return Pricing{BudgetBelow: 15, PremiumAbove: 20, ModerateMin: 10, ModerateMax: 20}
}

// Repo provides read/write access to the meal and restaurant catalog.
type Repo struct {
	store   store
	pricing Pricing
}

// New creates a catalog repository with default pricing thresholds.
func New(s store) *Repo {
	return &Repo{store: s, pricing: DefaultPricing()}
}

// WithPricing overrides the price preference thresholds.
func (r *Repo) WithPricing(p Pricing) *Repo {
	r.pricing = p
	return r
}

// FindCandidates retrieves available meals matching the criteria, joined
// with their restaurants, up to limit. Absent criteria fields constrain
// nothing; fully empty criteria retrieve all available meals.
func (r *Repo) FindCandidates(
	ctx context.Context, criteria domain.Criteria, limit int,
) ([]domain.Candidate, error) {
	query := r.buildQuery(criteria)

	sr, err := r.store.Search(ctx, &db.TextQuery{
		IndexName: mealIndexName,
		Query:     query,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search meals: %w", err)
	}

	return r.joinRestaurants(ctx, sr)
}

// AllAvailable retrieves all available meals up to limit, joined with
// their restaurants. Used both for criteria-less queries and for the
// broadened retry after a zero-row constrained query.
func (r *Repo) AllAvailable(ctx context.Context, limit int) ([]domain.Candidate, error) {
	return r.FindCandidates(ctx, domain.Criteria{}, limit)
}

// buildQuery translates criteria into an FT.SEARCH query string. Textual
// hints (keywords and ingredients) combine with OR semantics across
// name/description/category: recall is preferred over precision.
func (r *Repo) buildQuery(criteria domain.Criteria) string {
	parts := []string{db.TagIs(fieldAvailable, "1")}

	hints := make([]string, 0, len(criteria.Keywords)+len(criteria.Ingredients))
	hints = append(hints, criteria.Keywords...)
	hints = append(hints, criteria.Ingredients...)

	var textual []string
	for _, hint := range hints {
		hint = strings.TrimSpace(hint)
		if hint == "" {
			continue
		}
		textual = append(textual,
			db.Contains(fieldName, hint),
			db.Contains(fieldDescription, hint),
			db.TagContains(fieldCategory, hint),
		)
	}
	if group := db.Or(textual...); group != "" {
		parts = append(parts, group)
	}

	if len(criteria.Categories) > 0 {
		parts = append(parts, db.TagIn(fieldCategory, criteria.Categories))
	}

	switch criteria.PricePreference {
	case domain.PriceBudget:
		parts = append(parts, db.NumLT(fieldPrice, r.pricing.BudgetBelow))
	case domain.PricePremium:
		parts = append(parts, db.NumGT(fieldPrice, r.pricing.PremiumAbove))
	case domain.PriceModerate:
		parts = append(parts, db.NumBetween(fieldPrice, r.pricing.ModerateMin, r.pricing.ModerateMax))
	}

	return db.And(parts...)
}

// joinRestaurants resolves each hit's restaurant record in one pipelined
// round-trip and assembles candidates in retrieval order.
func (r *Repo) joinRestaurants(ctx context.Context, sr *db.SearchResult) ([]domain.Candidate, error) {
	if sr == nil || len(sr.Entries) == 0 {
		return nil, nil
	}

	meals := make([]domain.Meal, 0, len(sr.Entries))
	restaurantIDs := make([]string, 0, len(sr.Entries))
	seen := make(map[string]bool)

	for _, entry := range sr.Entries {
		meal := parseMealFields(strings.TrimPrefix(entry.Key, mealKeyPrefix), entry.Fields)
		meals = append(meals, meal)
		if meal.RestaurantID != "" && !seen[meal.RestaurantID] {
			seen[meal.RestaurantID] = true
			restaurantIDs = append(restaurantIDs, meal.RestaurantID)
		}
	}

	restaurants := make(map[string]domain.Restaurant, len(restaurantIDs))
	if len(restaurantIDs) > 0 {
		keys := make([]string, len(restaurantIDs))
		for i, id := range restaurantIDs {
			keys[i] = restaurantKey(id)
		}
		hashes, err := r.store.HGetAllMulti(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("join restaurants: %w", err)
		}
		for i, fields := range hashes {
			if len(fields) == 0 {
				continue
			}
			restaurants[restaurantIDs[i]] = parseRestaurantFields(restaurantIDs[i], fields)
		}
	}

	candidates := make([]domain.Candidate, len(meals))
	for i, meal := range meals {
		candidates[i] = domain.Candidate{
			Meal:       meal,
			Restaurant: restaurants[meal.RestaurantID],
		}
	}
	return candidates, nil
}

// UpsertMeal stores a meal record.
func (r *Repo) UpsertMeal(ctx context.Context, m *domain.Meal) error {
	if err := r.store.HSet(ctx, mealKey(m.ID), buildMealFields(m)); err != nil {
		return fmt.Errorf("upsert meal %s: %w", m.ID, err)
	}
	return nil
}

// UpsertRestaurant stores a restaurant record.
func (r *Repo) UpsertRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if err := r.store.HSet(ctx, restaurantKey(rest.ID), buildRestaurantFields(rest)); err != nil {
		return fmt.Errorf("upsert restaurant %s: %w", rest.ID, err)
	}
	return nil
}

// GetRestaurant returns a restaurant by ID.
func (r *Repo) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	fields, err := r.store.HGetAll(ctx, restaurantKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Restaurant{}, domain.ErrRestaurantNotFound
		}
		return domain.Restaurant{}, fmt.Errorf("get restaurant %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return parseRestaurantFields(id, fields), nil
}

// ListRestaurants returns all restaurant records.
func (r *Repo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	keys, err := r.store.Scan(ctx, restaurantKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan restaurants: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(keys))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		id := strings.TrimPrefix(keys[i], restaurantKeyPrefix)
		restaurants = append(restaurants, parseRestaurantFields(id, fields))
	}
	return restaurants, nil
}

// MealsByRestaurant returns the available meals of one restaurant.
func (r *Repo) MealsByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Meal, error) {
	query := db.And(
		db.TagIs(fieldAvailable, "1"),
		db.TagIs(fieldRestaurantID, restaurantID),
	)

	sr, err := r.store.Search(ctx, &db.TextQuery{
		IndexName: mealIndexName,
		Query:     query,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search meals by restaurant %s: %w", restaurantID, err)
	}

	meals := make([]domain.Meal, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		meals = append(meals, parseMealFields(strings.TrimPrefix(entry.Key, mealKeyPrefix), entry.Fields))
	}
	return meals, nil
}
