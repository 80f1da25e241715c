package foodeats

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/miamibe/food-eats/internal/db/redis"
	"github.com/miamibe/food-eats/internal/domain"
	catalogrepo "github.com/miamibe/food-eats/internal/repository/catalog"
	"github.com/miamibe/food-eats/internal/repository/criteriacache"
	"github.com/miamibe/food-eats/internal/transport/llm"
	cataloguc "github.com/miamibe/food-eats/internal/usecase/catalog"
	searchuc "github.com/miamibe/food-eats/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Re-exported domain types, so SDK users never import internal packages.
type (
	// Restaurant is a catalog restaurant record.
	Restaurant = domain.Restaurant
	// Meal is a catalog meal record.
	Meal = domain.Meal
	// RankedMeal is one search result with ranking metadata.
	RankedMeal = domain.RankedMeal
)

// Client is the food-eats SDK entry point.
type Client struct {
	store      *dbRedis.Store
	searchSvc  *searchuc.Service
	catalogSvc *cataloguc.Service
}

// New creates a Client, connects to the catalog store, and ensures the
// meal search index exists.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if len(cfg.addrs) == 0 {
		return nil, fmt.Errorf("store address is required (use WithRedis)")
	}
	if cfg.apiKey == "" {
		return nil, fmt.Errorf("completion API key is required (use WithGroq or WithLLM)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("store not ready: %w", err)
	}

	logger := zap.NewNop()

	catalogRepo := catalogrepo.New(store)
	if err := catalogRepo.EnsureIndex(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ensure meal index: %w", err)
	}

	llmClient := llm.NewClient(&llm.Config{
		APIKey:  cfg.apiKey,
		BaseURL: cfg.baseURL,
		Model:   cfg.model,
		Timeout: cfg.llmTimeout,
		Logger:  logger,
	})

	var extractor domain.Extractor = searchuc.NewExtractor(llmClient, logger)
	if cfg.criteriaCacheTTL > 0 {
		extractor = criteriacache.New(extractor, store, cfg.criteriaCacheTTL, nil, logger)
	}

	searchSvc := searchuc.New(catalogRepo, extractor, llmClient, logger)
	if cfg.resultCap > 0 && cfg.candidateCap > 0 {
		searchSvc.WithCaps(cfg.resultCap, cfg.candidateCap)
	}

	return &Client{
		store:      store,
		searchSvc:  searchSvc,
		catalogSvc: cataloguc.New(catalogRepo),
	}, nil
}

// Close releases the store connection.
func (c *Client) Close() {
	c.store.Close()
}

// Search runs the full pipeline for one free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]RankedMeal, error) {
	return c.searchSvc.Search(ctx, query)
}

// UpsertRestaurant stores a restaurant under its ID.
func (c *Client) UpsertRestaurant(ctx context.Context, r Restaurant) error {
	return c.catalogSvc.UpsertRestaurant(ctx, r)
}

// CreateMeal stores a new meal under a generated ID and returns it.
func (c *Client) CreateMeal(ctx context.Context, m Meal) (Meal, error) {
	return c.catalogSvc.CreateMeal(ctx, m)
}

// GetRestaurant retrieves a restaurant by ID.
func (c *Client) GetRestaurant(ctx context.Context, id string) (Restaurant, error) {
	return c.catalogSvc.GetRestaurant(ctx, id)
}

// ListRestaurants returns all restaurants.
func (c *Client) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	return c.catalogSvc.ListRestaurants(ctx)
}

// RestaurantMeals returns the available meals of one restaurant.
func (c *Client) RestaurantMeals(ctx context.Context, restaurantID string) ([]Meal, error) {
	return c.catalogSvc.MealsByRestaurant(ctx, restaurantID)
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
