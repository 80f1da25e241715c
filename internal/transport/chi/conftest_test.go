package chi

import (
	"context"
	"net/http"
	"testing"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/domain"
	cataloguc "github.com/miamibe/food-eats/internal/usecase/catalog"
	healthuc "github.com/miamibe/food-eats/internal/usecase/health"
	searchuc "github.com/miamibe/food-eats/internal/usecase/search"
)

type mockSearchCatalog struct {
	candidates []domain.Candidate
	err        error
	findCalls  int
}

func (m *mockSearchCatalog) FindCandidates(
	_ context.Context, _ domain.Criteria, _ int,
) ([]domain.Candidate, error) {
	m.findCalls++
	return m.candidates, m.err
}

func (m *mockSearchCatalog) AllAvailable(_ context.Context, _ int) ([]domain.Candidate, error) {
	return m.candidates, m.err
}

type mockExtractor struct {
	criteria domain.Criteria
	err      error
	calls    int
}

func (m *mockExtractor) Extract(_ context.Context, _ string) (domain.Criteria, error) {
	m.calls++
	return m.criteria, m.err
}

type mockCompleter struct {
	reply string
	err   error
	calls int
}

func (m *mockCompleter) Complete(_ context.Context, _, _ string, _ int) (string, error) {
	m.calls++
	return m.reply, m.err
}

type mockCatalogRepo struct {
	restaurants   []domain.Restaurant
	restaurant    domain.Restaurant
	restaurantErr error
	meals         []domain.Meal

	upsertedMeal       *domain.Meal
	upsertedRestaurant *domain.Restaurant
}

func (m *mockCatalogRepo) UpsertMeal(_ context.Context, meal *domain.Meal) error {
	m.upsertedMeal = meal
	return nil
}

func (m *mockCatalogRepo) UpsertRestaurant(_ context.Context, r *domain.Restaurant) error {
	m.upsertedRestaurant = r
	return nil
}

func (m *mockCatalogRepo) GetRestaurant(_ context.Context, _ string) (domain.Restaurant, error) {
	return m.restaurant, m.restaurantErr
}

func (m *mockCatalogRepo) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	return m.restaurants, nil
}

func (m *mockCatalogRepo) MealsByRestaurant(
	_ context.Context, _ string, _ int,
) ([]domain.Meal, error) {
	return m.meals, nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type testDeps struct {
	searchCatalog *mockSearchCatalog
	extractor     *mockExtractor
	completer     *mockCompleter
	catalogRepo   *mockCatalogRepo
}

func newTestHandler(t *testing.T) (http.Handler, *testDeps) {
	t.Helper()

	deps := &testDeps{
		searchCatalog: &mockSearchCatalog{},
		extractor:     &mockExtractor{},
		completer:     &mockCompleter{},
		catalogRepo:   &mockCatalogRepo{},
	}

	logger := zap.NewNop()
	searchSvc := searchuc.New(deps.searchCatalog, deps.extractor, deps.completer, logger)
	catalogSvc := cataloguc.New(deps.catalogRepo)
	healthSvc := healthuc.New(&mockPinger{}, nil)

	server := NewServer(searchSvc, catalogSvc, healthSvc, logger)

	r := gochi.NewRouter()
	r.Use(CORSMiddleware())
	server.Routes(r)
	return r, deps
}

func testCandidate(id, name string) domain.Candidate {
	return domain.Candidate{
		Meal: domain.Meal{
			ID: id, Name: name, Description: "test dish",
			Price: 12.5, Category: "main", Available: true, RestaurantID: "r1",
		},
		Restaurant: domain.Restaurant{
			ID: "r1", Name: "Test Kitchen",
			DeliveryTimeMin: 20, DeliveryTimeMax: 40,
		},
	}
}
