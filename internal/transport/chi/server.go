package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/domain"
	cataloguc "github.com/miamibe/food-eats/internal/usecase/catalog"
	healthuc "github.com/miamibe/food-eats/internal/usecase/health"
	searchuc "github.com/miamibe/food-eats/internal/usecase/search"
)

// validate checks request payloads against struct tags.
var validate = validator.New()

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API for meal search and catalog management.
type Server struct {
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrQueryRequired, http.StatusBadRequest),
		sentinelHandler(domain.ErrRestaurantNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrMealNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusInternalServerError),
	}
	return s
}

// Routes mounts all API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search-meals", s.SearchMeals)
		r.Get("/restaurants", s.ListRestaurants)
		r.Put("/restaurants/{id}", s.UpsertRestaurant)
		r.Get("/restaurants/{id}/meals", s.RestaurantMeals)
		r.Post("/meals", s.CreateMeal)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type searchMealsRequest struct {
	Query string `json:"query"`
}

type searchMealsResponse struct {
	Meals []domain.RankedMeal `json:"meals"`
}

// SearchMeals handles POST /api/v1/search-meals.
func (s *Server) SearchMeals(w http.ResponseWriter, r *http.Request) {
	var req searchMealsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrQueryRequired.Error())
		return
	}

	meals, err := s.search.Search(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchMealsResponse{Meals: meals})
}

type restaurantPayload struct {
	Name            string `json:"name" validate:"required"`
	Cuisine         string `json:"cuisine"`
	DeliveryTimeMin int    `json:"delivery_time_min" validate:"gte=0"`
	DeliveryTimeMax int    `json:"delivery_time_max" validate:"gte=0,gtefield=DeliveryTimeMin"`
}

type restaurantResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Cuisine         string `json:"cuisine,omitempty"`
	DeliveryTimeMin int    `json:"delivery_time_min"`
	DeliveryTimeMax int    `json:"delivery_time_max"`
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.catalog.ListRestaurants(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]restaurantResponse, len(restaurants))
	for i, rest := range restaurants {
		items[i] = restaurantToResponse(rest)
	}
	writeJSON(w, http.StatusOK, map[string]any{"restaurants": items})
}

// UpsertRestaurant handles PUT /api/v1/restaurants/{id}.
func (s *Server) UpsertRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req restaurantPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	restaurant := domain.Restaurant{
		ID:              id,
		Name:            req.Name,
		Cuisine:         req.Cuisine,
		DeliveryTimeMin: req.DeliveryTimeMin,
		DeliveryTimeMax: req.DeliveryTimeMax,
	}
	if err := s.catalog.UpsertRestaurant(r.Context(), restaurant); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurantToResponse(restaurant))
}

// RestaurantMeals handles GET /api/v1/restaurants/{id}/meals.
func (s *Server) RestaurantMeals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	meals, err := s.catalog.MealsByRestaurant(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]mealResponse, len(meals))
	for i, m := range meals {
		items[i] = mealToResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"meals": items})
}

type mealPayload struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Category     string  `json:"category"`
	Emoji        string  `json:"emoji"`
	PrepMinutes  int     `json:"prep_minutes" validate:"gte=0"`
	Available    *bool   `json:"available"`
	RestaurantID string  `json:"restaurant_id" validate:"required"`
}

type mealResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Category     string  `json:"category,omitempty"`
	Emoji        string  `json:"emoji,omitempty"`
	PrepMinutes  int     `json:"prep_minutes,omitempty"`
	Available    bool    `json:"available"`
	RestaurantID string  `json:"restaurant_id"`
}

// CreateMeal handles POST /api/v1/meals.
func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req mealPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// New meals default to available unless explicitly disabled.
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	meal, err := s.catalog.CreateMeal(r.Context(), domain.Meal{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Emoji:        req.Emoji,
		PrepMinutes:  req.PrepMinutes,
		Available:    available,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mealToResponse(meal))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func restaurantToResponse(r domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:              r.ID,
		Name:            r.Name,
		Cuisine:         r.Cuisine,
		DeliveryTimeMin: r.DeliveryTimeMin,
		DeliveryTimeMax: r.DeliveryTimeMax,
	}
}

func mealToResponse(m domain.Meal) mealResponse {
	return mealResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Category:     m.Category,
		Emoji:        m.Emoji,
		PrepMinutes:  m.PrepMinutes,
		Available:    m.Available,
		RestaurantID: m.RestaurantID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrQueryRequired,
		domain.ErrCatalogUnavailable,
		domain.ErrRestaurantNotFound,
		domain.ErrMealNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "An unexpected error occurred"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
}
