package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/domain"
	"github.com/miamibe/food-eats/internal/metrics"
)

// fallbackScore is the fixed relevance attached to text-match fallback results.
const fallbackScore = 0.5

const fallbackExplanation = "Found by text search"

// Service runs the meal search pipeline: criteria extraction, candidate
// retrieval, LLM re-ranking, and formatting. Both LLM stages degrade
// locally; only a failing catalog store surfaces as an error.
type Service struct {
	catalog   Catalog
	extractor domain.Extractor
	completer Completer
	logger    *zap.Logger

	resultCap    int
	candidateCap int
}

// New creates a search service with default result caps.
func New(catalog Catalog, extractor domain.Extractor, completer Completer, logger *zap.Logger) *Service {
	return &Service{
		catalog:      catalog,
		extractor:    extractor,
		completer:    completer,
		logger:       logger,
		resultCap:    10,
		candidateCap: 30,
	}
}

// WithCaps overrides the result and candidate caps.
func (s *Service) WithCaps(resultCap, candidateCap int) *Service {
	s.resultCap = resultCap
	s.candidateCap = candidateCap
	return s
}

// Search executes the full pipeline for one free-text query. An empty
// candidate set is a valid result, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]domain.RankedMeal, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrQueryRequired
	}

	criteria := s.extractCriteria(ctx, query)

	candidates, err := s.retrieveCandidates(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.logger.Info("No meals matched", zap.String("query", query))
		return []domain.RankedMeal{}, nil
	}

	meals, err := s.rerank(ctx, query, candidates)
	if err != nil {
		s.logger.Warn("Rerank degraded to text match", zap.String("query", query), zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("rerank").Inc()
		meals = s.textFallback(query, candidates)
	}

	s.logger.Info("Search completed",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(meals)),
	)
	return meals, nil
}

// extractCriteria runs Stage A. Any failure falls back to treating the raw
// query as a single keyword, so retrieval always has something to work with.
func (s *Service) extractCriteria(ctx context.Context, query string) domain.Criteria {
	criteria, err := s.extractor.Extract(ctx, query)
	if err != nil {
		s.logger.Warn("Criteria extraction degraded to raw query",
			zap.String("query", query), zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("extraction").Inc()
		return domain.FallbackCriteria(query)
	}
	return criteria
}

// retrieveCandidates runs Stage B. A constrained query that matches nothing
// is retried without filters before concluding the catalog is empty.
func (s *Service) retrieveCandidates(
	ctx context.Context, criteria domain.Criteria,
) ([]domain.Candidate, error) {
	candidates, err := s.catalog.FindCandidates(ctx, criteria, s.candidateCap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	if len(candidates) == 0 && criteria.HasFilters() {
		s.logger.Info("Constrained query matched nothing, broadening")
		candidates, err = s.catalog.AllAvailable(ctx, s.candidateCap)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
	}
	return candidates, nil
}

// textFallback is Stage D: a case-insensitive substring match of the raw
// query and its tokens against each candidate's searchable text, preserving
// retrieval order.
func (s *Service) textFallback(query string, candidates []domain.Candidate) []domain.RankedMeal {
	needles := append([]string{strings.ToLower(query)}, strings.Fields(strings.ToLower(query))...)

	meals := make([]domain.RankedMeal, 0, s.resultCap)
	for _, c := range candidates {
		haystack := strings.ToLower(strings.Join([]string{
			c.Meal.Name, c.Meal.Description, c.Meal.Category, c.Restaurant.Cuisine,
		}, " "))
		for _, needle := range needles {
			if strings.Contains(haystack, needle) {
				meals = append(meals, formatMeal(c, fallbackScore, fallbackExplanation))
				break
			}
		}
		if len(meals) == s.resultCap {
			break
		}
	}
	return meals
}
