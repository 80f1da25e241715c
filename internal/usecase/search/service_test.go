package search

import (
	"context"
	"errors"
	"testing"

	"github.com/miamibe/food-eats/internal/domain"
)

func TestSearch_EmptyQuery(t *testing.T) {
	svc, catalog, _, completer := newTestService(t)

	for _, query := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), query)
		if !errors.Is(err, domain.ErrQueryRequired) {
			t.Errorf("query %q: expected ErrQueryRequired, got %v", query, err)
		}
	}
	if catalog.findCalls != 0 || len(completer.calls) != 0 {
		t.Error("empty query must not reach any downstream dependency")
	}
}

func TestSearch_HappyPath(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.criteria = domain.Criteria{Keywords: []string{"spicy"}}
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "Spicy Ramen", "tonkotsu broth", "noodles", 12.99),
		testCandidate("m2", "Mild Curry", "coconut curry", "main", 11.50),
	}
	completer.replies["rerank"] = `Here you go:
[{"position": 2, "relevance_score": 0.4, "explanation": "less heat"},
 {"position": 1, "relevance_score": 0.9, "explanation": "spicy as requested"}]`

	meals, err := svc.Search(context.Background(), "something spicy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].ID != "m1" || meals[1].ID != "m2" {
		t.Errorf("results must be ordered by descending score: %s, %s", meals[0].ID, meals[1].ID)
	}
	if meals[0].RelevanceScore != 0.9 {
		t.Errorf("expected model score, got %v", meals[0].RelevanceScore)
	}
	if meals[0].MatchExplanation != "spicy as requested" {
		t.Errorf("unexpected explanation: %q", meals[0].MatchExplanation)
	}
	if meals[0].Price != "$12.99" {
		t.Errorf("unexpected price formatting: %q", meals[0].Price)
	}
	if meals[0].DeliveryTime != "20-40 min" {
		t.Errorf("unexpected delivery time: %q", meals[0].DeliveryTime)
	}
	if catalog.lastLimit != 30 {
		t.Errorf("expected candidate cap 30, got %d", catalog.lastLimit)
	}
}

func TestSearch_ExtractionFailureFallsBackToRawQuery(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.err = errors.New("model unavailable")
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "Spicy Ramen", "tonkotsu broth", "noodles", 12.99),
	}
	completer.replies["rerank"] = `[{"position": 1, "relevance_score": 0.8, "explanation": "match"}]`

	meals, err := svc.Search(context.Background(), "spicy")
	if err != nil {
		t.Fatalf("extraction failure must not surface: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(meals))
	}
	want := domain.Criteria{Keywords: []string{"spicy"}}
	if len(catalog.lastCriteria.Keywords) != 1 || catalog.lastCriteria.Keywords[0] != want.Keywords[0] {
		t.Errorf("expected raw-query fallback criteria, got %+v", catalog.lastCriteria)
	}
}

func TestSearch_CatalogErrorSurfaces(t *testing.T) {
	svc, catalog, _, _ := newTestService(t)

	catalog.err = errors.New("connection refused")

	_, err := svc.Search(context.Background(), "anything")
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestSearch_BroadenedRetryOnZeroRows(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.criteria = domain.Criteria{Keywords: []string{"unicorn"}}
	catalog.candidates = nil
	catalog.allCandidates = []domain.Candidate{
		testCandidate("m1", "House Special", "chef's choice", "main", 14),
	}
	completer.replies["rerank"] = `[{"position": 1, "relevance_score": 0.3, "explanation": "closest available"}]`

	meals, err := svc.Search(context.Background(), "unicorn steak")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.allCalls != 1 {
		t.Errorf("expected one broadened retry, got %d", catalog.allCalls)
	}
	if len(meals) != 1 {
		t.Errorf("expected broadened result, got %d meals", len(meals))
	}
}

func TestSearch_NoBroadenedRetryWithoutFilters(t *testing.T) {
	svc, catalog, extractor, _ := newTestService(t)

	extractor.criteria = domain.Criteria{}
	catalog.candidates = nil

	meals, err := svc.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.allCalls != 0 {
		t.Error("unconstrained query must not retry")
	}
	if meals == nil || len(meals) != 0 {
		t.Errorf("expected empty non-nil result, got %v", meals)
	}
}

func TestSearch_RerankFailureFallsBackToTextMatch(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.criteria = domain.Criteria{Keywords: []string{"ramen"}}
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "Spicy Ramen", "tonkotsu broth", "noodles", 12.99),
		testCandidate("m2", "Greek Salad", "feta and olives", "salad", 9.50),
	}
	completer.errs["rerank"] = errors.New("rate limited")

	meals, err := svc.Search(context.Background(), "ramen")
	if err != nil {
		t.Fatalf("rerank failure must not surface: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected only the text-matching meal, got %d", len(meals))
	}
	if meals[0].ID != "m1" {
		t.Errorf("expected m1, got %s", meals[0].ID)
	}
	if meals[0].RelevanceScore != fallbackScore {
		t.Errorf("expected fixed fallback score, got %v", meals[0].RelevanceScore)
	}
	if meals[0].MatchExplanation != fallbackExplanation {
		t.Errorf("unexpected explanation: %q", meals[0].MatchExplanation)
	}
}

func TestSearch_UnparseableRerankFallsBack(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.criteria = domain.Criteria{Keywords: []string{"salad"}}
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "Greek Salad", "feta and olives", "salad", 9.50),
	}
	completer.replies["rerank"] = "I think the salad is great!"

	meals, err := svc.Search(context.Background(), "salad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 || meals[0].RelevanceScore != fallbackScore {
		t.Errorf("expected text-match fallback, got %+v", meals)
	}
}

func TestSearch_OutOfRangePositionsDiscarded(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)

	extractor.criteria = domain.Criteria{Keywords: []string{"ramen"}}
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "Spicy Ramen", "tonkotsu broth", "noodles", 12.99),
	}
	completer.replies["rerank"] = `[
		{"position": 99, "relevance_score": 0.9, "explanation": "hallucinated"},
		{"position": 0, "relevance_score": 0.8, "explanation": "off by one"},
		{"position": 1, "relevance_score": 0.7, "explanation": "real"}]`

	meals, err := svc.Search(context.Background(), "ramen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != "m1" {
		t.Fatalf("expected only the valid position, got %+v", meals)
	}
	if meals[0].RelevanceScore != 0.7 {
		t.Errorf("expected the valid entry's score, got %v", meals[0].RelevanceScore)
	}
}

func TestSearch_ResultCapApplied(t *testing.T) {
	svc, catalog, extractor, completer := newTestService(t)
	svc.WithCaps(2, 30)

	extractor.criteria = domain.Criteria{Keywords: []string{"food"}}
	catalog.candidates = []domain.Candidate{
		testCandidate("m1", "A", "food", "main", 10),
		testCandidate("m2", "B", "food", "main", 11),
		testCandidate("m3", "C", "food", "main", 12),
	}
	completer.replies["rerank"] = `[
		{"position": 1, "relevance_score": 0.9, "explanation": "a"},
		{"position": 2, "relevance_score": 0.8, "explanation": "b"},
		{"position": 3, "relevance_score": 0.7, "explanation": "c"}]`

	meals, err := svc.Search(context.Background(), "food")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 2 {
		t.Errorf("expected result cap of 2, got %d", len(meals))
	}
}

func TestTextFallback_MatchesTokensAndCuisine(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	candidates := []domain.Candidate{
		testCandidate("m1", "Pad Thai", "rice noodles", "main", 11),
		testCandidate("m2", "Burger", "beef patty", "main", 13),
	}
	candidates[0].Restaurant.Cuisine = "thai"

	meals := svc.textFallback("THAI food", candidates)

	if len(meals) != 1 || meals[0].ID != "m1" {
		t.Fatalf("expected cuisine token match for m1 only, got %+v", meals)
	}
}
