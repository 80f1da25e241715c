package search

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/domain"
)

type mockCatalog struct {
	candidates []domain.Candidate
	err        error

	allCandidates []domain.Candidate
	allErr        error

	findCalls    int
	allCalls     int
	lastCriteria domain.Criteria
	lastLimit    int
}

func (m *mockCatalog) FindCandidates(
	_ context.Context, criteria domain.Criteria, limit int,
) ([]domain.Candidate, error) {
	m.findCalls++
	m.lastCriteria = criteria
	m.lastLimit = limit
	return m.candidates, m.err
}

func (m *mockCatalog) AllAvailable(_ context.Context, limit int) ([]domain.Candidate, error) {
	m.allCalls++
	m.lastLimit = limit
	return m.allCandidates, m.allErr
}

type mockCompleter struct {
	replies map[string]string // keyed by stage
	errs    map[string]error

	calls       []string
	lastPrompts map[string]string
}

func (m *mockCompleter) Complete(_ context.Context, stage, prompt string, _ int) (string, error) {
	m.calls = append(m.calls, stage)
	if m.lastPrompts == nil {
		m.lastPrompts = make(map[string]string)
	}
	m.lastPrompts[stage] = prompt
	if err := m.errs[stage]; err != nil {
		return "", err
	}
	return m.replies[stage], nil
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

func newTestService(t *testing.T) (*Service, *mockCatalog, *mockExtractor, *mockCompleter) {
	t.Helper()
	catalog := &mockCatalog{}
	extractor := &mockExtractor{}
	completer := &mockCompleter{replies: map[string]string{}, errs: map[string]error{}}
	svc := New(catalog, extractor, completer, zap.NewNop())
	return svc, catalog, extractor, completer
}

func testCandidate(id, name, description, category string, price float64) domain.Candidate {
	return domain.Candidate{
		Meal: domain.Meal{
			ID:           id,
			Name:         name,
			Description:  description,
			Price:        price,
			Category:     category,
			Available:    true,
			RestaurantID: "r1",
		},
		Restaurant: domain.Restaurant{
			ID:              "r1",
			Name:            "Test Kitchen",
			Cuisine:         "fusion",
			DeliveryTimeMin: 20,
			DeliveryTimeMax: 40,
		},
	}
}
