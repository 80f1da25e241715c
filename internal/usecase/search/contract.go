package search

import (
	"context"

	"github.com/miamibe/food-eats/internal/domain"
)

// Catalog defines the storage contract for candidate retrieval.
type Catalog interface {
	FindCandidates(ctx context.Context, criteria domain.Criteria, limit int) ([]domain.Candidate, error)
	AllAvailable(ctx context.Context, limit int) ([]domain.Candidate, error)
}

// Completer sends a single-turn prompt to the chat-completion provider
// and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, stage, prompt string, maxTokens int) (string, error)
}
