package domain

import "errors"

var (
	// ErrQueryRequired signals a missing or empty search query.
	ErrQueryRequired = errors.New("Query is required")
	// ErrCatalogUnavailable signals that the catalog store call itself failed.
	ErrCatalogUnavailable = errors.New("Failed to fetch meals from database")
	// ErrRestaurantNotFound signals a missing restaurant record.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrMealNotFound signals a missing meal record.
	ErrMealNotFound = errors.New("meal not found")
	// ErrLLMProviderError signals a chat-completion provider failure.
	// Recovered locally by the pipeline's fallback stages, never surfaced.
	ErrLLMProviderError = errors.New("llm provider error")
)
