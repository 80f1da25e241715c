package foodeats

import "github.com/miamibe/food-eats/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrQueryRequired      = domain.ErrQueryRequired
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrRestaurantNotFound = domain.ErrRestaurantNotFound
	ErrMealNotFound       = domain.ErrMealNotFound
	ErrLLMProviderError   = domain.ErrLLMProviderError
)
