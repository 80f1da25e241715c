package domain

import "context"

// Extractor is the shared criteria extraction contract between layers.
type Extractor interface {
	Extract(ctx context.Context, query string) (Criteria, error)
}

// Price preference buckets produced by criteria extraction.
const (
	PriceBudget   = "budget"
	PriceModerate = "moderate"
	PricePremium  = "premium"
)

// Criteria holds the structured search hints extracted from a free-text
// query. Every field is optional; a nil field constrains nothing.
type Criteria struct {
	Keywords            []string `json:"keywords"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Ingredients         []string `json:"ingredients"`
	Textures            []string `json:"textures"`
	Flavors             []string `json:"flavors"`
	Categories          []string `json:"categories"`
	Exclude             []string `json:"exclude"`
	PricePreference     string   `json:"price_preference"`
}

// HasFilters reports whether the criteria constrain retrieval at all.
func (c Criteria) HasFilters() bool {
	return len(c.Keywords) > 0 ||
		len(c.Ingredients) > 0 ||
		len(c.Categories) > 0 ||
		c.PricePreference != ""
}

// FallbackCriteria is the guaranteed degrade path for criteria extraction:
// the raw query as a single keyword, everything else absent.
func FallbackCriteria(query string) Criteria {
	return Criteria{Keywords: []string{query}}
}
