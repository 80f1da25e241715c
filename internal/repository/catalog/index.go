package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/miamibe/food-eats/internal/db"
	"github.com/miamibe/food-eats/internal/domain"
)

const (
	mealKeyPrefix       = domain.KeyPrefix + "meal:"
	restaurantKeyPrefix = domain.KeyPrefix + "restaurant:"
	mealIndexName       = domain.KeyPrefix + "meals:idx"
)

func mealKey(id string) string       { return mealKeyPrefix + id }
func restaurantKey(id string) string { return restaurantKeyPrefix + id }

// mealIndex is the FT index over meal hashes. Suffix tries on the text
// fields make infix wildcard matching cheap.
func mealIndex() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     mealIndexName,
		Prefixes: []string{mealKeyPrefix},
		Fields: []db.IndexField{
			{Name: fieldName, Type: db.IndexFieldText, WithSuffixTrie: true},
			{Name: fieldDescription, Type: db.IndexFieldText, WithSuffixTrie: true},
			{Name: fieldCategory, Type: db.IndexFieldTag, WithSuffixTrie: true},
			{Name: fieldPrice, Type: db.IndexFieldNumeric},
			{Name: fieldAvailable, Type: db.IndexFieldTag},
			{Name: fieldRestaurantID, Type: db.IndexFieldTag},
		},
	}
}

// EnsureIndex creates the meal FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := mealIndex()
	if err := def.Validate(); err != nil {
		return fmt.Errorf("meal index definition: %w", err)
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create meal index: %w", err)
	}
	return nil
}
