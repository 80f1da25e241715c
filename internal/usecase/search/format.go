package search

import (
	"fmt"

	"github.com/miamibe/food-eats/internal/domain"
)

// Display defaults for sparse catalog records.
const (
	defaultEmoji       = "🍽️"
	defaultCategory    = "main"
	defaultDeliveryMin = 15
	defaultDeliveryMax = 30
)

// formatMeal shapes one candidate into the client-facing result record.
func formatMeal(c domain.Candidate, score float64, explanation string) domain.RankedMeal {
	restaurant := c.Restaurant.Name
	if restaurant == "" {
		restaurant = "Unknown Restaurant"
	}

	deliveryMin := c.Restaurant.DeliveryTimeMin
	if deliveryMin == 0 {
		deliveryMin = defaultDeliveryMin
	}
	deliveryMax := c.Restaurant.DeliveryTimeMax
	if deliveryMax == 0 {
		deliveryMax = defaultDeliveryMax
	}

	emoji := c.Meal.Emoji
	if emoji == "" {
		emoji = defaultEmoji
	}
	category := c.Meal.Category
	if category == "" {
		category = defaultCategory
	}

	return domain.RankedMeal{
		ID:               c.Meal.ID,
		Name:             c.Meal.Name,
		Restaurant:       restaurant,
		Price:            fmt.Sprintf("$%.2f", c.Meal.Price),
		DeliveryTime:     fmt.Sprintf("%d-%d min", deliveryMin, deliveryMax),
		Emoji:            emoji,
		Description:      c.Meal.Description,
		Category:         category,
		RelevanceScore:   score,
		MatchExplanation: explanation,
	}
}
