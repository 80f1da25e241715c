package catalog

import (
	"strconv"

	"github.com/miamibe/food-eats/internal/domain"
)

// Hash field names for meal and restaurant records. The FT index schema in
// index.go must stay in sync with the meal fields.
const (
	fieldName         = "name"
	fieldDescription  = "description"
	fieldPrice        = "price"
	fieldCategory     = "category"
	fieldEmoji        = "emoji"
	fieldPrepMinutes  = "prep_minutes"
	fieldAvailable    = "available"
	fieldRestaurantID = "restaurant_id"
	fieldCuisine      = "cuisine"
	fieldDeliveryMin  = "delivery_time_min"
	fieldDeliveryMax  = "delivery_time_max"
)

// buildMealFields converts a domain Meal into a flat map[string]string for HSET.
func buildMealFields(m *domain.Meal) map[string]string {
	available := "0"
	if m.Available {
		available = "1"
	}
	return map[string]string{
		fieldName:         m.Name,
		fieldDescription:  m.Description,
		fieldPrice:        strconv.FormatFloat(m.Price, 'f', -1, 64),
		fieldCategory:     m.Category,
		fieldEmoji:        m.Emoji,
		fieldPrepMinutes:  strconv.Itoa(m.PrepMinutes),
		fieldAvailable:    available,
		fieldRestaurantID: m.RestaurantID,
	}
}

// parseMealFields converts a flat hash map back into a domain Meal.
func parseMealFields(id string, fields map[string]string) domain.Meal {
	price, _ := strconv.ParseFloat(fields[fieldPrice], 64)
	prep, _ := strconv.Atoi(fields[fieldPrepMinutes])
	return domain.Meal{
		ID:           id,
		Name:         fields[fieldName],
		Description:  fields[fieldDescription],
		Price:        price,
		Category:     fields[fieldCategory],
		Emoji:        fields[fieldEmoji],
		PrepMinutes:  prep,
		Available:    fields[fieldAvailable] == "1",
		RestaurantID: fields[fieldRestaurantID],
	}
}

// buildRestaurantFields converts a domain Restaurant into hash fields.
func buildRestaurantFields(r *domain.Restaurant) map[string]string {
	return map[string]string{
		fieldName:        r.Name,
		fieldCuisine:     r.Cuisine,
		fieldDeliveryMin: strconv.Itoa(r.DeliveryTimeMin),
		fieldDeliveryMax: strconv.Itoa(r.DeliveryTimeMax),
	}
}

// parseRestaurantFields converts hash fields back into a domain Restaurant.
func parseRestaurantFields(id string, fields map[string]string) domain.Restaurant {
	minT, _ := strconv.Atoi(fields[fieldDeliveryMin])
	maxT, _ := strconv.Atoi(fields[fieldDeliveryMax])
	return domain.Restaurant{
		ID:              id,
		Name:            fields[fieldName],
		Cuisine:         fields[fieldCuisine],
		DeliveryTimeMin: minT,
		DeliveryTimeMax: maxT,
	}
}
