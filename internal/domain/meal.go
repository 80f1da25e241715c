package domain

// KeyPrefix namespaces all keys written by this service.
const KeyPrefix = "food:"

// Restaurant is a catalog restaurant record.
type Restaurant struct {
	ID              string
	Name            string
	Cuisine         string
	DeliveryTimeMin int
	DeliveryTimeMax int
}

// Meal is a catalog meal record. Only available meals are eligible
// search candidates.
type Meal struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Category     string
	Emoji        string
	PrepMinutes  int
	Available    bool
	RestaurantID string
}

// Candidate is a meal joined with its restaurant, as retrieved from the
// catalog store before ranking.
type Candidate struct {
	Meal       Meal
	Restaurant Restaurant
}
