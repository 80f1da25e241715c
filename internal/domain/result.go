package domain

// RankedMeal is a single search result shaped for the client: display
// fields formatted as text plus the ranking metadata.
type RankedMeal struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Restaurant       string  `json:"restaurant"`
	Price            string  `json:"price"`        // e.g. "$12.99"
	DeliveryTime     string  `json:"deliveryTime"` // e.g. "15-30 min"
	Emoji            string  `json:"emoji"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	RelevanceScore   float64 `json:"relevance_score"`
	MatchExplanation string  `json:"match_explanation,omitempty"`
}
