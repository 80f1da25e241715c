package search

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/domain"
)

const extractionMaxTokens = 500

const extractionPromptFormat = `Extract meal selection criteria from this user query: %q

Translate any non-English terms to English tokens.
Return ONLY a valid JSON object with these fields (use null for missing criteria):
{
    "keywords": ["keyword1", "keyword2"],
    "dietary_restrictions": ["low_carb", "vegetarian", "gluten_free", "healthy"],
    "ingredients": ["meat", "vegetables", "chicken", "fish"],
    "textures": ["crispy", "soft", "crunchy"],
    "flavors": ["spicy", "sweet", "exotic", "mild"],
    "categories": ["salad", "main", "dessert"],
    "exclude": ["keywords", "to", "avoid"],
    "price_preference": "budget|moderate|premium"
}

Examples:
"I want something healthy - low carb, meat and vegetables with an exotic flavor, and crispy"
→ {"keywords": ["healthy", "meat", "vegetables"], "dietary_restrictions": ["low_carb", "healthy"], "ingredients": ["meat", "vegetables"], "textures": ["crispy"], "flavors": ["exotic"], "categories": null, "exclude": null, "price_preference": null}
"хочу что-то полезное - минимум углеводов, мясо овощи с экзотическим вкусом и хрустящее"
→ {"keywords": ["healthy", "meat", "vegetables"], "dietary_restrictions": ["low_carb", "healthy"], "ingredients": ["meat", "vegetables"], "textures": ["crispy"], "flavors": ["exotic"], "categories": null, "exclude": null, "price_preference": null}`

// Extractor turns a free-text query into structured criteria via a single
// chat completion. It implements domain.Extractor so the caching decorator
// can wrap it.
type Extractor struct {
	completer Completer
	logger    *zap.Logger
}

// NewExtractor creates an LLM-backed criteria extractor.
func NewExtractor(completer Completer, logger *zap.Logger) *Extractor {
	return &Extractor{completer: completer, logger: logger}
}

// Extract asks the model for criteria and parses the reply defensively:
// only the first JSON object substring of the completion is decoded, since
// chat models often wrap JSON in prose.
func (e *Extractor) Extract(ctx context.Context, query string) (domain.Criteria, error) {
	prompt := fmt.Sprintf(extractionPromptFormat, query)

	content, err := e.completer.Complete(ctx, "extraction", prompt, extractionMaxTokens)
	if err != nil {
		return domain.Criteria{}, fmt.Errorf("extraction completion: %w", err)
	}

	raw, ok := firstJSONObject(content)
	if !ok {
		return domain.Criteria{}, fmt.Errorf("no JSON object in extraction reply %q", truncate(content, 120))
	}

	var criteria domain.Criteria
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return domain.Criteria{}, fmt.Errorf("decode extraction reply: %w", err)
	}

	e.logger.Debug("Extracted criteria",
		zap.Strings("keywords", criteria.Keywords),
		zap.Strings("categories", criteria.Categories),
		zap.String("price_preference", criteria.PricePreference),
	)
	return criteria, nil
}

// truncate trims s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
