package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/miamibe/food-eats/internal/domain"
)

const rerankMaxTokens = 800

const rerankPromptFormat = `User query: %q

Rank these meals from most relevant to least relevant based on the user's request:
%s

Interpret vague adjectives like "hearty", "cheap" or "healthy" semantically and culturally, not by literal keyword overlap.

Return ONLY a valid JSON array of the best matches (at most %d), each element:
{"position": <1-based number from the list above>, "relevance_score": <0.0-1.0>, "explanation": "<one short sentence>"}`

// ranking is one selected candidate as returned by the re-ranking model.
type ranking struct {
	Position       int     `json:"position"`
	RelevanceScore float64 `json:"relevance_score"`
	Explanation    string  `json:"explanation"`
}

// rerank asks the model to select and score the best candidates. Any error,
// unparseable reply, or a reply with zero usable positions is reported to
// the caller, which degrades to the text-match fallback.
func (s *Service) rerank(
	ctx context.Context, query string, candidates []domain.Candidate,
) ([]domain.RankedMeal, error) {
	prompt := fmt.Sprintf(rerankPromptFormat, query, candidateList(candidates), s.resultCap)

	content, err := s.completer.Complete(ctx, "rerank", prompt, rerankMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("rerank completion: %w", err)
	}

	rankings, err := parseRankings(content, len(candidates))
	if err != nil {
		return nil, err
	}

	// Highest score first; the model's order is advisory only.
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].RelevanceScore > rankings[j].RelevanceScore
	})
	if len(rankings) > s.resultCap {
		rankings = rankings[:s.resultCap]
	}

	meals := make([]domain.RankedMeal, 0, len(rankings))
	for _, r := range rankings {
		meals = append(meals, formatMeal(
			candidates[r.Position-1], r.RelevanceScore, r.Explanation,
		))
	}
	return meals, nil
}

// candidateList serializes candidates as the numbered one-line summaries the
// re-ranking prompt refers back to.
func candidateList(candidates []domain.Candidate) string {
	var b strings.Builder
	for i, c := range candidates {
		restaurant := c.Restaurant.Name
		if restaurant == "" {
			restaurant = "Unknown Restaurant"
		}
		category := c.Meal.Category
		if category == "" {
			category = "main"
		}
		fmt.Fprintf(&b, "%d. %s (%s) - %s - $%.2f - %s\n",
			i+1, c.Meal.Name, restaurant, c.Meal.Description, c.Meal.Price, category)
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseRankings decodes the model reply, keeping only in-range positions and
// dropping duplicates. Zero usable positions is an error.
func parseRankings(content string, candidateCount int) ([]ranking, error) {
	raw, ok := firstJSONArray(content)
	if !ok {
		return nil, fmt.Errorf("no JSON array in rerank reply %q", truncate(content, 120))
	}

	var decoded []ranking
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode rerank reply: %w", err)
	}

	seen := make(map[int]bool, len(decoded))
	kept := decoded[:0]
	for _, r := range decoded {
		if r.Position < 1 || r.Position > candidateCount || seen[r.Position] {
			continue
		}
		seen[r.Position] = true
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("rerank reply references no valid candidates")
	}
	return kept, nil
}
