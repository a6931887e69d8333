// Package item contains grocery catalog use cases.
package item

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// Relevance scores are additive, not mutually exclusive: an exact match also
// scores the prefix and contains bonuses.
const (
	scoreExactName    = 100
	scoreNamePrefix   = 50
	scoreNameContains = 25
	scoreBrandMatch   = 10
)

// SearchItemsInput represents the input for catalog search.
type SearchItemsInput struct {
	Query string
}

// SearchItemsOutput represents the output of catalog search.
type SearchItemsOutput struct {
	Items []*entity.GroceryItem
}

// SearchItemsUseCase handles relevance-ranked catalog search.
type SearchItemsUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewSearchItemsUseCase creates a new SearchItemsUseCase instance.
func NewSearchItemsUseCase(itemRepo adapter.GroceryItemRepository) *SearchItemsUseCase {
	return &SearchItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retrieves items ranked by textual relevance to the query. An empty
// query returns the unfiltered catalog in repository order.
func (uc *SearchItemsUseCase) Execute(ctx context.Context, input SearchItemsInput) (*SearchItemsOutput, error) {
	query := strings.TrimSpace(input.Query)

	if query == "" {
		items, err := uc.itemRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch item catalog: %w", err)
		}
		return &SearchItemsOutput{Items: items}, nil
	}

	candidates, err := uc.itemRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	scores := make([]int, len(candidates))
	for i, item := range candidates {
		scores[i] = relevanceScore(item, query)
	}

	// Stable sort is a correctness property here: equal scores must keep
	// their relative repository order.
	indexes := make([]int, len(candidates))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	ranked := make([]*entity.GroceryItem, len(candidates))
	for i, idx := range indexes {
		ranked[i] = candidates[idx]
	}

	return &SearchItemsOutput{Items: ranked}, nil
}

// relevanceScore scores an item against the query, case-insensitively.
func relevanceScore(item *entity.GroceryItem, query string) int {
	name := strings.ToLower(item.Name)
	q := strings.ToLower(query)

	score := 0
	if name == q {
		score += scoreExactName
	}
	if strings.HasPrefix(name, q) {
		score += scoreNamePrefix
	}
	if strings.Contains(name, q) {
		score += scoreNameContains
	}
	if item.Brand != "" && strings.Contains(strings.ToLower(item.Brand), q) {
		score += scoreBrandMatch
	}
	return score
}
