package dashboard

import (
	"sort"
	"strings"

	"coffeejournal/internal/models"
)

type SortOrder string

const (
	SortRecent SortOrder = "recent"
	SortBest   SortOrder = "best"
	SortWorst  SortOrder = "worst"
)

// ParseSortOrder maps a query value onto a sort order, defaulting to recent.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case SortBest:
		return SortBest
	case SortWorst:
		return SortWorst
	default:
		return SortRecent
	}
}

// Filter applies a case-insensitive substring search over coffee name and
// brand, then sorts by the requested order. The input slice is never
// mutated.
func Filter(tastings []models.Tasting, query string, order SortOrder) []models.Tasting {
	needle := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]models.Tasting, 0, len(tastings))
	for _, tasting := range tastings {
		if needle == "" ||
			strings.Contains(strings.ToLower(tasting.CoffeeName), needle) ||
			strings.Contains(strings.ToLower(tasting.Brand), needle) {
			filtered = append(filtered, tasting)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch order {
		case SortBest:
			return filtered[i].Score > filtered[j].Score
		case SortWorst:
			return filtered[i].Score < filtered[j].Score
		default:
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
	})
	return filtered
}
