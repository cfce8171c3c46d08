package dashboard

import (
	"testing"
	"time"

	"coffeejournal/internal/models"
)

func cards() []models.Tasting {
	base := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	return []models.Tasting{
		{ID: 1, Brand: "Onyx", CoffeeName: "Monarch", Score: 9, CreatedAt: base},
		{ID: 2, Brand: "Square Mile", CoffeeName: "Red Brick", Score: 6, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Brand: "Onyx", CoffeeName: "Geometry", Score: 8, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestParseSortOrder(t *testing.T) {
	if ParseSortOrder(" BEST ") != SortBest {
		t.Fatal("expected case-insensitive best")
	}
	if ParseSortOrder("worst") != SortWorst {
		t.Fatal("expected worst")
	}
	if ParseSortOrder("") != SortRecent {
		t.Fatal("empty value must default to recent")
	}
	if ParseSortOrder("sideways") != SortRecent {
		t.Fatal("unknown value must default to recent")
	}
}

func TestFilterMatchesNameAndBrandCaseInsensitive(t *testing.T) {
	byName := Filter(cards(), "mONa", SortRecent)
	if len(byName) != 1 || byName[0].CoffeeName != "Monarch" {
		t.Fatalf("expected Monarch only, got %+v", byName)
	}

	byBrand := Filter(cards(), "onyx", SortRecent)
	if len(byBrand) != 2 {
		t.Fatalf("expected two Onyx cards, got %d", len(byBrand))
	}

	none := Filter(cards(), "decaf", SortRecent)
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestFilterEmptyQueryKeepsEverything(t *testing.T) {
	all := Filter(cards(), "   ", SortRecent)
	if len(all) != 3 {
		t.Fatalf("expected all cards, got %d", len(all))
	}
}

func TestFilterSortOrders(t *testing.T) {
	recent := Filter(cards(), "", SortRecent)
	if recent[0].ID != 3 || recent[2].ID != 1 {
		t.Fatalf("recent must sort newest first: %+v", ids(recent))
	}

	best := Filter(cards(), "", SortBest)
	if best[0].Score != 9 || best[2].Score != 6 {
		t.Fatalf("best must sort score descending: %+v", ids(best))
	}

	worst := Filter(cards(), "", SortWorst)
	if worst[0].Score != 6 || worst[2].Score != 9 {
		t.Fatalf("worst must sort score ascending: %+v", ids(worst))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := cards()
	Filter(input, "", SortBest)
	if input[0].ID != 1 || input[1].ID != 2 || input[2].ID != 3 {
		t.Fatalf("input slice was reordered: %+v", ids(input))
	}
}

func ids(tastings []models.Tasting) []uint {
	out := make([]uint, 0, len(tastings))
	for _, tasting := range tastings {
		out = append(out, tasting.ID)
	}
	return out
}
