package dashboard

import (
	"errors"
	"testing"

	"coffeejournal/internal/models"
)

type stubTastingReader struct {
	tastings []models.Tasting
	err      error
}

func (stub *stubTastingReader) ListByUser(userID uint) ([]models.Tasting, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.tastings, nil
}

func TestBuildOverviewStatisticsIgnoreFilter(t *testing.T) {
	reader := &stubTastingReader{tastings: cards()}
	service := NewService(reader)

	overview, err := service.BuildOverview(1, "monarch", SortRecent)
	if err != nil {
		t.Fatalf("BuildOverview returned error: %v", err)
	}
	if overview.Statistics.TotalTastings != 3 {
		t.Fatalf("statistics must cover the full list, got %d", overview.Statistics.TotalTastings)
	}
	if len(overview.Tastings) != 1 {
		t.Fatalf("cards must honor the filter, got %d", len(overview.Tastings))
	}
}

func TestBuildOverviewPropagatesRepositoryError(t *testing.T) {
	service := NewService(&stubTastingReader{err: errors.New("db locked")})

	if _, err := service.BuildOverview(1, "", SortRecent); err == nil {
		t.Fatal("expected repository error to surface")
	}
}

func TestBuildOverviewEmptyList(t *testing.T) {
	service := NewService(&stubTastingReader{})

	overview, err := service.BuildOverview(1, "", SortRecent)
	if err != nil {
		t.Fatalf("BuildOverview returned error: %v", err)
	}
	if overview.Statistics.FavoriteOrigin != "N/A" {
		t.Fatalf("expected empty-state sentinel, got %q", overview.Statistics.FavoriteOrigin)
	}
	if len(overview.Tastings) != 0 {
		t.Fatalf("expected no cards, got %d", len(overview.Tastings))
	}
}
