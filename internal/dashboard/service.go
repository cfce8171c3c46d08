package dashboard

import (
	"coffeejournal/internal/models"
	"coffeejournal/internal/stats"
)

type TastingReader interface {
	ListByUser(userID uint) ([]models.Tasting, error)
}

// Service composes the tasting repository with the statistics aggregator and
// the client-side search/sort filter.
type Service struct {
	tastings TastingReader
}

func NewService(tastings TastingReader) *Service {
	return &Service{tastings: tastings}
}

// Overview is one dashboard load: statistics over the full list plus the
// filtered, sorted cards.
type Overview struct {
	Statistics stats.DashboardStatistics `json:"statistics"`
	Tastings   []models.Tasting          `json:"tastings"`
}

// BuildOverview recomputes statistics from the user's full tasting list and
// applies the search/sort filter for presentation. Statistics always cover
// the unfiltered list.
func (service *Service) BuildOverview(userID uint, query string, order SortOrder) (Overview, error) {
	tastings, err := service.tastings.ListByUser(userID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Statistics: stats.Aggregate(tastings),
		Tastings:   Filter(tastings, query, order),
	}, nil
}
