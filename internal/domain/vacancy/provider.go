package vacancy

import (
	"context"

	"github.com/honeycarbs/vacancy-search/internal/domain"
)

// Provider represents an external vacancy data source (HeadHunter today)
type Provider interface {
	// e.g. "hh"
	Name() string

	// Connect probes the source without fetching listings
	Connect(ctx context.Context) error

	// Search returns normalized vacancies for a keyword
	Search(ctx context.Context, keyword string, opts domain.SearchOptions) ([]domain.Vacancy, error)
}
