package vacancy

import (
	"context"

	"github.com/honeycarbs/vacancy-search/internal/domain"
)

// Repository persists and loads vacancies
type Repository interface {
	// Add stores vacancies that are not stored yet and reports how many were added
	Add(ctx context.Context, vacancies []domain.Vacancy) (int, error)

	// Query returns stored vacancies matching every set criterion, in storage order
	Query(ctx context.Context, criteria domain.Criteria) ([]domain.Vacancy, error)

	// Delete is reserved; implementations return domain.ErrNotImplemented
	Delete(ctx context.Context, criteria domain.Criteria) error

	// Clear removes every stored vacancy
	Clear(ctx context.Context) error
}

// Exporter publishes vacancies to an external destination
type Exporter interface {
	Export(ctx context.Context, vacancies []domain.Vacancy) (int, error)
}
