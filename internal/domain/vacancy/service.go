package vacancy

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

type Service interface {
	// Search fetches and normalizes vacancies from the provider without storing them
	Search(ctx context.Context, keyword string, opts domain.SearchOptions) (SearchResult, error)
	// Persist stores vacancies, skipping ones already stored
	Persist(ctx context.Context, vacancies []domain.Vacancy) (int, error)
	Query(ctx context.Context, criteria domain.Criteria) ([]domain.Vacancy, error)
	// Top returns at most n matching vacancies, highest average salary first
	Top(ctx context.Context, n int, criteria domain.Criteria) ([]domain.Vacancy, error)
	Clear(ctx context.Context) error
	// Export publishes matching vacancies through the configured exporter
	Export(ctx context.Context, criteria domain.Criteria) (int, error)
}

// SearchResult wraps provider search output
type SearchResult struct {
	ID        uuid.UUID
	Source    string
	Vacancies []domain.Vacancy
	FetchedAt time.Time
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	repo     Repository
	exporter Exporter
	logger   *logging.Logger
	clock    func() time.Time
}

// WithProvider sets the vacancy provider
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithExporter sets the export destination
func WithExporter(e Exporter) Option {
	return func(c *config) {
		c.exporter = e
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("vacancy.Service: repository is required")
	}
	if cfg.provider == nil {
		return nil, fmt.Errorf("vacancy.Service: provider is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &service{
		provider: cfg.provider,
		repo:     cfg.repo,
		exporter: cfg.exporter,
		logger:   cfg.logger,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository, provider Provider, exporter Exporter, logger *logging.Logger) (Service, error) {
	return NewService(
		WithRepository(repo),
		WithProvider(provider),
		WithExporter(exporter),
		WithLogger(logger),
	)
}

type service struct {
	provider Provider
	repo     Repository
	exporter Exporter
	logger   *logging.Logger
	clock    func() time.Time
}

func (s *service) Search(ctx context.Context, keyword string, opts domain.SearchOptions) (SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return SearchResult{}, fmt.Errorf("%w: keyword is required", domain.ErrInvalidInput)
	}

	result := SearchResult{
		ID:        uuid.New(),
		Source:    s.provider.Name(),
		FetchedAt: s.clock(),
	}
	log := s.logger.With("search_id", result.ID.String(), "source", result.Source)
	log.Info("vacancy search started", "keyword", keyword, "max_pages", opts.MaxPages, "per_page", opts.PerPage)

	vacancies, err := s.provider.Search(ctx, keyword, opts)
	if err != nil {
		log.Warn("vacancy search failed", "err", err)
		return SearchResult{}, err
	}

	result.Vacancies = vacancies
	log.Info("vacancy search finished", "count", len(vacancies))
	return result, nil
}

func (s *service) Persist(ctx context.Context, vacancies []domain.Vacancy) (int, error) {
	if len(vacancies) == 0 {
		return 0, nil
	}

	added, err := s.repo.Add(ctx, vacancies)
	if err != nil {
		return 0, err
	}

	s.logger.Info("vacancies persisted", "received", len(vacancies), "added", added)
	return added, nil
}

func (s *service) Query(ctx context.Context, criteria domain.Criteria) ([]domain.Vacancy, error) {
	return s.repo.Query(ctx, criteria)
}

func (s *service) Top(ctx context.Context, n int, criteria domain.Criteria) ([]domain.Vacancy, error) {
	if n <= 0 {
		return []domain.Vacancy{}, nil
	}

	vacancies, err := s.repo.Query(ctx, criteria)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(vacancies, func(a, b domain.Vacancy) int {
		return cmp.Compare(b.AvgSalary(), a.AvgSalary())
	})

	if len(vacancies) > n {
		vacancies = vacancies[:n]
	}
	return vacancies, nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("vacancy storage cleared")
	return nil
}

func (s *service) Export(ctx context.Context, criteria domain.Criteria) (int, error) {
	if s.exporter == nil {
		return 0, domain.ErrExportDisabled
	}

	vacancies, err := s.repo.Query(ctx, criteria)
	if err != nil {
		return 0, err
	}

	written, err := s.exporter.Export(ctx, vacancies)
	if err != nil {
		return 0, err
	}

	s.logger.Info("vacancies exported", "rows", written)
	return written, nil
}
