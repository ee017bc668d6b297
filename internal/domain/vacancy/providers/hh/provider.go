package hh

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	vacancydomain "github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/hh"
)

// searchClient describes the subset of the HeadHunter client used by the provider.
type searchClient interface {
	Connect(ctx context.Context) error
	LoadVacancies(ctx context.Context, keyword string, params hh.SearchParams) ([]hh.RawItem, error)
}

// Provider implements vacancy.Provider using the HeadHunter API
type Provider struct {
	client searchClient
}

// NewProvider builds a HeadHunter provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("hh provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "hh"
}

func (p *Provider) Connect(ctx context.Context) error {
	if err := p.client.Connect(ctx); err != nil {
		return translate(err)
	}
	return nil
}

// Search queries HeadHunter and returns normalized vacancies
func (p *Provider) Search(ctx context.Context, keyword string, opts domain.SearchOptions) ([]domain.Vacancy, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("hh provider: client is nil")
	}

	items, err := p.client.LoadVacancies(ctx, keyword, hh.SearchParams{
		MaxPages:   opts.MaxPages,
		PerPage:    opts.PerPage,
		Area:       opts.Area,
		SalaryFrom: opts.SalaryFrom,
		SalaryTo:   opts.SalaryTo,
	})
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Vacancy, 0, len(items))
	for i, item := range items {
		v, err := FromRaw(item)
		if err != nil {
			return nil, fmt.Errorf("hh provider: item %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

var _ vacancydomain.Provider = (*Provider)(nil)

// translate maps client errors onto the domain error taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, hh.ErrInvalidKeyword):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	case errors.Is(err, hh.ErrConnection):
		return fmt.Errorf("%w: %w", domain.ErrConnectionFailure, err)
	case errors.Is(err, hh.ErrParser):
		return fmt.Errorf("%w: %w", domain.ErrParserFailure, err)
	}
	return err
}
