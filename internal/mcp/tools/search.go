package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

const defaultResponseLimit = 20

// VacancySearchParams defines the arguments for the vacancy_search tool
type VacancySearchParams struct {
	Keyword    string `json:"keyword" jsonschema:"Search text sent to HeadHunter"`
	Pages      int    `json:"pages,omitempty" jsonschema:"Result pages to load, 1 to 20 (default 2)"`
	PerPage    int    `json:"per_page,omitempty" jsonschema:"Vacancies per page, 1 to 100 (default 100)"`
	Area       *int   `json:"area,omitempty" jsonschema:"HeadHunter area id, e.g. 1 for Moscow"`
	SalaryFrom *int   `json:"salary_from,omitempty" jsonschema:"Lower salary bound"`
	SalaryTo   *int   `json:"salary_to,omitempty" jsonschema:"Upper salary bound"`
	Persist    *bool  `json:"persist,omitempty" jsonschema:"Save results to local storage (default true)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Vacancies included in the response (default 20)"`
}

// VacancySearchResult summarizes a search run
type VacancySearchResult struct {
	SearchID  string                  `json:"search_id" jsonschema:"Identifier of this search run"`
	Source    string                  `json:"source" jsonschema:"Provider name"`
	Found     int                     `json:"found" jsonschema:"Vacancies fetched from the provider"`
	Added     int                     `json:"added" jsonschema:"Vacancies newly saved to storage"`
	FetchedAt time.Time               `json:"fetched_at" jsonschema:"When the search ran"`
	Vacancies []domain.VacancySummary `json:"vacancies" jsonschema:"First fetched vacancies"`
}

type searchTool struct {
	service vacancy.Service
	logger  *logging.Logger
}

// WithVacancySearch registers the vacancy_search tool
func WithVacancySearch() Option {
	return func(reg *registry) {
		handler := searchTool{service: reg.service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_search",
			Description: "Search HeadHunter vacancies by keyword, normalize them and save new ones to local storage",
		}, handler.handle)
	}
}

func (t searchTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params VacancySearchParams) (*sdkmcp.CallToolResult, any, error) {
	t.logger.Debug("vacancy_search called", "keyword", params.Keyword)

	res, err := t.service.Search(ctx, params.Keyword, domain.SearchOptions{
		MaxPages:   params.Pages,
		PerPage:    params.PerPage,
		Area:       params.Area,
		SalaryFrom: params.SalaryFrom,
		SalaryTo:   params.SalaryTo,
	})
	if err != nil {
		t.logger.Error("vacancy_search failed", "err", err)
		return nil, nil, fmt.Errorf("vacancy search failed: %w", err)
	}

	result := VacancySearchResult{
		SearchID:  res.ID.String(),
		Source:    res.Source,
		Found:     len(res.Vacancies),
		FetchedAt: res.FetchedAt,
	}

	if params.Persist == nil || *params.Persist {
		added, err := t.service.Persist(ctx, res.Vacancies)
		if err != nil {
			t.logger.Error("vacancy_search: failed to persist", "err", err, "search_id", result.SearchID)
			return nil, nil, fmt.Errorf("failed to persist vacancies: %w", err)
		}
		result.Added = added
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultResponseLimit
	}
	shown := res.Vacancies[:min(limit, len(res.Vacancies))]
	result.Vacancies = domain.Summarize(shown)

	header := fmt.Sprintf("[vacancy_search] search_id=%s found=%d added=%d", result.SearchID, result.Found, result.Added)
	return textResult(listing(header, shown)), result, nil
}
