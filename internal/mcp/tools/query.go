package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// VacancyFilter narrows stored vacancies
type VacancyFilter struct {
	Keyword   string  `json:"keyword,omitempty" jsonschema:"Case-insensitive text matched against title and description"`
	MinSalary float64 `json:"min_salary,omitempty" jsonschema:"Minimum average salary"`
}

// VacancyListResult is returned by the read-only tools
type VacancyListResult struct {
	Count     int                     `json:"count" jsonschema:"Number of vacancies returned"`
	Vacancies []domain.VacancySummary `json:"vacancies" jsonschema:"Matching vacancies"`
}

type queryTool struct {
	service vacancy.Service
	logger  *logging.Logger
}

// WithVacancyQuery registers the vacancy_query tool
func WithVacancyQuery() Option {
	return func(reg *registry) {
		handler := queryTool{service: reg.service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_query",
			Description: "List saved vacancies, optionally filtered by keyword and minimum average salary",
		}, handler.handle)
	}
}

func (t queryTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, filter VacancyFilter) (*sdkmcp.CallToolResult, any, error) {
	vacancies, err := t.service.Query(ctx, criteria(filter.Keyword, filter.MinSalary))
	if err != nil {
		t.logger.Error("vacancy_query failed", "err", err)
		return nil, nil, fmt.Errorf("failed to query vacancies: %w", err)
	}

	result := VacancyListResult{Count: len(vacancies), Vacancies: domain.Summarize(vacancies)}
	header := fmt.Sprintf("[vacancy_query] %d saved vacancy(ies)", result.Count)
	return textResult(listing(header, vacancies)), result, nil
}
