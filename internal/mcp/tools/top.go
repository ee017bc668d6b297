package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

const defaultTopN = 10

// VacancyTopParams defines the arguments for the vacancy_top tool
type VacancyTopParams struct {
	N         int     `json:"n,omitempty" jsonschema:"How many vacancies to return (default 10)"`
	Keyword   string  `json:"keyword,omitempty" jsonschema:"Case-insensitive text matched against title and description"`
	MinSalary float64 `json:"min_salary,omitempty" jsonschema:"Minimum average salary"`
}

type topTool struct {
	service vacancy.Service
	logger  *logging.Logger
}

// WithVacancyTop registers the vacancy_top tool
func WithVacancyTop() Option {
	return func(reg *registry) {
		handler := topTool{service: reg.service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_top",
			Description: "Return the best paid saved vacancies ordered by average salary",
		}, handler.handle)
	}
}

func (t topTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, p VacancyTopParams) (*sdkmcp.CallToolResult, any, error) {
	if p.N == 0 {
		p.N = defaultTopN
	}

	vacancies, err := t.service.Top(ctx, p.N, criteria(p.Keyword, p.MinSalary))
	if err != nil {
		t.logger.Error("vacancy_top failed", "err", err)
		return nil, nil, fmt.Errorf("failed to rank vacancies: %w", err)
	}

	result := VacancyListResult{Count: len(vacancies), Vacancies: domain.Summarize(vacancies)}
	header := fmt.Sprintf("[vacancy_top] top %d by salary", result.Count)
	return textResult(listing(header, vacancies)), result, nil
}
