package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// VacancyExportResult describes the summary returned after export
type VacancyExportResult struct {
	WrittenRows int       `json:"written_rows" jsonschema:"How many vacancy rows were written"`
	CompletedAt time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message     string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

type exportTool struct {
	service vacancy.Service
	logger  *logging.Logger
	clock   func() time.Time
}

// WithVacancyExport registers the vacancy_export tool
func WithVacancyExport() Option {
	return func(reg *registry) {
		handler := exportTool{service: reg.service, logger: reg.logger, clock: time.Now}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_export",
			Description: "Write saved vacancies to the configured Google Sheets tab, replacing its contents",
		}, handler.handle)
	}
}

func (t exportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, filter VacancyFilter) (*sdkmcp.CallToolResult, any, error) {
	written, err := t.service.Export(ctx, criteria(filter.Keyword, filter.MinSalary))
	if err != nil {
		if errors.Is(err, domain.ErrExportDisabled) {
			return nil, nil, fmt.Errorf("google sheets export is not configured (SHEETS_CREDENTIALS_PATH and SHEETS_SPREADSHEET_ID): %w", err)
		}
		t.logger.Error("vacancy_export failed", "err", err)
		return nil, nil, fmt.Errorf("failed to export vacancies: %w", err)
	}

	result := VacancyExportResult{
		WrittenRows: written,
		CompletedAt: t.clock().UTC(),
		Message:     fmt.Sprintf("successfully exported %d row(s)", written),
	}
	return textResult("[vacancy_export] " + result.Message), result, nil
}
