package export

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	vacancydomain "github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

const defaultTab = "Sheet1"

// Header is the first row written to the export tab
var Header = []any{"title", "url", "salary_from", "salary_to", "currency", "avg_salary", "description", "requirements"}

// valueWriter is the subset of the Sheets client used for export.
type valueWriter interface {
	ClearValues(ctx context.Context, spreadsheetID, a1Range string) error
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error
}

var _ vacancydomain.Exporter = (*SheetsExporter)(nil)

// SheetsExporter replaces the contents of one spreadsheet tab with vacancies
type SheetsExporter struct {
	client        valueWriter
	spreadsheetID string
	tab           string
	logger        *logging.Logger
}

func NewSheetsExporter(client valueWriter, spreadsheetID, tab string, logger *logging.Logger) (*SheetsExporter, error) {
	if client == nil {
		return nil, fmt.Errorf("export: sheets client is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("export: spreadsheet id is required")
	}
	if tab == "" {
		tab = defaultTab
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SheetsExporter{
		client:        client,
		spreadsheetID: spreadsheetID,
		tab:           tab,
		logger:        logger,
	}, nil
}

// Export clears the tab and writes the header followed by one row per vacancy.
// It returns the number of vacancy rows written.
func (e *SheetsExporter) Export(ctx context.Context, vacancies []domain.Vacancy) (int, error) {
	if err := e.client.ClearValues(ctx, e.spreadsheetID, e.tab+"!A:Z"); err != nil {
		return 0, fmt.Errorf("export: failed to clear sheet: %w", err)
	}

	if err := e.client.AppendValues(ctx, e.spreadsheetID, e.tab+"!A1", Rows(vacancies)); err != nil {
		return 0, fmt.Errorf("export: failed to append rows: %w", err)
	}

	e.logger.Info("sheet updated", "spreadsheet_id", e.spreadsheetID, "tab", e.tab, "rows", len(vacancies))
	return len(vacancies), nil
}

// Rows converts vacancies into sheet values, header first
func Rows(vacancies []domain.Vacancy) [][]any {
	values := make([][]any, 0, len(vacancies)+1)
	values = append(values, Header)
	for _, v := range vacancies {
		values = append(values, []any{
			v.Title(),
			v.URL(),
			v.SalaryFrom(),
			v.SalaryTo(),
			v.Currency(),
			v.AvgSalary(),
			v.Description(),
			v.Requirements(),
		})
	}
	return values
}
