package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// VacancyClearParams defines the arguments for the vacancy_clear tool
type VacancyClearParams struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to delete every saved vacancy"`
}

// VacancyClearResult reports the outcome of vacancy_clear
type VacancyClearResult struct {
	Cleared bool   `json:"cleared" jsonschema:"Whether storage was emptied"`
	Message string `json:"message,omitempty" jsonschema:"Optional status message"`
}

type clearTool struct {
	service vacancy.Service
	logger  *logging.Logger
}

// WithVacancyClear registers the vacancy_clear tool
func WithVacancyClear() Option {
	return func(reg *registry) {
		handler := clearTool{service: reg.service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_clear",
			Description: "Delete every saved vacancy from local storage",
		}, handler.handle)
	}
}

func (t clearTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params VacancyClearParams) (*sdkmcp.CallToolResult, any, error) {
	if !params.Confirm {
		return nil, nil, fmt.Errorf("%w: confirm must be true", domain.ErrInvalidInput)
	}

	if err := t.service.Clear(ctx); err != nil {
		t.logger.Error("vacancy_clear failed", "err", err)
		return nil, nil, fmt.Errorf("failed to clear storage: %w", err)
	}

	result := VacancyClearResult{Cleared: true, Message: "storage cleared"}
	return textResult("[vacancy_clear] " + result.Message), result, nil
}
