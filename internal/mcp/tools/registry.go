package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server  *sdkmcp.Server
	service vacancy.Service
	logger  *logging.Logger
}

// Register applies the provided tool options. With no options every vacancy tool is registered.
func Register(server *sdkmcp.Server, service vacancy.Service, logger *logging.Logger, opts ...Option) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(opts) == 0 {
		opts = All()
	}

	reg := &registry{server: server, service: service, logger: logger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

// All returns options for every vacancy tool
func All() []Option {
	return []Option{
		WithVacancySearch(),
		WithVacancyQuery(),
		WithVacancyTop(),
		WithVacancyClear(),
		WithVacancyExport(),
	}
}
