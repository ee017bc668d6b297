//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/vacancy-search/internal/config"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	hhprovider "github.com/honeycarbs/vacancy-search/internal/domain/vacancy/providers/hh"
	"github.com/honeycarbs/vacancy-search/internal/storage/jsonfile"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - HeadHunter
		provideHHConfig,
		provideHHClient,

		// Repositories
		provideRepository,
		wire.Bind(new(vacancy.Repository), new(*jsonfile.VacancyRepository)),

		// Providers
		provideHHProvider,
		wire.Bind(new(vacancy.Provider), new(*hhprovider.Provider)),

		// Export
		provideExporter,

		// Services
		vacancy.NewServiceWithDeps,
		newResources,
	)

	return nil, nil, nil
}
