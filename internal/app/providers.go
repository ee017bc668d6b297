package app

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-search/internal/config"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	hhprovider "github.com/honeycarbs/vacancy-search/internal/domain/vacancy/providers/hh"
	"github.com/honeycarbs/vacancy-search/internal/export"
	"github.com/honeycarbs/vacancy-search/internal/storage/jsonfile"
	"github.com/honeycarbs/vacancy-search/pkg/hh"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
	sheetsclient "github.com/honeycarbs/vacancy-search/pkg/sheets"
)

// Resources holds everything a command needs to run
type Resources struct {
	Config  config.Config
	Logger  *logging.Logger
	Service vacancy.Service
	Store   *jsonfile.VacancyRepository
}

// provideHHConfig extracts HeadHunter client config from main config
func provideHHConfig(cfg config.Config, logger *logging.Logger) hh.Config {
	return hh.Config{
		BaseURL:    cfg.HH.BaseURL,
		UserAgent:  cfg.HH.UserAgent,
		Timeout:    cfg.HH.Timeout,
		MaxRetries: cfg.HH.MaxRetries,
		Logger:     logger.With("component", "hh"),
	}
}

// provideHHClient creates the HeadHunter client and its cleanup
func provideHHClient(cfg hh.Config) (*hh.Client, func(), error) {
	client, err := hh.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// provideHHProvider adapts the client to the vacancy provider interface
func provideHHProvider(client *hh.Client) (*hhprovider.Provider, error) {
	return hhprovider.NewProvider(client)
}

// provideRepository opens the JSON file store
func provideRepository(cfg config.Config, logger *logging.Logger) (*jsonfile.VacancyRepository, error) {
	return jsonfile.NewVacancyRepository(cfg.Storage.Path, logger)
}

// provideExporter builds the Sheets exporter, or nil when Sheets is not configured
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (vacancy.Exporter, error) {
	if !cfg.SheetsEnabled() {
		logger.Debug("sheets export disabled")
		return nil, nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, fmt.Errorf("app: sheets client: %w", err)
	}

	return export.NewSheetsExporter(client, cfg.Sheets.SpreadsheetID, cfg.Sheets.Tab, logger)
}

// newResources creates Resources struct
func newResources(cfg config.Config, logger *logging.Logger, service vacancy.Service, store *jsonfile.VacancyRepository) *Resources {
	return &Resources{
		Config:  cfg,
		Logger:  logger,
		Service: service,
		Store:   store,
	}
}
