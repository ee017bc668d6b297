package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/honeycarbs/vacancy-search/internal/app"
	"github.com/honeycarbs/vacancy-search/internal/config"
	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

type initializer func(ctx context.Context, cfg config.Config, logger *logging.Logger) (*app.Resources, func(), error)

// cli carries global flags and IO shared by every command
type cli struct {
	jsonOut  bool
	logLevel string
	envFile  string

	in         io.Reader
	out        io.Writer
	initialize initializer
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "vacancies",
		Short: "Search HeadHunter vacancies and manage the local vacancy store",
		Long: `vacancies - fetch job postings from api.hh.ru, save them to a local JSON store
and browse them from the terminal.

Without a subcommand the interactive menu is started.

Examples:
  vacancies search golang --pages 3 --area 1   # Fetch and save Moscow Go vacancies
  vacancies list --keyword backend             # Show saved vacancies mentioning backend
  vacancies top 10 --min-salary 200000         # Ten best paid saved vacancies
  vacancies export                             # Write saved vacancies to Google Sheets`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, c)
		},
	}
	root.SetIn(c.in)
	root.SetOut(c.out)

	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Print results as JSON")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "Load environment from this file instead of ./.env")

	root.AddCommand(
		newSearchCmd(c),
		newListCmd(c),
		newTopCmd(c),
		newClearCmd(c),
		newExportCmd(c),
		newMenuCmd(c),
	)
	return root
}

// withResources loads config, builds the dependency graph and runs fn
func (c *cli) withResources(cmd *cobra.Command, fn func(*app.Resources) error) error {
	var envFiles []string
	if c.envFile != "" {
		envFiles = append(envFiles, c.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	res, cleanup, err := c.initialize(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer cleanup()

	return fn(res)
}

func (c *cli) printVacancies(title string, vacancies []domain.Vacancy) error {
	if c.jsonOut {
		return c.printJSON(domain.Summarize(vacancies))
	}

	if len(vacancies) == 0 {
		_, err := fmt.Fprint(c.out, pterm.Warning.Sprintln("No vacancies"))
		return err
	}

	data := pterm.TableData{{"#", "Title", "Salary", "Currency", "URL"}}
	for i, v := range vacancies {
		data = append(data, []string{fmt.Sprint(i + 1), v.Title(), v.SalaryText(), v.Currency(), v.URL()})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "%s\n%s\n", title, table)
	return err
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printSuccess(msg string) error {
	_, err := fmt.Fprint(c.out, pterm.Success.Sprintln(msg))
	return err
}

// addCriteriaFlags registers the storage filter flags shared by read commands
func addCriteriaFlags(cmd *cobra.Command, criteria *domain.Criteria) {
	cmd.Flags().StringVar(&criteria.Keyword, "keyword", "", "Match text in title or description (case-insensitive)")
	cmd.Flags().Float64Var(&criteria.MinSalary, "min-salary", 0, "Minimum average salary")
}
