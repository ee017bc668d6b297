package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/vacancy-search/internal/app"
	"github.com/honeycarbs/vacancy-search/internal/console"
	"github.com/honeycarbs/vacancy-search/internal/domain"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		opts       domain.SearchOptions
		area       int
		salaryFrom int
		salaryTo   int
		noSave     bool
		show       int
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Fetch vacancies from HeadHunter and save new ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("area") {
				opts.Area = &area
			}
			if cmd.Flags().Changed("salary-from") {
				opts.SalaryFrom = &salaryFrom
			}
			if cmd.Flags().Changed("salary-to") {
				opts.SalaryTo = &salaryTo
			}

			return c.withResources(cmd, func(res *app.Resources) error {
				result, err := res.Service.Search(cmd.Context(), args[0], opts)
				if err != nil {
					return err
				}

				added := 0
				if !noSave {
					if added, err = res.Service.Persist(cmd.Context(), result.Vacancies); err != nil {
						return err
					}
				}

				shown := result.Vacancies
				if show >= 0 && len(shown) > show {
					shown = shown[:show]
				}

				if c.jsonOut {
					return c.printJSON(map[string]any{
						"search_id":  result.ID.String(),
						"source":     result.Source,
						"found":      len(result.Vacancies),
						"added":      added,
						"fetched_at": result.FetchedAt,
						"vacancies":  domain.Summarize(shown),
					})
				}

				title := fmt.Sprintf("Found %d vacancies, %d new saved", len(result.Vacancies), added)
				return c.printVacancies(title, shown)
			})
		},
	}

	cmd.Flags().IntVar(&opts.MaxPages, "pages", 3, "Result pages to load (1-20)")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 100, "Vacancies per page (1-100)")
	cmd.Flags().IntVar(&area, "area", 0, "HeadHunter area id (113 Russia, 1 Moscow)")
	cmd.Flags().IntVar(&salaryFrom, "salary-from", 0, "Lower salary bound")
	cmd.Flags().IntVar(&salaryTo, "salary-to", 0, "Upper salary bound")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not write results to the store")
	cmd.Flags().IntVar(&show, "show", 5, "How many results to print (-1 for all)")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	var criteria domain.Criteria

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved vacancies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withResources(cmd, func(res *app.Resources) error {
				vacancies, err := res.Service.Query(cmd.Context(), criteria)
				if err != nil {
					return err
				}
				return c.printVacancies(fmt.Sprintf("Saved vacancies: %d", len(vacancies)), vacancies)
			})
		},
	}
	addCriteriaFlags(cmd, &criteria)
	return cmd
}

func newTopCmd(c *cli) *cobra.Command {
	var criteria domain.Criteria

	cmd := &cobra.Command{
		Use:   "top <n>",
		Short: "Show the best paid saved vacancies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: n must be a number, got %q", domain.ErrInvalidInput, args[0])
			}

			return c.withResources(cmd, func(res *app.Resources) error {
				vacancies, err := res.Service.Top(cmd.Context(), n, criteria)
				if err != nil {
					return err
				}
				return c.printVacancies(fmt.Sprintf("Top %d vacancies by salary", n), vacancies)
			})
		},
	}
	addCriteriaFlags(cmd, &criteria)
	return cmd
}

func newClearCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved vacancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear storage without --yes")
			}
			return c.withResources(cmd, func(res *app.Resources) error {
				if err := res.Service.Clear(cmd.Context()); err != nil {
					return err
				}
				return c.printSuccess("All vacancies deleted")
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var criteria domain.Criteria

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write saved vacancies to the configured Google Sheets tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withResources(cmd, func(res *app.Resources) error {
				written, err := res.Service.Export(cmd.Context(), criteria)
				if errors.Is(err, domain.ErrExportDisabled) {
					return fmt.Errorf("%w: set SHEETS_CREDENTIALS_PATH and SHEETS_SPREADSHEET_ID", err)
				}
				if err != nil {
					return err
				}
				if c.jsonOut {
					return c.printJSON(map[string]int{"written_rows": written})
				}
				return c.printSuccess(fmt.Sprintf("Exported %d vacancies", written))
			})
		},
	}
	addCriteriaFlags(cmd, &criteria)
	return cmd
}

func newMenuCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, c)
		},
	}
}

func runMenu(cmd *cobra.Command, c *cli) error {
	return c.withResources(cmd, func(res *app.Resources) error {
		return console.NewMenu(res.Service, c.in, c.out, res.Logger).Run(cmd.Context())
	})
}
