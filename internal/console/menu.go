package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

const (
	defaultPages   = 3
	maxPages       = 20
	defaultPerPage = 100
	maxPerPage     = 100
	previewSize    = 5
	descriptionMax = 100
)

// errInputClosed stops the menu when the input stream ends.
var errInputClosed = errors.New("console: input closed")

// Menu is the interactive vacancy console
type Menu struct {
	service vacancy.Service
	in      *bufio.Scanner
	out     io.Writer
	logger  *logging.Logger
}

func NewMenu(service vacancy.Service, in io.Reader, out io.Writer, logger *logging.Logger) *Menu {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.prompt("\nChoose an action: ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			err = m.searchNew(ctx)
		case "2":
			err = m.showSaved(ctx)
		case "3":
			err = m.showTop(ctx)
		case "4":
			err = m.searchSaved(ctx)
		case "5":
			err = m.clear(ctx)
		case "0":
			m.println("Goodbye!")
			return nil
		default:
			m.warn("Invalid choice!")
			continue
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			m.logger.Debug("menu action failed", "choice", choice, "err", err)
			m.fail(err)
		}
	}
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(pterm.LightCyan("=== VACANCY SEARCH ==="))
	m.println("1. Search new vacancies on HH.ru")
	m.println("2. Show saved vacancies")
	m.println("3. Top N vacancies by salary")
	m.println("4. Search saved vacancies by keyword")
	m.println("5. Clear saved vacancies")
	m.println("0. Exit")
}

func (m *Menu) searchNew(ctx context.Context) error {
	keyword, err := m.promptKeyword()
	if err != nil {
		return err
	}

	opts, err := m.promptSearchOptions()
	if err != nil {
		return err
	}

	m.println(fmt.Sprintf("Searching vacancies for %q...", keyword))
	res, err := m.service.Search(ctx, keyword, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(res.Vacancies) == 0 {
		m.warn("No vacancies found")
		return nil
	}

	added, err := m.service.Persist(ctx, res.Vacancies)
	if err != nil {
		return fmt.Errorf("failed to save vacancies: %w", err)
	}

	m.success(fmt.Sprintf("Found %d vacancies, %d new saved", len(res.Vacancies), added))
	m.display(res.Vacancies[:min(previewSize, len(res.Vacancies))])
	return nil
}

func (m *Menu) promptKeyword() (string, error) {
	for {
		keyword, err := m.prompt("Enter search query: ")
		if err != nil {
			return "", err
		}
		if keyword != "" {
			return keyword, nil
		}
		m.warn("Query must not be empty! Try again.")
	}
}

func (m *Menu) promptSearchOptions() (domain.SearchOptions, error) {
	var opts domain.SearchOptions

	pages, err := m.promptInt("Max pages", intField{def: ptr(defaultPages), min: ptr(1), max: ptr(maxPages)})
	if err != nil {
		return opts, err
	}
	perPage, err := m.promptInt("Vacancies per page", intField{def: ptr(defaultPerPage), min: ptr(1), max: ptr(maxPerPage)})
	if err != nil {
		return opts, err
	}
	area, err := m.promptInt("Area ID (113 Russia, 1 Moscow, see HH API)", intField{min: ptr(1), optional: true})
	if err != nil {
		return opts, err
	}
	salaryFrom, err := m.promptInt("Minimum salary", intField{min: ptr(0), optional: true})
	if err != nil {
		return opts, err
	}
	salaryTo, err := m.promptInt("Maximum salary", intField{min: ptr(0), optional: true})
	if err != nil {
		return opts, err
	}

	opts.MaxPages = *pages
	opts.PerPage = *perPage
	opts.Area = area
	opts.SalaryFrom = salaryFrom
	opts.SalaryTo = salaryTo
	return opts, nil
}

func (m *Menu) showSaved(ctx context.Context) error {
	vacancies, err := m.service.Query(ctx, domain.Criteria{})
	if err != nil {
		return err
	}
	if len(vacancies) == 0 {
		m.warn("No saved vacancies")
		return nil
	}

	m.println(fmt.Sprintf("\nSaved vacancies: %d", len(vacancies)))
	m.display(vacancies)
	return nil
}

func (m *Menu) showTop(ctx context.Context) error {
	raw, err := m.prompt("How many vacancies to show: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		m.warn("Enter a valid number!")
		return nil
	}

	vacancies, err := m.service.Top(ctx, n, domain.Criteria{})
	if err != nil {
		return err
	}
	if len(vacancies) == 0 {
		m.warn("No saved vacancies")
		return nil
	}

	m.println(fmt.Sprintf("\nTop %d vacancies by salary:", n))
	m.display(vacancies)
	return nil
}

func (m *Menu) searchSaved(ctx context.Context) error {
	keyword, err := m.prompt("Enter keyword: ")
	if err != nil {
		return err
	}
	if keyword == "" {
		return nil
	}

	vacancies, err := m.service.Query(ctx, domain.Criteria{Keyword: keyword})
	if err != nil {
		return err
	}
	if len(vacancies) == 0 {
		m.warn(fmt.Sprintf("No vacancies with keyword %q", keyword))
		return nil
	}

	m.println(fmt.Sprintf("\nFound %d vacancies with keyword %q:", len(vacancies), keyword))
	m.display(vacancies)
	return nil
}

func (m *Menu) clear(ctx context.Context) error {
	answer, err := m.prompt("Delete all saved vacancies? (yes/no): ")
	if err != nil {
		return err
	}

	switch strings.ToLower(answer) {
	case "да", "yes", "y":
	default:
		m.println("Cancelled")
		return nil
	}

	if err := m.service.Clear(ctx); err != nil {
		return err
	}
	m.success("All vacancies deleted")
	return nil
}

func (m *Menu) display(vacancies []domain.Vacancy) {
	data := pterm.TableData{{"#", "Title", "Salary", "URL", "Description"}}
	for i, v := range vacancies {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			v.Title(),
			v.SalaryText(),
			v.URL(),
			truncate(v.Description(), descriptionMax),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		for _, v := range vacancies {
			m.println(v.String())
		}
		return
	}
	m.println(table)
}

type intField struct {
	def      *int
	min      *int
	max      *int
	optional bool
}

// promptInt asks until it gets a valid value. An empty answer yields the
// default, or nil for optional fields.
func (m *Menu) promptInt(label string, f intField) (*int, error) {
	text := label
	if f.def != nil {
		text += fmt.Sprintf(" (default: %d)", *f.def)
	}
	text += ": "

	for {
		raw, err := m.prompt(text)
		if err != nil {
			return nil, err
		}

		if raw == "" {
			switch {
			case f.def != nil:
				return ptr(*f.def), nil
			case f.optional:
				return nil, nil
			}
			m.warn("A value is required!")
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			m.warn("Enter a valid number!")
			continue
		}
		if f.min != nil && n < *f.min {
			m.warn(fmt.Sprintf("Value must be at least %d", *f.min))
			continue
		}
		if f.max != nil && n > *f.max {
			m.warn(fmt.Sprintf("Value must be at most %d", *f.max))
			continue
		}
		return &n, nil
	}
}

func (m *Menu) prompt(text string) (string, error) {
	_, _ = fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) success(s string) {
	_, _ = fmt.Fprint(m.out, pterm.Success.Sprintln(s))
}

func (m *Menu) warn(s string) {
	_, _ = fmt.Fprint(m.out, pterm.Warning.Sprintln(s))
}

func (m *Menu) fail(err error) {
	_, _ = fmt.Fprint(m.out, pterm.Error.Sprintln(err.Error()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func ptr(n int) *int {
	return &n
}
