package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultCurrency     = "RUB"
	DefaultTitle        = "Title not specified"
	DefaultDescription  = "Description not specified"
	DefaultRequirements = "Requirements not specified"
)

// Vacancy is the normalized job posting entity. The zero value is not
// meaningful; build one with NewVacancy or by decoding a stored dictionary.
type Vacancy struct {
	title        string
	url          string
	salaryFrom   int
	salaryTo     int
	currency     string
	description  string
	requirements string
}

// VacancyParams carries unvalidated vacancy attributes.
// SalaryFrom and SalaryTo accept anything ParseSalary understands.
type VacancyParams struct {
	Title        string
	URL          string
	SalaryFrom   any
	SalaryTo     any
	Currency     string
	Description  string
	Requirements string
}

// NewVacancy normalizes params into a Vacancy
func NewVacancy(p VacancyParams) Vacancy {
	v := Vacancy{
		title:        strings.TrimSpace(p.Title),
		url:          strings.TrimSpace(p.URL),
		salaryFrom:   ParseSalary(p.SalaryFrom),
		salaryTo:     ParseSalary(p.SalaryTo),
		currency:     p.Currency,
		description:  p.Description,
		requirements: p.Requirements,
	}
	if v.title == "" {
		v.title = DefaultTitle
	}
	if v.currency == "" {
		v.currency = DefaultCurrency
	}
	if v.description == "" {
		v.description = DefaultDescription
	}
	if v.requirements == "" {
		v.requirements = DefaultRequirements
	}
	return v
}

func (v Vacancy) Title() string        { return v.title }
func (v Vacancy) URL() string          { return v.url }
func (v Vacancy) SalaryFrom() int      { return v.salaryFrom }
func (v Vacancy) SalaryTo() int        { return v.salaryTo }
func (v Vacancy) Currency() string     { return v.currency }
func (v Vacancy) Description() string  { return v.description }
func (v Vacancy) Requirements() string { return v.requirements }

// AvgSalary is the mean of both bounds, or whichever bound is set, or 0.
func (v Vacancy) AvgSalary() float64 {
	switch {
	case v.salaryFrom > 0 && v.salaryTo > 0:
		return float64(v.salaryFrom+v.salaryTo) / 2
	case v.salaryFrom > 0:
		return float64(v.salaryFrom)
	case v.salaryTo > 0:
		return float64(v.salaryTo)
	}
	return 0
}

// Less orders vacancies by average salary, ascending.
func (v Vacancy) Less(other Vacancy) bool {
	return v.AvgSalary() < other.AvgSalary()
}

// SalaryText renders the salary bounds for people.
func (v Vacancy) SalaryText() string {
	switch {
	case v.salaryFrom > 0 && v.salaryTo > 0:
		return fmt.Sprintf("%d - %d %s", v.salaryFrom, v.salaryTo, v.currency)
	case v.salaryFrom > 0:
		return fmt.Sprintf("from %d %s", v.salaryFrom, v.currency)
	case v.salaryTo > 0:
		return fmt.Sprintf("up to %d %s", v.salaryTo, v.currency)
	}
	return "not specified"
}

func (v Vacancy) String() string {
	return v.title + " | " + v.SalaryText()
}

// vacancyRecord is the persisted dictionary. Field order is the canonical key order.
type vacancyRecord struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	SalaryFrom   int    `json:"salary_from"`
	SalaryTo     int    `json:"salary_to"`
	Currency     string `json:"currency"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// looseRecord tolerates wrong types and missing keys in stored dictionaries.
type looseRecord struct {
	Title        any `json:"title"`
	URL          any `json:"url"`
	SalaryFrom   any `json:"salary_from"`
	SalaryTo     any `json:"salary_to"`
	Currency     any `json:"currency"`
	Description  any `json:"description"`
	Requirements any `json:"requirements"`
}

func (v Vacancy) MarshalJSON() ([]byte, error) {
	return json.Marshal(vacancyRecord{
		Title:        v.title,
		URL:          v.url,
		SalaryFrom:   v.salaryFrom,
		SalaryTo:     v.salaryTo,
		Currency:     v.currency,
		Description:  v.description,
		Requirements: v.requirements,
	})
}

// UnmarshalJSON rebuilds a Vacancy from a stored dictionary. Unknown keys are
// ignored and missing keys take the constructor defaults.
func (v *Vacancy) UnmarshalJSON(data []byte) error {
	var rec looseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: vacancy: %v", ErrInvalidInput, err)
	}
	*v = NewVacancy(VacancyParams{
		Title:        asString(rec.Title),
		URL:          asString(rec.URL),
		SalaryFrom:   rec.SalaryFrom,
		SalaryTo:     rec.SalaryTo,
		Currency:     asString(rec.Currency),
		Description:  asString(rec.Description),
		Requirements: asString(rec.Requirements),
	})
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// ParseSalary coerces an arbitrary salary value to a non-negative integer.
// Anything that is not a finite, non-negative number below math.MaxInt
// becomes 0.
func ParseSalary(v any) int {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxInt {
		return 0
	}
	return int(f)
}

// SearchOptions narrow a provider search. Nil pointers are not sent.
type SearchOptions struct {
	MaxPages   int
	PerPage    int
	Area       *int
	SalaryFrom *int
	SalaryTo   *int
}

// Criteria filter stored vacancies. Zero fields do not filter.
type Criteria struct {
	Keyword   string  `json:"keyword,omitempty"`
	MinSalary float64 `json:"min_salary,omitempty"`
}

// Match reports whether v satisfies every set criterion.
func (c Criteria) Match(v Vacancy) bool {
	if c.Keyword != "" {
		kw := strings.ToLower(c.Keyword)
		if !strings.Contains(strings.ToLower(v.title), kw) &&
			!strings.Contains(strings.ToLower(v.description), kw) {
			return false
		}
	}
	if v.AvgSalary() < c.MinSalary {
		return false
	}
	return true
}

// VacancySummary is the response-friendly vacancy view
type VacancySummary struct {
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	SalaryFrom   int     `json:"salary_from"`
	SalaryTo     int     `json:"salary_to"`
	Currency     string  `json:"currency"`
	AvgSalary    float64 `json:"avg_salary"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
}

// Summarize converts vacancies into their response view
func Summarize(vacancies []Vacancy) []VacancySummary {
	out := make([]VacancySummary, 0, len(vacancies))
	for _, v := range vacancies {
		out = append(out, VacancySummary{
			Title:        v.title,
			URL:          v.url,
			SalaryFrom:   v.salaryFrom,
			SalaryTo:     v.salaryTo,
			Currency:     v.currency,
			AvgSalary:    v.AvgSalary(),
			Description:  v.description,
			Requirements: v.requirements,
		})
	}
	return out
}
