package hh

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/pkg/hh"
)

type listing struct {
	Name         any `json:"name"`
	AlternateURL any `json:"alternate_url"`
	Salary       any `json:"salary"`
	Snippet      any `json:"snippet"`
}

// FromRaw maps one HeadHunter listing object onto a Vacancy. A salary or
// snippet that is missing, null or not an object leaves its fields at the
// defaults.
func FromRaw(raw hh.RawItem) (domain.Vacancy, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Vacancy{}, fmt.Errorf("%w: vacancy item must be a JSON object", domain.ErrInvalidInput)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var l listing
	if err := dec.Decode(&l); err != nil {
		return domain.Vacancy{}, fmt.Errorf("%w: decode vacancy item: %v", domain.ErrInvalidInput, err)
	}

	params := domain.VacancyParams{
		Title: text(l.Name),
		URL:   text(l.AlternateURL),
	}
	if salary, ok := l.Salary.(map[string]any); ok {
		params.SalaryFrom = salary["from"]
		params.SalaryTo = salary["to"]
		params.Currency = text(salary["currency"])
	}
	if snippet, ok := l.Snippet.(map[string]any); ok {
		params.Description = text(snippet["responsibility"])
		params.Requirements = text(snippet["requirement"])
	}

	return domain.NewVacancy(params), nil
}

func text(v any) string {
	s, _ := v.(string)
	return s
}
