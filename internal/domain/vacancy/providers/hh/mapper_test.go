package hh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/pkg/hh"
)

func TestFromRaw_FullListing(t *testing.T) {
	raw := hh.RawItem(`{
		"id": "93353083",
		"name": "  Senior Go Developer ",
		"alternate_url": "https://hh.ru/vacancy/93353083",
		"salary": {"from": 250000, "to": 350000.0, "currency": "RUR", "gross": true},
		"snippet": {"responsibility": "Build services", "requirement": "Go, PostgreSQL"}
	}`)

	v, err := FromRaw(raw)
	require.NoError(t, err)

	assert.Equal(t, "Senior Go Developer", v.Title())
	assert.Equal(t, "https://hh.ru/vacancy/93353083", v.URL())
	assert.Equal(t, 250000, v.SalaryFrom())
	assert.Equal(t, 350000, v.SalaryTo())
	assert.Equal(t, "RUR", v.Currency())
	assert.Equal(t, "Build services", v.Description())
	assert.Equal(t, "Go, PostgreSQL", v.Requirements())
	assert.InDelta(t, 300000, v.AvgSalary(), 0.001)
}

func TestFromRaw_MissingAndNullParts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "null salary and snippet", raw: `{"salary": null, "snippet": null}`},
		{name: "null fields", raw: `{"name": null, "alternate_url": null, "salary": {"from": null, "to": null, "currency": null}, "snippet": {"responsibility": null, "requirement": null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromRaw(hh.RawItem(tt.raw))
			require.NoError(t, err)

			assert.Equal(t, domain.DefaultTitle, v.Title())
			assert.Empty(t, v.URL())
			assert.Zero(t, v.SalaryFrom())
			assert.Zero(t, v.SalaryTo())
			assert.Equal(t, domain.DefaultCurrency, v.Currency())
			assert.Equal(t, domain.DefaultDescription, v.Description())
			assert.Equal(t, domain.DefaultRequirements, v.Requirements())
		})
	}
}

func TestFromRaw_NonObjectSalaryAndSnippet(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "string salary", raw: `{"name": "Go", "salary": "negotiable"}`},
		{name: "array snippet", raw: `{"name": "Go", "snippet": []}`},
		{name: "both mistyped", raw: `{"name": "Go", "salary": 150000, "snippet": "Build services"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromRaw(hh.RawItem(tt.raw))
			require.NoError(t, err)

			assert.Equal(t, "Go", v.Title())
			assert.Zero(t, v.SalaryFrom())
			assert.Zero(t, v.SalaryTo())
			assert.Equal(t, domain.DefaultCurrency, v.Currency())
			assert.Equal(t, domain.DefaultDescription, v.Description())
			assert.Equal(t, domain.DefaultRequirements, v.Requirements())
		})
	}
}

func TestFromRaw_SalaryCoercion(t *testing.T) {
	v, err := FromRaw(hh.RawItem(`{"name":"x","salary":{"from":"100000","to":"invalid"}}`))
	require.NoError(t, err)
	assert.Equal(t, 100000, v.SalaryFrom())
	assert.Zero(t, v.SalaryTo())
}

func TestFromRaw_NonObject(t *testing.T) {
	for _, raw := range []string{``, `null`, `[]`, `"text"`, `42`} {
		_, err := FromRaw(hh.RawItem(raw))
		require.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", raw)
	}
}
