package hh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/pkg/hh"
)

type fakeClient struct {
	items      []hh.RawItem
	err        error
	connectErr error
	gotKeyword string
	gotParams  hh.SearchParams
}

func (f *fakeClient) Connect(context.Context) error {
	return f.connectErr
}

func (f *fakeClient) LoadVacancies(_ context.Context, keyword string, params hh.SearchParams) ([]hh.RawItem, error) {
	f.gotKeyword = keyword
	f.gotParams = params
	return f.items, f.err
}

func TestNewProvider_RequiresClient(t *testing.T) {
	_, err := NewProvider(nil)
	require.Error(t, err)
}

func TestProvider_SearchMapsItems(t *testing.T) {
	area, from := 1, 90000
	client := &fakeClient{items: []hh.RawItem{
		hh.RawItem(`{"name":"Go Developer","alternate_url":"https://hh.ru/vacancy/1","salary":{"from":90000,"to":null,"currency":"RUR"}}`),
		hh.RawItem(`{"name":"Backend Engineer"}`),
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	got, err := p.Search(context.Background(), "golang", domain.SearchOptions{
		MaxPages:   3,
		PerPage:    50,
		Area:       &area,
		SalaryFrom: &from,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Go Developer", got[0].Title())
	assert.Equal(t, 90000, got[0].SalaryFrom())
	assert.Equal(t, "RUR", got[0].Currency())
	assert.Equal(t, "Backend Engineer", got[1].Title())
	assert.Equal(t, domain.DefaultCurrency, got[1].Currency())

	assert.Equal(t, "golang", client.gotKeyword)
	assert.Equal(t, 3, client.gotParams.MaxPages)
	assert.Equal(t, 50, client.gotParams.PerPage)
	assert.Equal(t, &area, client.gotParams.Area)
	assert.Equal(t, &from, client.gotParams.SalaryFrom)
	assert.Nil(t, client.gotParams.SalaryTo)
}

func TestProvider_EmptyResult(t *testing.T) {
	p, err := NewProvider(&fakeClient{items: []hh.RawItem{}})
	require.NoError(t, err)

	got, err := p.Search(context.Background(), "cobol", domain.SearchOptions{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProvider_TranslatesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "keyword", err: hh.ErrInvalidKeyword, want: domain.ErrInvalidInput},
		{name: "connection", err: hh.ErrConnection, want: domain.ErrConnectionFailure},
		{name: "parser", err: hh.ErrParser, want: domain.ErrParserFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(&fakeClient{err: tt.err})
			require.NoError(t, err)

			_, err = p.Search(context.Background(), "golang", domain.SearchOptions{})
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProvider_UnknownErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	p, err := NewProvider(&fakeClient{err: boom})
	require.NoError(t, err)

	_, err = p.Search(context.Background(), "golang", domain.SearchOptions{})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrParserFailure)
}

func TestProvider_MistypedSalaryKeepsBatch(t *testing.T) {
	client := &fakeClient{items: []hh.RawItem{
		hh.RawItem(`{"name":"Go Developer","salary":"negotiable"}`),
		hh.RawItem(`{"name":"Backend Engineer","snippet":[]}`),
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	got, err := p.Search(context.Background(), "golang", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Zero(t, got[0].AvgSalary())
	assert.Equal(t, domain.DefaultDescription, got[1].Description())
}

func TestProvider_NonObjectItem(t *testing.T) {
	p, err := NewProvider(&fakeClient{items: []hh.RawItem{hh.RawItem(`"oops"`)}})
	require.NoError(t, err)

	_, err = p.Search(context.Background(), "golang", domain.SearchOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProvider_Connect(t *testing.T) {
	p, err := NewProvider(&fakeClient{connectErr: hh.ErrConnection})
	require.NoError(t, err)

	require.ErrorIs(t, p.Connect(context.Background()), domain.ErrConnectionFailure)
	assert.Equal(t, "hh", p.Name())
}
