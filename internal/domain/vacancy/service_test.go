package vacancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-search/internal/domain"
)

type fakeProvider struct {
	vacancies  []domain.Vacancy
	err        error
	gotKeyword string
	gotOpts    domain.SearchOptions
	calls      int
}

func (f *fakeProvider) Name() string                  { return "fake" }
func (f *fakeProvider) Connect(context.Context) error { return nil }

func (f *fakeProvider) Search(_ context.Context, keyword string, opts domain.SearchOptions) ([]domain.Vacancy, error) {
	f.calls++
	f.gotKeyword = keyword
	f.gotOpts = opts
	return f.vacancies, f.err
}

type fakeRepo struct {
	stored  []domain.Vacancy
	addErr  error
	cleared bool
}

func (f *fakeRepo) Add(_ context.Context, vacancies []domain.Vacancy) (int, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.stored = append(f.stored, vacancies...)
	return len(vacancies), nil
}

func (f *fakeRepo) Query(_ context.Context, c domain.Criteria) ([]domain.Vacancy, error) {
	out := []domain.Vacancy{}
	for _, v := range f.stored {
		if c.Match(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(context.Context, domain.Criteria) error { return domain.ErrNotImplemented }

func (f *fakeRepo) Clear(context.Context) error {
	f.cleared = true
	f.stored = nil
	return nil
}

type fakeExporter struct {
	got []domain.Vacancy
}

func (f *fakeExporter) Export(_ context.Context, vacancies []domain.Vacancy) (int, error) {
	f.got = vacancies
	return len(vacancies), nil
}

func vac(title string, from, to int) domain.Vacancy {
	return domain.NewVacancy(domain.VacancyParams{Title: title, SalaryFrom: from, SalaryTo: to})
}

func newTestService(t *testing.T, p Provider, r Repository, opts ...Option) Service {
	t.Helper()
	svc, err := NewService(append([]Option{WithProvider(p), WithRepository(r)}, opts...)...)
	require.NoError(t, err)
	return svc
}

func TestNewService_RequiresDeps(t *testing.T) {
	_, err := NewService(WithProvider(&fakeProvider{}))
	require.Error(t, err)

	_, err = NewService(WithRepository(&fakeRepo{}))
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeProvider{vacancies: []domain.Vacancy{vac("Go", 1, 2)}}
	repo := &fakeRepo{}
	svc := newTestService(t, provider, repo, WithClock(func() time.Time { return now }))

	res, err := svc.Search(context.Background(), "  golang ", domain.SearchOptions{MaxPages: 3})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "fake", res.Source)
	assert.Equal(t, now, res.FetchedAt)
	assert.Len(t, res.Vacancies, 1)
	assert.Equal(t, "golang", provider.gotKeyword)
	assert.Equal(t, 3, provider.gotOpts.MaxPages)
	assert.Empty(t, repo.stored, "search must not persist")
}

func TestSearch_EmptyKeyword(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider, &fakeRepo{})

	_, err := svc.Search(context.Background(), " ", domain.SearchOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, provider.calls)
}

func TestSearch_ProviderError(t *testing.T) {
	svc := newTestService(t, &fakeProvider{err: domain.ErrConnectionFailure}, &fakeRepo{})

	_, err := svc.Search(context.Background(), "go", domain.SearchOptions{})
	require.ErrorIs(t, err, domain.ErrConnectionFailure)
}

func TestPersist(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, &fakeProvider{}, repo)

	added, err := svc.Persist(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, added)

	added, err = svc.Persist(context.Background(), []domain.Vacancy{vac("a", 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	repo.addErr = domain.ErrStorage
	_, err = svc.Persist(context.Background(), []domain.Vacancy{vac("b", 0, 0)})
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestTop(t *testing.T) {
	repo := &fakeRepo{stored: []domain.Vacancy{
		vac("low", 10, 0),
		vac("high", 100, 200),
		vac("none", 0, 0),
		vac("mid-a", 50, 0),
		vac("mid-b", 0, 50),
	}}
	svc := newTestService(t, &fakeProvider{}, repo)

	got, err := svc.Top(context.Background(), 3, domain.Criteria{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].Title())
	assert.Equal(t, "mid-a", got[1].Title(), "ties keep storage order")
	assert.Equal(t, "mid-b", got[2].Title())

	got, err = svc.Top(context.Background(), 100, domain.Criteria{})
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, "none", got[4].Title())

	got, err = svc.Top(context.Background(), 0, domain.Criteria{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.Top(context.Background(), 5, domain.Criteria{MinSalary: 40})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestClear(t *testing.T) {
	repo := &fakeRepo{stored: []domain.Vacancy{vac("a", 0, 0)}}
	svc := newTestService(t, &fakeProvider{}, repo)

	require.NoError(t, svc.Clear(context.Background()))
	assert.True(t, repo.cleared)
}

func TestExport(t *testing.T) {
	repo := &fakeRepo{stored: []domain.Vacancy{vac("go dev", 1, 0), vac("java dev", 1, 0)}}
	exporter := &fakeExporter{}
	svc := newTestService(t, &fakeProvider{}, repo, WithExporter(exporter))

	n, err := svc.Export(context.Background(), domain.Criteria{Keyword: "go"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, exporter.got, 1)
	assert.Equal(t, "go dev", exporter.got[0].Title())
}

func TestExport_Disabled(t *testing.T) {
	svc := newTestService(t, &fakeProvider{}, &fakeRepo{})

	_, err := svc.Export(context.Background(), domain.Criteria{})
	require.True(t, errors.Is(err, domain.ErrExportDisabled))
}
