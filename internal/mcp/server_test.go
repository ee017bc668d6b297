package mcp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-search/internal/config"
	"github.com/honeycarbs/vacancy-search/internal/domain"
	"github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

type emptyService struct{}

func (emptyService) Search(context.Context, string, domain.SearchOptions) (vacancy.SearchResult, error) {
	return vacancy.SearchResult{}, nil
}
func (emptyService) Persist(context.Context, []domain.Vacancy) (int, error) { return 0, nil }
func (emptyService) Query(context.Context, domain.Criteria) ([]domain.Vacancy, error) {
	return []domain.Vacancy{domain.NewVacancy(domain.VacancyParams{Title: "Go Developer"})}, nil
}
func (emptyService) Top(context.Context, int, domain.Criteria) ([]domain.Vacancy, error) {
	return nil, nil
}
func (emptyService) Clear(context.Context) error { return nil }
func (emptyService) Export(context.Context, domain.Criteria) (int, error) {
	return 0, domain.ErrExportDisabled
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{Host: "127.0.0.1", Port: "0"}
	srv := NewServer(logging.NewNop(), cfg, emptyService{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestStreamableHTTP(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp/stream"}, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 5)

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "vacancy_query", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)

	require.NotEmpty(t, res.Content)
	txt, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, txt.Text, "Go Developer")
}

func TestRunOnlyOnce(t *testing.T) {
	srv := NewServer(logging.NewNop(), config.Config{Host: "127.0.0.1", Port: "0"}, emptyService{})
	srv.started.Store(true)
	require.NoError(t, srv.Run())
}
