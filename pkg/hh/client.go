package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL    = "https://api.hh.ru"
	vacanciesEndpoint = "/vacancies"
	defaultUserAgent  = "VacancyParser"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3

	// DefaultMaxPages is used when the caller does not ask for a page count.
	DefaultMaxPages = 2
	// MaxPages is the deepest page HeadHunter serves for one query.
	MaxPages = 20
	// MaxPerPage is the largest page size HeadHunter accepts.
	MaxPerPage = 100
)

// NewClient instantiates a HeadHunter API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("hh: parse base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}

	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient.Timeout = timeout
	httpClient.RetryMax = maxRetries
	httpClient.CheckRetry = retryPolicy
	httpClient.Backoff = retryablehttp.DefaultBackoff
	if cfg.RetryWaitMin > 0 {
		httpClient.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		httpClient.RetryWaitMax = cfg.RetryWaitMax
	}

	var logger Logger = nopLogger{}
	httpClient.Logger = nil
	if cfg.Logger != nil {
		logger = cfg.Logger
		httpClient.Logger = cfg.Logger
	}

	return &Client{
		http:      httpClient,
		url:       baseURL + vacanciesEndpoint,
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// Connect probes the vacancies endpoint with a minimal request
func (c *Client) Connect(ctx context.Context) error {
	resp, err := c.get(ctx, url.Values{"per_page": {"1"}})
	if err != nil {
		c.logger.Error("failed to connect to HeadHunter API", "err", err)
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	drain(resp)

	c.logger.Info("connected to HeadHunter API")
	return nil
}

// LoadVacancies pages through search results for keyword and returns the raw
// listing objects. Paging stops at the first empty page or at the last page
// reported by the API. A failed page discards everything collected so far.
func (c *Client) LoadVacancies(ctx context.Context, keyword string, params SearchParams) ([]RawItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrInvalidKeyword
	}

	maxPages := params.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxPages = min(maxPages, MaxPages)

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = MaxPerPage
	}
	perPage = min(perPage, MaxPerPage)

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	values := searchValues(keyword, perPage, params)
	vacancies := make([]RawItem, 0)

	for page := 0; page < maxPages; page++ {
		values.Set("page", strconv.Itoa(page))
		c.logger.Info("loading vacancies page", "page", page+1, "max_pages", maxPages)

		data, err := c.fetchPage(ctx, values)
		if err != nil {
			c.logger.Error("failed to load vacancies page", "page", page, "err", err)
			return nil, fmt.Errorf("%w: page %d: %w", ErrParser, page, err)
		}

		if len(data.Items) == 0 {
			c.logger.Info("no more vacancies found", "page", page)
			break
		}
		vacancies = append(vacancies, data.Items...)

		if page >= data.Pages-1 {
			break
		}
	}

	c.logger.Info("vacancies loaded", "keyword", keyword, "count", len(vacancies))
	return vacancies, nil
}

// Close releases pooled connections held by the client
func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	c.http.HTTPClient.CloseIdleConnections()
	return nil
}

func searchValues(keyword string, perPage int, params SearchParams) url.Values {
	values := url.Values{}
	values.Set("text", keyword)
	values.Set("per_page", strconv.Itoa(perPage))
	values.Set("page", "0")

	if params.Area != nil {
		values.Set("area", strconv.Itoa(*params.Area))
	}

	switch from, to := params.SalaryFrom, params.SalaryTo; {
	case from != nil && to != nil:
		values.Set("salary", fmt.Sprintf("%d-%d", *from, *to))
	case from != nil:
		values.Set("salary", strconv.Itoa(*from))
	case to != nil:
		values.Set("salary", strconv.Itoa(*to))
	}
	if params.SalaryFrom != nil || params.SalaryTo != nil {
		values.Set("only_with_salary", "true")
	}

	return values
}

func (c *Client) fetchPage(ctx context.Context, values url.Values) (vacancyPage, error) {
	resp, err := c.get(ctx, values)
	if err != nil {
		return vacancyPage{}, err
	}
	defer drain(resp)

	var page vacancyPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return vacancyPage{}, fmt.Errorf("decode response: %w", err)
	}
	return page, nil
}

// get issues one GET through the retrying transport. Error statuses that
// survive the retry policy are returned as errors.
func (c *Client) get(ctx context.Context, values url.Values) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		drain(resp)
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp, nil
}

// retryPolicy retries transport errors and the transient statuses 429, 500,
// 502, 503 and 504.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
