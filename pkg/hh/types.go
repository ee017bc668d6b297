package hh

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrInvalidKeyword is returned for an empty or whitespace-only keyword.
	ErrInvalidKeyword = errors.New("hh: keyword must not be empty")

	// ErrConnection is returned when the connectivity probe fails.
	ErrConnection = errors.New("hh: connection failed")

	// ErrParser is returned when a page request fails after the probe succeeded.
	ErrParser = errors.New("hh: failed to load vacancies")
)

// Logger is the leveled logger the client and its retrying transport report to.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config defines HeadHunter API client settings
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int

	// RetryWaitMin and RetryWaitMax bound the exponential backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	Logger Logger
}

// Client queries the HeadHunter vacancy search API
type Client struct {
	http      *retryablehttp.Client
	url       string
	userAgent string
	logger    Logger
}

// SearchParams describe a vacancy search request. Nil filters are omitted
// from the request.
type SearchParams struct {
	MaxPages   int
	PerPage    int
	Area       *int
	SalaryFrom *int
	SalaryTo   *int
}

// RawItem is one undecoded listing object from the items array.
type RawItem = json.RawMessage

type vacancyPage struct {
	Items []RawItem `json:"items"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
	Found int       `json:"found"`
}
