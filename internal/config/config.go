package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the CLI and the MCP server
type Config struct {
	LogLevel  string
	LogFormat string // console or json
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 8080
	HH        struct {
		BaseURL    string
		Timeout    time.Duration
		MaxRetries int
		UserAgent  string
	} // HeadHunter API client settings
	Storage struct {
		Path string
	}
	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string
		Tab             string
	}
}

// SheetsEnabled reports whether both Sheets settings are present
func (c Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

// Load reads optional .env files and populates config from environment variables.
// Variables already set in the environment win over .env values. With no
// arguments a .env in the working directory is used when present.
func Load(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogLevel:  "info",
		LogFormat: "console",
		Host:      "0.0.0.0",
		Port:      "8080",
	}
	cfg.HH.BaseURL = "https://api.hh.ru"
	cfg.HH.Timeout = 10 * time.Second
	cfg.HH.MaxRetries = 3
	cfg.HH.UserAgent = "VacancyParser"
	cfg.Storage.Path = "data/vacancies.json"
	cfg.Sheets.Tab = "Vacancies"

	var invalid []string

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		switch strings.ToLower(v) {
		case "console", "json":
			cfg.LogFormat = strings.ToLower(v)
		default:
			invalid = append(invalid, fmt.Sprintf("LOG_FORMAT=%q (want console or json)", v))
		}
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err != nil || n <= 0 || n > 65535 {
			invalid = append(invalid, fmt.Sprintf("PORT=%q", v))
		} else {
			cfg.Port = v
		}
	}

	if v := os.Getenv("HH_BASE_URL"); v != "" {
		cfg.HH.BaseURL = v
	}

	if v := os.Getenv("HH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err != nil || d <= 0 {
			invalid = append(invalid, fmt.Sprintf("HH_TIMEOUT=%q", v))
		} else {
			cfg.HH.Timeout = d
		}
	}

	if v := os.Getenv("HH_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err != nil || n < 0 {
			invalid = append(invalid, fmt.Sprintf("HH_MAX_RETRIES=%q", v))
		} else {
			cfg.HH.MaxRetries = n
		}
	}

	if v := os.Getenv("HH_USER_AGENT"); v != "" {
		cfg.HH.UserAgent = v
	}

	if v := os.Getenv("STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}

	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("SHEETS_SPREADSHEET_ID")
	if v := os.Getenv("SHEETS_TAB"); v != "" {
		cfg.Sheets.Tab = v
	}

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// loadEnvFiles applies explicit files strictly; the implicit .env may be absent.
func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("config: load env files %v: %w", envFiles, err)
	}
	return nil
}
