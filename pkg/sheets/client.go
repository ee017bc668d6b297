package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte

	// Endpoint overrides the API base URL. Without credentials the client
	// then talks to it unauthenticated.
	Endpoint string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case cfg.Endpoint != "":
		opts = append(opts, option.WithoutAuthentication())
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// AppendValues writes rows after the last non-empty row of a1Range
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, a1Range, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", a1Range, err)
	}
	return nil
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, a1Range string) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, a1Range, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear %s: %w", a1Range, err)
	}
	return nil
}
