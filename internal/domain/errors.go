package domain

import "errors"

var (
	// ErrInvalidInput marks a caller argument that violates a precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailure means the provider could not be reached at all.
	ErrConnectionFailure = errors.New("provider connection failed")

	// ErrParserFailure means fetching broke after connectivity was confirmed.
	ErrParserFailure = errors.New("provider fetch failed")

	// ErrStorage wraps failures to write the vacancy store.
	ErrStorage = errors.New("storage failure")

	// ErrNotImplemented is returned by capabilities that are reserved but not built yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrExportDisabled is returned when no export target is configured.
	ErrExportDisabled = errors.New("export disabled")
)
