package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Dataset errors
	ErrEmptyTable    = errors.New("launch table has no records")
	ErrInvalidRecord = errors.New("invalid launch record")
	ErrMissingColumn = errors.New("required column missing")

	// Control errors
	ErrUnknownSite    = errors.New("unknown launch site")
	ErrInvalidRange   = errors.New("invalid payload range")
	ErrUnknownControl = errors.New("unknown control")
	ErrUnknownOutput  = errors.New("unknown output")
)

// Error constructors with context
func NewInvalidRecordError(row int, column string, reason string) error {
	return fmt.Errorf("%w: row %d, column %q: %s", ErrInvalidRecord, row, column, reason)
}

func NewMissingColumnsError(missing []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
}

func NewUnknownSiteError(site string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSite, site)
}

func NewInvalidRangeError(low, high float64) error {
	return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, low, high)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownSite) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownControl) ||
		errors.Is(err, ErrUnknownOutput)
}

func IsDatasetError(err error) bool {
	return errors.Is(err, ErrEmptyTable) ||
		errors.Is(err, ErrInvalidRecord) ||
		errors.Is(err, ErrMissingColumn)
}
