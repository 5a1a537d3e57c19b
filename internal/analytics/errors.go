package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD or RFC3339")
	ErrMissingDateRange   = errors.New("start date and end date are required")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrUnknownGrouping    = errors.New("unknown grouping, expected region, product, period or raw")
	ErrNoDataInRange      = errors.New("no sales data found for the given date range")
	ErrStorageUnavailable = errors.New("sales storage unavailable")
)

// ValidationError reports a malformed or missing query parameter.
// Callers surface it as a client error and never retry it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a ValidationError anywhere in its chain
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
