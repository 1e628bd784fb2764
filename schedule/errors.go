package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a schedule boundary is not a calendar date.
	ErrInvalidDate = errors.New("invalid schedule date")

	// ErrInvalidRange is returned by DateRange.Validate when End precedes Start.
	ErrInvalidRange = errors.New("invalid range: end before start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError reports which boundary failed to parse.
type InvalidDateError struct {
	Field string // "start_date" or "end_date"
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD", e.Field, e.Value)
}

func (e *InvalidDateError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}
