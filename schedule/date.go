package schedule

import (
	"strings"
	"time"
)

// =============================================================================
// DATE - Calendar day (this IS a calendar scheduling system)
// =============================================================================

// DateLayout is the accepted format for schedule boundaries.
const DateLayout = "2006-01-02"

// SheetLayout is the M/D/YYYY format written into the master list.
const SheetLayout = "1/2/2006"

// Date is a calendar day. It is always held at UTC midnight so day arithmetic
// never sees DST shifts.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD boundary. field names the value in the error.
func ParseDate(field, value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, &InvalidDateError{Field: field, Value: value, Err: err}
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// ParseRange parses both schedule boundaries.
func ParseRange(start, end string) (Date, Date, error) {
	s, err := ParseDate("start_date", start)
	if err != nil {
		return Date{}, Date{}, err
	}
	e, err := ParseDate("end_date", end)
	if err != nil {
		return Date{}, Date{}, err
	}
	return s, e, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) Time() time.Time   { return d.t }
func (d Date) String() string    { return d.t.Format(DateLayout) }

// Format renders the date with a time package layout, e.g. SheetLayout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// DaysBetween returns to − from in whole days. Rounding absorbs any sub-day
// drift so the result is exact for calendar dates.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Round(24*time.Hour) / (24 * time.Hour))
}

// InclusiveDays is the number of calendar days in [from, to], never less than 1.
func InclusiveDays(from, to Date) int {
	return max(1, DaysBetween(from, to)+1)
}
