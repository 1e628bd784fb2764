package schedule

// =============================================================================
// DATE RANGE - The unit handed to every scheduled row
// =============================================================================

// DateRange is an inclusive span of calendar days [Start, End].
type DateRange struct {
	Start Date
	End   Date
}

// Contains returns true if d is within [Start, End].
func (r DateRange) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Days returns the number of days covered, inclusive of both ends.
func (r DateRange) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Validate checks End is not before Start.
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Next returns the range of n days starting the day after r ends.
func (r DateRange) Next(n int) DateRange {
	start := r.End.AddDays(1)
	return DateRange{Start: start, End: start.AddDays(n - 1)}
}

// String returns a string representation of the range.
func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}
