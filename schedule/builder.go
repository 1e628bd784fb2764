/*
builder.go - Lays WBS groups out on a calendar

PURPOSE:
  Turns an ordered list of WBS rows into a schedule: each top-level group
  gets one contiguous date range, sized by the allocator in proportion to
  how many rows the group has. Every row of the group shares that range.

LAYOUT:
  Groups are placed in the order they first appear in the input. The first
  group starts on the start date; each following group starts the day after
  the previous one ends. With the allocator's sum invariant the last group
  ends exactly on the end date:

    start ──[ group A ]──[ group B ]──[ group C ]── end

DUPLICATE ROWS:
  Rows with identical group/feature/sub-feature text share one Key. They
  always belong to the same group, so they resolve to the same range; the
  Schedule only counts them (Duplicates) so callers can report it.

SEE ALSO:
  - allocator.go: Day budget split
  - masterlist/convert.go: Consumes Schedule.Lookup per output row
*/
package schedule

import (
	"github.com/warp/masterlist/wbs"
)

// =============================================================================
// GROUPS
// =============================================================================

// Group is a top-level WBS group and its rows in input order.
type Group struct {
	Name string
	Rows []wbs.Row
}

// GroupRows partitions rows by normalized group name, preserving first-seen
// group order and the input order of rows within each group.
func GroupRows(rows []wbs.Row) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, row := range rows {
		name := row.GroupName()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// =============================================================================
// SCHEDULE
// =============================================================================

// GroupPlan is a group placed on the calendar.
type GroupPlan struct {
	Group
	Range DateRange
}

// Schedule maps every row Key to its group's date range.
// It is read-only once built.
type Schedule struct {
	Start      Date
	End        Date
	TotalDays  int
	Allocation *Allocation
	Groups     []GroupPlan

	// Duplicates counts rows whose Key was already scheduled.
	Duplicates int

	entries map[wbs.Key]DateRange
}

// Lookup returns the range scheduled for row.
func (s *Schedule) Lookup(row wbs.Row) (DateRange, bool) {
	if s == nil {
		return DateRange{}, false
	}
	r, ok := s.entries[row.Key()]
	return r, ok
}

// Get returns the range scheduled for key.
func (s *Schedule) Get(key wbs.Key) (DateRange, bool) {
	if s == nil {
		return DateRange{}, false
	}
	r, ok := s.entries[key]
	return r, ok
}

// Len returns the number of distinct scheduled keys.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Span returns the range covered by all groups.
func (s *Schedule) Span() (DateRange, bool) {
	if s == nil || len(s.Groups) == 0 {
		return DateRange{}, false
	}
	return DateRange{Start: s.Groups[0].Range.Start, End: s.Groups[len(s.Groups)-1].Range.End}, true
}

// =============================================================================
// BUILD
// =============================================================================

// Build parses the boundaries and schedules rows between them.
// Empty rows yield an empty schedule without inspecting the dates; otherwise an
// unparseable boundary returns an *InvalidDateError.
func Build(rows []wbs.Row, startDate, endDate string, minGroupDays int) (*Schedule, error) {
	if len(rows) == 0 {
		return &Schedule{entries: map[wbs.Key]DateRange{}}, nil
	}
	start, end, err := ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return BuildRange(rows, start, end, minGroupDays), nil
}

// BuildRange schedules rows across [start, end].
func BuildRange(rows []wbs.Row, start, end Date, minGroupDays int) *Schedule {
	s := &Schedule{entries: map[wbs.Key]DateRange{}}
	if len(rows) == 0 {
		return s
	}

	s.Start = start
	s.End = end
	s.TotalDays = InclusiveDays(start, end)

	groups := GroupRows(rows)
	items := make([]AllocationItem, len(groups))
	for i, g := range groups {
		items[i] = AllocationItem{ID: g.Name, Weight: len(g.Rows)}
	}

	s.Allocation = AllocateDetailed(items, s.TotalDays, minGroupDays)

	cursor := start
	s.Groups = make([]GroupPlan, 0, len(groups))
	for _, g := range groups {
		duration, ok := s.Allocation.Durations[g.Name]
		if !ok || duration < 1 {
			duration = max(1, minGroupDays)
		}
		r := DateRange{Start: cursor, End: cursor.AddDays(duration - 1)}

		for _, row := range g.Rows {
			key := row.Key()
			if _, seen := s.entries[key]; seen {
				s.Duplicates++
			}
			s.entries[key] = r
		}

		s.Groups = append(s.Groups, GroupPlan{Group: g, Range: r})
		cursor = r.End.AddDays(1)
	}
	return s
}
