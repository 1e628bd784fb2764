/*
Package masterlist turns scheduled WBS rows into the master list sheet.

LAYOUT:
  The target spreadsheet merges some header cells across several columns.
  A Layout lists the output columns in order, each followed by a number of
  empty spacer columns standing in for the merged cells. Column letters are
  therefore computed from the layout, never hard-coded:

    Checkbox | Task | · | · | Tag | WBS Group | · | Start Date | Deadline ...
       A        B     C   D    E       F        G       H           I

SEE ALSO:
  - convert.go: Row conversion and the Days Left formula
  - output.go:  CSV and XLSX rendering
*/
package masterlist

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column names understood by the converter.
const (
	ColCheckbox  = "Checkbox"
	ColTask      = "Task"
	ColTag       = "Tag"
	ColWBSGroup  = "WBS Group"
	ColStartDate = "Start Date"
	ColDeadline  = "Deadline"
	ColDaysLeft  = "Days Left"
	ColPriority  = "Priority"
	ColStatus    = "Status"
	ColPerson    = "Person In Charge"
	ColNotes     = "Notes"
)

var knownColumns = map[string]bool{
	ColCheckbox: true, ColTask: true, ColTag: true, ColWBSGroup: true,
	ColStartDate: true, ColDeadline: true, ColDaysLeft: true, ColPriority: true,
	ColStatus: true, ColPerson: true, ColNotes: true,
}

var (
	// ErrUnknownColumn is returned for a layout column the converter cannot fill.
	ErrUnknownColumn = errors.New("unknown master list column")

	// ErrMissingColumn is returned when Days Left is laid out without the
	// Deadline and Status columns its formula refers to.
	ErrMissingColumn = errors.New("missing master list column")
)

// Column is one output column followed by Spacers empty columns.
type Column struct {
	Name    string
	Spacers int
}

// Layout maps column names to 1-based sheet positions.
type Layout struct {
	columns   []Column
	positions map[string]int
	width     int
}

// NewLayout validates cols and computes their positions.
func NewLayout(cols []Column) (*Layout, error) {
	l := &Layout{columns: cols, positions: make(map[string]int, len(cols))}
	pos := 1
	for _, c := range cols {
		if !knownColumns[c.Name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c.Name)
		}
		if _, dup := l.positions[c.Name]; dup {
			return nil, fmt.Errorf("duplicate master list column %q", c.Name)
		}
		l.positions[c.Name] = pos
		pos += 1 + max(0, c.Spacers)
	}
	l.width = pos - 1

	if l.Has(ColDaysLeft) {
		for _, need := range []string{ColDeadline, ColStatus} {
			if !l.Has(need) {
				return nil, fmt.Errorf("%w: %q is required by %q", ErrMissingColumn, need, ColDaysLeft)
			}
		}
	}
	return l, nil
}

// Width is the number of sheet columns including spacers.
func (l *Layout) Width() int { return l.width }

// Has reports whether name is laid out.
func (l *Layout) Has(name string) bool {
	_, ok := l.positions[name]
	return ok
}

// Position returns the 1-based sheet column of name.
func (l *Layout) Position(name string) (int, bool) {
	p, ok := l.positions[name]
	return p, ok
}

// Letter returns the spreadsheet column letter of name.
func (l *Layout) Letter(name string) (string, bool) {
	p, ok := l.positions[name]
	if !ok {
		return "", false
	}
	letter, err := ColumnLetter(p)
	if err != nil {
		return "", false
	}
	return letter, true
}

// Header returns the header line, with blank cells for spacers.
func (l *Layout) Header() []string {
	return l.Place(func(name string) string { return name })
}

// Place builds a full-width row, asking value for each laid-out column.
func (l *Layout) Place(value func(name string) string) []string {
	row := make([]string, l.width)
	for _, c := range l.columns {
		row[l.positions[c.Name]-1] = value(c.Name)
	}
	return row
}

// ColumnLetter converts a 1-based column index to bijective base-26 letters:
// 1 → A, 26 → Z, 27 → AA, 702 → ZZ, 703 → AAA.
func ColumnLetter(n int) (string, error) {
	return excelize.ColumnNumberToName(n)
}
