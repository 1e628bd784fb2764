package masterlist

import (
	"fmt"
	"strings"

	"github.com/warp/masterlist/classify"
	"github.com/warp/masterlist/schedule"
	"github.com/warp/masterlist/wbs"
)

// Defaults are the constant cell values of every row.
type Defaults struct {
	Tag      string
	Status   string
	Priority string
	Person   string // used when no team rule matches
	Notes    string // used when no note rule matches
}

// Options configure a Converter.
type Options struct {
	Defaults Defaults
	// HeaderRow is the sheet row of the header; data row i sits on HeaderRow+1+i
	HeaderRow int
	// DoneStatus blanks the Days Left formula once a task reaches it
	DoneStatus string
	// DateLayout formats scheduled dates; defaults to M/D/YYYY
	DateLayout string
}

// Sheet is the rendered master list.
type Sheet struct {
	Header []string
	Rows   [][]string

	// FirstRow is the sheet row of Rows[0]; the header sits just above it
	FirstRow int
	// FormulaColumn is the 0-based index of the formula cell, -1 if none
	FormulaColumn int
}

// Converter renders WBS rows into master list rows.
type Converter struct {
	Layout     *Layout
	Classifier *classify.Classifier // nil falls back to Defaults
	Options    Options
}

// NewConverter returns a converter for the given layout and rules.
func NewConverter(layout *Layout, classifier *classify.Classifier, opts Options) *Converter {
	if opts.DateLayout == "" {
		opts.DateLayout = schedule.SheetLayout
	}
	if opts.HeaderRow < 1 {
		opts.HeaderRow = 1
	}
	return &Converter{Layout: layout, Classifier: classifier, Options: opts}
}

// Convert renders rows in input order. sched may be nil, leaving dates blank.
func (c *Converter) Convert(rows []wbs.Row, sched *schedule.Schedule) *Sheet {
	sheet := &Sheet{
		Header:        c.Layout.Header(),
		Rows:          make([][]string, 0, len(rows)),
		FirstRow:      c.Options.HeaderRow + 1,
		FormulaColumn: -1,
	}
	if p, ok := c.Layout.Position(ColDaysLeft); ok {
		sheet.FormulaColumn = p - 1
	}

	for i, row := range rows {
		sheet.Rows = append(sheet.Rows, c.convertRow(row, sheet.FirstRow+i, sched))
	}
	return sheet
}

func (c *Converter) convertRow(row wbs.Row, sheetRow int, sched *schedule.Schedule) []string {
	d := c.Options.Defaults

	var start, deadline string
	if r, ok := sched.Lookup(row); ok {
		start = r.Start.Format(c.Options.DateLayout)
		deadline = r.End.Format(c.Options.DateLayout)
	}

	return c.Layout.Place(func(name string) string {
		switch name {
		case ColCheckbox:
			return "FALSE"
		case ColTask:
			return row.Task()
		case ColTag:
			return d.Tag
		case ColWBSGroup:
			return row.Path()
		case ColStartDate:
			return start
		case ColDeadline:
			return deadline
		case ColDaysLeft:
			return c.DaysLeftFormula(sheetRow)
		case ColPriority:
			return d.Priority
		case ColStatus:
			return d.Status
		case ColPerson:
			if c.Classifier == nil {
				return d.Person
			}
			return c.Classifier.Team(row, d.Person)
		case ColNotes:
			if c.Classifier == nil {
				return d.Notes
			}
			return c.Classifier.Note(row, d.Notes)
		}
		return ""
	})
}

// DaysLeftFormula returns the Days Left cell for a sheet row. It is written
// verbatim; only the spreadsheet evaluates it.
func (c *Converter) DaysLeftFormula(sheetRow int) string {
	deadline, ok := c.Layout.Letter(ColDeadline)
	if !ok {
		return ""
	}
	status, ok := c.Layout.Letter(ColStatus)
	if !ok {
		return ""
	}
	return fmt.Sprintf(`=IF(OR(%[1]s%[3]d="",%[2]s%[3]d="%[4]s"),"",%[1]s%[3]d-TODAY())`,
		deadline, status, sheetRow, strings.ReplaceAll(c.Options.DoneStatus, `"`, `""`))
}
