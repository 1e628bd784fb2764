package wbs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyInput is returned when the input has no header line.
var ErrEmptyInput = errors.New("wbs: input has no header line")

// minFields is the fewest fields a record needs to count as a WBS row.
const minFields = 2

// Table is a parsed WBS export.
type Table struct {
	Header  []string
	Rows    []Row
	Skipped int // records dropped for having fewer than two fields
}

// ReadFile parses the WBS export at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wbs input: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Read parses a WBS export: a header line followed by records whose first three
// fields are group, feature and sub-feature. Double quotes protect separators
// and newlines; a doubled quote inside a quoted field is one literal quote.
// Fields are trimmed and blank lines are ignored.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	header = trimAll(header)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse record %d: %w", len(t.Rows)+t.Skipped+1, err)
		}
		rec = trimAll(rec)
		if len(rec) < minFields {
			t.Skipped++
			continue
		}
		t.Rows = append(t.Rows, Row{
			Group:      field(rec, 0),
			Feature:    field(rec, 1),
			SubFeature: field(rec, 2),
			Index:      len(t.Rows),
		})
	}
	return t, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
