package masterlist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Output names the files a Sheet is saved to.
type Output struct {
	CSVPath   string
	XLSXPath  string // optional
	SheetName string // worksheet name for XLSXPath
}

// Save renders every requested format in memory first and only then replaces
// the target files, each through a temp file and rename. A rendering failure
// leaves all targets untouched.
func Save(s *Sheet, out Output) error {
	var csvBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, s); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}

	var xlsxBuf bytes.Buffer
	if out.XLSXPath != "" {
		if err := WriteXLSX(&xlsxBuf, s, out.SheetName); err != nil {
			return fmt.Errorf("render xlsx: %w", err)
		}
	}

	if err := WriteFileAtomic(out.CSVPath, csvBuf.Bytes()); err != nil {
		return err
	}
	if out.XLSXPath != "" {
		if err := WriteFileAtomic(out.XLSXPath, xlsxBuf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the header and rows. A field is quoted when it holds a
// comma, a double quote or a line break; quotes inside are doubled.
func WriteCSV(w io.Writer, s *Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(s.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes s as a workbook whose header sits on FirstRow-1, so the
// Days Left formulas reference the same cells they would in the target sheet.
func WriteXLSX(w io.Writer, s *Sheet, sheetName string) error {
	f, err := RenderXLSX(s, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// RenderXLSX builds the workbook for s.
func RenderXLSX(s *Sheet, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	name := "Sheet1"
	if sheetName != "" && sheetName != name {
		if err := f.SetSheetName(name, sheetName); err != nil {
			f.Close()
			return nil, err
		}
		name = sheetName
	}

	headerRow := max(1, s.FirstRow-1)
	if err := setRow(f, name, headerRow, s.Header); err != nil {
		f.Close()
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(name, headerRow, headerRow, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range s.Rows {
		r := headerRow + 1 + i
		if err := setRow(f, name, r, row); err != nil {
			f.Close()
			return nil, err
		}
		if s.FormulaColumn < 0 || s.FormulaColumn >= len(row) || row[s.FormulaColumn] == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(s.FormulaColumn+1, r)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellFormula(name, cell, strings.TrimPrefix(row[s.FormulaColumn], "=")); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// WriteFileAtomic replaces path with data via a temp file in the same directory.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
