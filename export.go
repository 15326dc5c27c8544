package cornstats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a small fixed-schema result table: a name, column headers and
// rows. Tables are created once per run and serialized as-is.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

func (t *Table) AddRow(vals ...any) {
	if len(vals) != len(t.Columns) {
		panic(fmt.Errorf("table %s: row has %d values, want %d", t.Name, len(vals), len(t.Columns)))
	}

	t.Rows = append(t.Rows, vals)
}

// WriteCSV serializes the table at path, overwriting any existing file.
// Content is assembled in memory first so a failure leaves no partial file.
func (t *Table) WriteCSV(path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if e := w.Write(t.Columns); e != nil {
		return e
	}

	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for ind, v := range row {
			rec[ind] = formatValue(v)
		}
		if e := w.Write(rec); e != nil {
			return e
		}
	}

	w.Flush()
	if e := w.Error(); e != nil {
		return e
	}

	return writeWhole(path, buf.Bytes(), StageExport)
}

// String renders the table for the console.
func (t *Table) String() string {
	widths := make([]int, len(t.Columns))
	for ind, c := range t.Columns {
		widths[ind] = len(c)
	}

	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(row))
		for ind, v := range row {
			s := formatValue(v)
			if x, ok := v.(float64); ok && !math.IsNaN(x) {
				s = fmt.Sprintf("%.4f", x)
			}
			cells[r][ind] = s
			if len(s) > widths[ind] {
				widths[ind] = len(s)
			}
		}
	}

	var sb strings.Builder
	for ind, c := range t.Columns {
		fmt.Fprintf(&sb, "%-*s  ", widths[ind], c)
	}
	sb.WriteString("\n")
	for _, row := range cells {
		for ind, s := range row {
			fmt.Fprintf(&sb, "%-*s  ", widths[ind], s)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteWorkbook writes every table as one sheet of a single xlsx workbook.
func WriteWorkbook(path string, tables ...*Table) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	for ind, tbl := range tables {
		sheet := tbl.Name
		if ind == 0 {
			if e := wb.SetSheetName("Sheet1", sheet); e != nil {
				return e
			}
		} else {
			if _, e := wb.NewSheet(sheet); e != nil {
				return e
			}
		}

		hdr := make([]any, len(tbl.Columns))
		for j, c := range tbl.Columns {
			hdr[j] = c
		}
		if e := wb.SetSheetRow(sheet, "A1", &hdr); e != nil {
			return e
		}

		for r, row := range tbl.Rows {
			vals := make([]any, len(row))
			for j, v := range row {
				if x, ok := v.(float64); ok && math.IsNaN(x) {
					vals[j] = "NA"
					continue
				}
				vals[j] = v
			}

			cell, e := excelize.CoordinatesToCellName(1, r+2)
			if e != nil {
				return e
			}
			if e := wb.SetSheetRow(sheet, cell, &vals); e != nil {
				return e
			}
		}
	}

	var buf bytes.Buffer
	if _, e := wb.WriteTo(&buf); e != nil {
		return e
	}

	return writeWhole(path, buf.Bytes(), StageExport)
}
