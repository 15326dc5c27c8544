package cornstats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// All code interacting with delimited files is here.

// Files reads and writes delimited text files.
type Files struct {
	Sep    rune
	Header bool
}

type FileOpt func(f *Files)

func FileSep(sep rune) FileOpt {
	return func(f *Files) { f.Sep = sep }
}

func FileHeader(has bool) FileOpt {
	return func(f *Files) { f.Header = has }
}

func NewFiles(opts ...FileOpt) *Files {
	f := &Files{Sep: ',', Header: true}
	for _, o := range opts {
		o(f)
	}

	return f
}

// Load reads a delimited file into a Frame of string columns. The header row
// is canonicalized with CanonicalName.
func (f *Files) Load(path string) (*Frame, error) {
	file, e := os.Open(path)
	if e != nil {
		return nil, &IOError{Stage: StageLoad, Path: path, Err: e}
	}
	defer func() { _ = file.Close() }()

	rdr := csv.NewReader(file)
	rdr.Comma = f.Sep
	rdr.TrimLeadingSpace = true

	recs, e := rdr.ReadAll()
	if e != nil {
		return nil, &SchemaError{Stage: StageLoad, Msg: fmt.Sprintf("cannot parse %s: %v", path, e)}
	}

	if len(recs) == 0 {
		return nil, &SchemaError{Stage: StageLoad, Msg: "file has no header row"}
	}

	header := recs[0]
	names := make([]string, len(header))
	seen := make(map[string]bool)
	for ind, raw := range header {
		name := CanonicalName(raw)
		if name == "" {
			return nil, &SchemaError{Stage: StageLoad, Msg: fmt.Sprintf("header field %d is blank", ind)}
		}

		if seen[name] {
			return nil, &SchemaError{Stage: StageLoad, Msg: fmt.Sprintf("duplicate column %s", name)}
		}
		seen[name] = true
		names[ind] = name
	}

	data := make([][]string, len(names))
	for ind := range data {
		data[ind] = make([]string, 0, len(recs)-1)
	}

	for _, rec := range recs[1:] {
		for ind := range names {
			data[ind] = append(data[ind], rec[ind])
		}
	}

	cols := make([]*Column, len(names))
	for ind, name := range names {
		var e1 error
		if cols[ind], e1 = NewColumn(name, DTstring, data[ind]); e1 != nil {
			return nil, e1
		}
	}

	return NewFrame(cols...)
}

// WriteFrame serializes a frame to path, creating parent directories as
// needed. The file content is built in memory and written in one call so a
// failure cannot leave a partial file behind.
func (f *Files) WriteFrame(path string, fr *Frame, stage Stage) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = f.Sep

	if f.Header {
		if e := w.Write(fr.ColumnNames()); e != nil {
			return e
		}
	}

	rec := make([]string, fr.ColumnCount())
	for row := 0; row < fr.RowCount(); row++ {
		for ind, name := range fr.ColumnNames() {
			col, _ := fr.Column(name)
			rec[ind] = cellString(col, row)
		}

		if e := w.Write(rec); e != nil {
			return e
		}
	}

	w.Flush()
	if e := w.Error(); e != nil {
		return e
	}

	return writeWhole(path, buf.Bytes(), stage)
}

func cellString(col *Column, row int) string {
	if col.Missing(row) {
		return ""
	}

	switch col.DataType() {
	case DTstring:
		return col.AsString()[row]
	case DTflag:
		return strconv.Itoa(int(col.AsFloat()[row]))
	default:
		return strconv.FormatFloat(col.AsFloat()[row], 'g', -1, 64)
	}
}

// formatValue renders a result-table cell.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsNaN(x) {
			return "NA"
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func writeWhole(path string, content []byte, stage Stage) error {
	if e := os.MkdirAll(filepath.Dir(path), 0o755); e != nil {
		return &IOError{Stage: stage, Path: path, Err: e}
	}

	if e := os.WriteFile(path, content, 0o644); e != nil {
		return &IOError{Stage: stage, Path: path, Err: e}
	}

	return nil
}
