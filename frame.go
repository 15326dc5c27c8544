package cornstats

import (
	"fmt"
	"math"
	"strings"
)

// DataTypes are the column types the package supports.
type DataTypes uint8

const (
	DTunknown DataTypes = 0 + iota
	DTstring
	DTfloat
	// DTflag is a 0/1 indicator stored as float64 so it can carry missing values.
	DTflag
)

func (dt DataTypes) String() string {
	switch dt {
	case DTstring:
		return "string"
	case DTfloat:
		return "float"
	case DTflag:
		return "flag"
	default:
		return "unknown"
	}
}

// Column is a named typed vector. Missing values are NaN for DTfloat and
// DTflag, the empty string for DTstring.
type Column struct {
	name string
	dt   DataTypes

	data any
}

func NewColumn(name string, dt DataTypes, data any) (*Column, error) {
	switch dt {
	case DTfloat, DTflag:
		if _, ok := data.([]float64); !ok {
			return nil, fmt.Errorf("column %s: %s columns need []float64 data", name, dt)
		}
	case DTstring:
		if _, ok := data.([]string); !ok {
			return nil, fmt.Errorf("column %s: string columns need []string data", name)
		}
	default:
		return nil, fmt.Errorf("column %s: unsupported data type", name)
	}

	return &Column{name: name, dt: dt, data: data}, nil
}

func MakeColumn(name string, dt DataTypes, n int) *Column {
	switch dt {
	case DTfloat, DTflag:
		return &Column{name: name, dt: dt, data: make([]float64, n)}
	case DTstring:
		return &Column{name: name, dt: dt, data: make([]string, n)}
	default:
		panic(fmt.Errorf("cannot make Column with data type %s", dt))
	}
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) DataType() DataTypes {
	return c.dt
}

func (c *Column) Len() int {
	switch c.dt {
	case DTstring:
		return len(c.data.([]string))
	default:
		return len(c.data.([]float64))
	}
}

func (c *Column) Data() any {
	return c.data
}

func (c *Column) AsFloat() []float64 {
	if c.dt != DTfloat && c.dt != DTflag {
		panic(fmt.Errorf("column %s isn't numeric", c.name))
	}

	return c.data.([]float64)
}

func (c *Column) AsString() []string {
	if c.dt != DTstring {
		panic(fmt.Errorf("column %s isn't DTstring", c.name))
	}

	return c.data.([]string)
}

func (c *Column) Element(ind int) any {
	if ind < 0 || ind >= c.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch c.dt {
	case DTstring:
		return c.data.([]string)[ind]
	default:
		return c.data.([]float64)[ind]
	}
}

// Missing reports whether the value at ind is a missing value.
func (c *Column) Missing(ind int) bool {
	switch c.dt {
	case DTstring:
		return c.data.([]string)[ind] == ""
	default:
		return math.IsNaN(c.data.([]float64)[ind])
	}
}

func (c *Column) MissingCount() int {
	n := 0
	for ind := 0; ind < c.Len(); ind++ {
		if c.Missing(ind) {
			n++
		}
	}

	return n
}

// Observed returns the non-missing values of a numeric column.
func (c *Column) Observed() []float64 {
	var out []float64
	for _, x := range c.AsFloat() {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

func (c *Column) Copy() *Column {
	switch c.dt {
	case DTstring:
		data := make([]string, c.Len())
		copy(data, c.data.([]string))
		return &Column{name: c.name, dt: c.dt, data: data}
	default:
		data := make([]float64, c.Len())
		copy(data, c.data.([]float64))
		return &Column{name: c.name, dt: c.dt, data: data}
	}
}

// Where returns a new column keeping row i when keep[i] is true.
func (c *Column) Where(keep []bool) *Column {
	if len(keep) != c.Len() {
		panic(fmt.Errorf("keep length doesn't match column %s", c.name))
	}

	switch c.dt {
	case DTstring:
		var data []string
		for ind, x := range c.data.([]string) {
			if keep[ind] {
				data = append(data, x)
			}
		}
		return &Column{name: c.name, dt: c.dt, data: data}
	default:
		var data []float64
		for ind, x := range c.data.([]float64) {
			if keep[ind] {
				data = append(data, x)
			}
		}
		return &Column{name: c.name, dt: c.dt, data: data}
	}
}

// Frame is an ordered set of equal-length columns -- the Observation table.
type Frame struct {
	cols []*Column
}

func NewFrame(cols ...*Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewFrame")
	}

	n := cols[0].Len()
	seen := make(map[string]bool)
	for _, col := range cols {
		if col.Len() != n {
			return nil, fmt.Errorf("all columns must have the same length")
		}

		if seen[col.Name()] {
			return nil, fmt.Errorf("duplicate column %s", col.Name())
		}
		seen[col.Name()] = true
	}

	return &Frame{cols: cols}, nil
}

func (f *Frame) RowCount() int {
	return f.cols[0].Len()
}

func (f *Frame) ColumnCount() int {
	return len(f.cols)
}

func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for ind, col := range f.cols {
		names[ind] = col.Name()
	}

	return names
}

func (f *Frame) Column(name string) (*Column, error) {
	for _, col := range f.cols {
		if col.Name() == name {
			return col, nil
		}
	}

	return nil, fmt.Errorf("no column %s", name)
}

func (f *Frame) HasColumn(name string) bool {
	_, e := f.Column(name)
	return e == nil
}

func (f *Frame) AppendColumn(col *Column) error {
	if col.Len() != f.RowCount() {
		return fmt.Errorf("column %s length doesn't match frame", col.Name())
	}

	if f.HasColumn(col.Name()) {
		return fmt.Errorf("frame already has column %s", col.Name())
	}

	f.cols = append(f.cols, col)

	return nil
}

func (f *Frame) Where(keep []bool) *Frame {
	cols := make([]*Column, len(f.cols))
	for ind, col := range f.cols {
		cols[ind] = col.Where(keep)
	}

	return &Frame{cols: cols}
}

func (f *Frame) Copy() *Frame {
	cols := make([]*Column, len(f.cols))
	for ind, col := range f.cols {
		cols[ind] = col.Copy()
	}

	return &Frame{cols: cols}
}

// String renders a short preview: dimensions, then up to the first five rows.
func (f *Frame) String() string {
	const peek = 5

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d rows x %d columns\n", f.RowCount(), f.ColumnCount())
	sb.WriteString(strings.Join(f.ColumnNames(), ", "))
	sb.WriteString("\n")

	n := f.RowCount()
	if n > peek {
		n = peek
	}

	for row := 0; row < n; row++ {
		vals := make([]string, len(f.cols))
		for ind, col := range f.cols {
			if col.Missing(row) {
				vals[ind] = "NA"
				continue
			}
			switch col.DataType() {
			case DTstring:
				vals[ind] = col.AsString()[row]
			case DTflag:
				vals[ind] = fmt.Sprintf("%.0f", col.AsFloat()[row])
			default:
				vals[ind] = fmt.Sprintf("%.2f", col.AsFloat()[row])
			}
		}
		sb.WriteString(strings.Join(vals, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}
