package cornstats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Clean filters the raw table to the corn commodity and coerces designated
// columns to their semantic types. Cell-level parse failures become missing
// values; a missing designated column is a SchemaError.
func Clean(raw *Frame) (*Frame, error) {
	fr := raw

	if fr.HasColumn(ColCommodity) {
		com, _ := fr.Column(ColCommodity)
		keep := make([]bool, fr.RowCount())
		for ind, v := range com.AsString() {
			s := strings.TrimSpace(v)
			keep[ind] = s == "" || strings.EqualFold(s, "CORN")
		}
		fr = fr.Where(keep)
	}

	for _, name := range FloatColumns {
		if e := coerceColumn(fr, name, DTfloat, parseFloatCell); e != nil {
			return nil, e
		}
	}

	for _, name := range FlagColumns {
		if e := coerceColumn(fr, name, DTflag, parseFlagCell); e != nil {
			return nil, e
		}
	}

	return fr, nil
}

func coerceColumn(fr *Frame, name string, dt DataTypes, parse func(string) float64) error {
	col, e := fr.Column(name)
	if e != nil {
		return &SchemaError{Stage: StageClean, Msg: fmt.Sprintf("required column %s is absent", name)}
	}

	// already coerced, as when re-reading the exported clean copy
	if col.DataType() == dt {
		return nil
	}

	data := make([]float64, col.Len())
	for ind, v := range col.AsString() {
		data[ind] = parse(v)
	}

	col.dt = dt
	col.data = data

	return nil
}

func parseFloatCell(v string) float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return math.NaN()
	}

	x, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return math.NaN()
	}

	return x
}

// parseFlagCell accepts only a literal 0 or 1.
func parseFlagCell(v string) float64 {
	switch strings.TrimSpace(v) {
	case "0":
		return 0
	case "1":
		return 1
	default:
		return math.NaN()
	}
}
