package cornstats

import (
	"math"
	"os"
	"path/filepath"
)

var nan = math.NaN()

// ensureDir creates the parent directory of path if it is absent.
func ensureDir(path string) error {
	if e := os.MkdirAll(filepath.Dir(path), 0o755); e != nil {
		return &IOError{Stage: StageVisualize, Path: path, Err: e}
	}

	return nil
}

// pairedObserved returns the rows where every listed numeric column is
// non-missing, one slice per column in the given order.
func pairedObserved(fr *Frame, names ...string) ([][]float64, error) {
	cols := make([]*Column, len(names))
	for ind, name := range names {
		var e error
		if cols[ind], e = fr.Column(name); e != nil {
			return nil, e
		}
	}

	out := make([][]float64, len(cols))
	for row := 0; row < fr.RowCount(); row++ {
		ok := true
		for _, col := range cols {
			if col.Missing(row) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		for ind, col := range cols {
			out[ind] = append(out[ind], col.AsFloat()[row])
		}
	}

	return out, nil
}
