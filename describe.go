package cornstats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Missingness counts missing values per column, sorted by descending count.
// Ties keep the original column order.
func Missingness(fr *Frame) *Table {
	type rec struct {
		name string
		n    int
	}

	recs := make([]rec, 0, fr.ColumnCount())
	for _, name := range fr.ColumnNames() {
		col, _ := fr.Column(name)
		recs = append(recs, rec{name: name, n: col.MissingCount()})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].n > recs[j].n })

	tbl := NewTable("missingness", "column", "n_missing")
	for _, r := range recs {
		tbl.AddRow(r.name, r.n)
	}

	return tbl
}

// Descriptives reports count, mean and sample standard deviation for the
// outcome and the continuous adoption column, ignoring missing values.
func Descriptives(fr *Frame) (*Table, error) {
	tbl := NewTable("descriptives", "column", "n_total", "n_obs", "mean", "sd")

	for _, name := range []string{ColYield, ColUsageMidpoint} {
		col, e := fr.Column(name)
		if e != nil {
			return nil, &SchemaError{Stage: StageDescribe, Msg: e.Error()}
		}

		obs := col.Observed()
		// stat.StdDev is Bessel-corrected and yields NaN below 2 observations
		tbl.AddRow(name, col.Len(), len(obs), stat.Mean(obs, nil), stat.StdDev(obs, nil))
	}

	return tbl, nil
}

// Profile builds the full distributional profile of every numeric column.
// It is printed to the console during a run; nothing downstream consumes it.
func Profile(fr *Frame) *Table {
	tbl := NewTable("profile",
		"column", "n_obs", "n_missing", "mean", "sd", "min", "q1", "median", "q3", "max")

	for _, name := range fr.ColumnNames() {
		col, _ := fr.Column(name)
		if col.DataType() != DTfloat && col.DataType() != DTflag {
			continue
		}

		obs := col.Observed()
		sort.Float64s(obs)

		if len(obs) == 0 {
			tbl.AddRow(name, 0, col.MissingCount(), nan, nan, nan, nan, nan, nan, nan)
			continue
		}

		tbl.AddRow(name,
			len(obs),
			col.MissingCount(),
			stat.Mean(obs, nil),
			stat.StdDev(obs, nil),
			obs[0],
			stat.Quantile(0.25, stat.Empirical, obs, nil),
			stat.Quantile(0.50, stat.Empirical, obs, nil),
			stat.Quantile(0.75, stat.Empirical, obs, nil),
			obs[len(obs)-1])
	}

	return tbl
}
