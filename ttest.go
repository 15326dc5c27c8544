package cornstats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult holds a two-sample Welch t-test of the outcome split by the
// binary adoption flag. Estimate is mean(group 0) - mean(group 1).
type TTestResult struct {
	Estimate  float64
	Mean0     float64
	Mean1     float64
	N0        int
	N1        int
	Statistic float64
	PValue    float64
	DF        float64
	ConfLow   float64
	ConfHigh  float64

	Method      string
	Alternative string
}

// WelchTTest compares the outcome between the two levels of the adoption
// flag, using each group's own variance and the Welch-Satterthwaite degrees
// of freedom. Rows missing either variable are excluded.
func WelchTTest(fr *Frame) (*TTestResult, error) {
	pairs, e := pairedObserved(fr, ColYield, ColHighPrecision)
	if e != nil {
		return nil, &SchemaError{Stage: StageTest, Msg: e.Error()}
	}

	var g0, g1 []float64
	for ind, flag := range pairs[1] {
		if flag == 0 {
			g0 = append(g0, pairs[0][ind])
		} else {
			g1 = append(g1, pairs[0][ind])
		}
	}

	if len(g0) < 2 {
		return nil, &InsufficientDataError{Stage: StageTest, Group: ColHighPrecision + "=0", N: len(g0)}
	}
	if len(g1) < 2 {
		return nil, &InsufficientDataError{Stage: StageTest, Group: ColHighPrecision + "=1", N: len(g1)}
	}

	m0, v0 := stat.MeanVariance(g0, nil)
	m1, v1 := stat.MeanVariance(g1, nil)
	n0, n1 := float64(len(g0)), float64(len(g1))

	se2 := v0/n0 + v1/n1
	se := math.Sqrt(se2)
	tStat := (m0 - m1) / se

	// Welch-Satterthwaite approximation
	df := se2 * se2 / ((v0/n0)*(v0/n0)/(n0-1) + (v1/n1)*(v1/n1)/(n1-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(tStat))
	tCrit := dist.Quantile(0.975)

	return &TTestResult{
		Estimate:  m0 - m1,
		Mean0:     m0,
		Mean1:     m1,
		N0:        len(g0),
		N1:        len(g1),
		Statistic: tStat,
		PValue:    p,
		DF:        df,
		ConfLow:   (m0 - m1) - tCrit*se,
		ConfHigh:  (m0 - m1) + tCrit*se,

		Method:      "Welch Two Sample t-test",
		Alternative: "two.sided",
	}, nil
}

// Table renders the test as its fixed-schema result row.
func (r *TTestResult) Table() *Table {
	tbl := NewTable("ttest",
		"estimate", "mean_group0", "mean_group1", "n_group0", "n_group1",
		"statistic", "p_value", "df", "conf_low", "conf_high", "method", "alternative")
	tbl.AddRow(r.Estimate, r.Mean0, r.Mean1, r.N0, r.N1,
		r.Statistic, r.PValue, r.DF, r.ConfLow, r.ConfHigh, r.Method, r.Alternative)

	return tbl
}
