package cornstats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ModelSpec names a regression: response regressed on predictors, always
// with an intercept.
type ModelSpec struct {
	Name       string
	Response   string
	Predictors []string
}

// ModelSpecs are the three fixed specifications fit on every run.
var ModelSpecs = []ModelSpec{
	{Name: "m1", Response: ColYield, Predictors: []string{ColUsageMidpoint}},
	{Name: "m2", Response: ColYield, Predictors: append([]string{ColUsageMidpoint}, ControlColumns...)},
	{Name: "m3", Response: ColYield, Predictors: append([]string{ColHighPrecision}, ControlColumns...)},
}

type Coefficient struct {
	Term     string
	Estimate float64
	StdErr   float64
	TStat    float64
	PValue   float64
	ConfLow  float64
	ConfHigh float64
}

// OLSResult is one fitted model: per-coefficient inference plus the fit
// summary statistics.
type OLSResult struct {
	Spec ModelSpec
	N    int

	Coefficients []Coefficient

	R2         float64
	AdjR2      float64
	ResidualSE float64
	FStat      float64
	FPValue    float64
	DFNum      int
	DFDen      int
	AIC        float64
	BIC        float64
}

// FitOLS fits spec by ordinary least squares through a QR decomposition.
// Rows missing any model variable are excluded (listwise deletion, per
// model). A singular design matrix or too few complete rows is a
// RankDeficiencyError.
func FitOLS(fr *Frame, spec ModelSpec) (*OLSResult, error) {
	vars := append([]string{spec.Response}, spec.Predictors...)
	obs, e := pairedObserved(fr, vars...)
	if e != nil {
		return nil, &SchemaError{Stage: StageModel, Msg: e.Error()}
	}

	n := len(obs[0])
	p := len(spec.Predictors) + 1
	if n <= p {
		return nil, &RankDeficiencyError{Model: spec.Name,
			Reason: fmt.Sprintf("%d complete rows cannot identify %d coefficients", n, p)}
	}

	y := mat.NewVecDense(n, obs[0])
	x := mat.NewDense(n, p, nil)
	for row := 0; row < n; row++ {
		x.Set(row, 0, 1)
		for j := 1; j < p; j++ {
			x.Set(row, j, obs[j][row])
		}
	}

	var qr mat.QR
	qr.Factorize(x)

	var r mat.Dense
	qr.RTo(&r)
	if rankDeficient(&r, p) {
		return nil, &RankDeficiencyError{Model: spec.Name, Reason: "collinear predictor columns"}
	}

	beta := mat.NewDense(p, 1, nil)
	if e1 := qr.SolveTo(beta, false, y); e1 != nil {
		return nil, &RankDeficiencyError{Model: spec.Name, Reason: e1.Error()}
	}

	// residuals and sums of squares
	var fitted mat.Dense
	fitted.Mul(x, beta)

	rss, tss, yBar := 0.0, 0.0, 0.0
	for row := 0; row < n; row++ {
		yBar += y.AtVec(row)
	}
	yBar /= float64(n)
	for row := 0; row < n; row++ {
		d := y.AtVec(row) - fitted.At(row, 0)
		rss += d * d
		m := y.AtVec(row) - yBar
		tss += m * m
	}

	dfDen := n - p
	sigma2 := rss / float64(dfDen)

	// covariance of the estimates: sigma2 * (X'X)^-1 via R'R = X'X
	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if e1 := xtxInv.Inverse(&xtx); e1 != nil {
		return nil, &RankDeficiencyError{Model: spec.Name, Reason: e1.Error()}
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dfDen)}
	tCrit := tDist.Quantile(0.975)

	terms := append([]string{"(intercept)"}, spec.Predictors...)
	coefs := make([]Coefficient, p)
	for j := 0; j < p; j++ {
		est := beta.At(j, 0)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		t := est / se
		coefs[j] = Coefficient{
			Term:     terms[j],
			Estimate: est,
			StdErr:   se,
			TStat:    t,
			PValue:   2 * tDist.CDF(-math.Abs(t)),
			ConfLow:  est - tCrit*se,
			ConfHigh: est + tCrit*se,
		}
	}

	k := p - 1
	r2 := 1 - rss/tss
	fStat := (tss - rss) / float64(k) / sigma2
	fDist := distuv.F{D1: float64(k), D2: float64(dfDen)}

	// Gaussian log-likelihood form, matching the usual AIC/BIC definitions
	logLik := -0.5 * float64(n) * (math.Log(2*math.Pi) + math.Log(rss/float64(n)) + 1)
	nParams := float64(p + 1) // coefficients plus the error variance

	return &OLSResult{
		Spec: spec,
		N:    n,

		Coefficients: coefs,

		R2:         r2,
		AdjR2:      1 - (1-r2)*float64(n-1)/float64(dfDen),
		ResidualSE: math.Sqrt(sigma2),
		FStat:      fStat,
		FPValue:    fDist.Survival(fStat),
		DFNum:      k,
		DFDen:      dfDen,
		AIC:        -2*logLik + 2*nParams,
		BIC:        -2*logLik + math.Log(float64(n))*nParams,
	}, nil
}

// rankDeficient checks the diagonal of R against a relative tolerance.
func rankDeficient(r *mat.Dense, p int) bool {
	const tol = 1e-10

	maxDiag := 0.0
	for j := 0; j < p; j++ {
		if d := math.Abs(r.At(j, j)); d > maxDiag {
			maxDiag = d
		}
	}

	if maxDiag == 0 {
		return true
	}

	for j := 0; j < p; j++ {
		if math.Abs(r.At(j, j)) <= tol*maxDiag {
			return true
		}
	}

	return false
}

// CoefficientTable renders the per-coefficient results.
func (r *OLSResult) CoefficientTable() *Table {
	tbl := NewTable("model_"+r.Spec.Name+"_coefficients",
		"term", "estimate", "std_error", "statistic", "p_value", "conf_low", "conf_high")
	for _, c := range r.Coefficients {
		tbl.AddRow(c.Term, c.Estimate, c.StdErr, c.TStat, c.PValue, c.ConfLow, c.ConfHigh)
	}

	return tbl
}

// FitSummaryTable collects one fit-summary row per fitted model.
func FitSummaryTable(results ...*OLSResult) *Table {
	tbl := NewTable("model_fit_summary",
		"model", "n", "r_squared", "adj_r_squared", "residual_se",
		"f_statistic", "f_p_value", "df_num", "df_den", "aic", "bic")
	for _, r := range results {
		tbl.AddRow(r.Spec.Name, r.N, r.R2, r.AdjR2, r.ResidualSE,
			r.FStat, r.FPValue, r.DFNum, r.DFDen, r.AIC, r.BIC)
	}

	return tbl
}
