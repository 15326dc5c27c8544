package cornstats

import (
	"bytes"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histBins = 40

var (
	pointColor = color.NRGBA{R: 70, G: 130, B: 180, A: 255}
	lineColor  = color.NRGBA{R: 214, G: 69, B: 65, A: 255}
	bandColor  = color.NRGBA{R: 214, G: 69, B: 65, A: 60}
)

// YieldHistogram draws the outcome distribution with 40 equal-width bins
// over its observed range.
func YieldHistogram(fr *Frame, path string) error {
	col, e := fr.Column(ColYield)
	if e != nil {
		return &SchemaError{Stage: StageVisualize, Msg: e.Error()}
	}

	obs := col.Observed()
	if len(obs) == 0 {
		return &InsufficientDataError{Stage: StageVisualize, Group: ColYield, N: 0}
	}

	p := plot.New()
	p.Title.Text = "Corn yield, 2022"
	p.X.Label.Text = "yield (bu/acre)"
	p.Y.Label.Text = "counties"

	h, e1 := plotter.NewHist(plotter.Values(obs), histBins)
	if e1 != nil {
		return e1
	}
	h.FillColor = pointColor
	p.Add(h)

	return savePNG(p, path)
}

// YieldScatter draws yield against the adoption midpoint with the least
// squares line and its 95% pointwise confidence band.
func YieldScatter(fr *Frame, path string) error {
	obs, e := pairedObserved(fr, ColUsageMidpoint, ColYield)
	if e != nil {
		return &SchemaError{Stage: StageVisualize, Msg: e.Error()}
	}

	xs, ys := obs[0], obs[1]
	if len(xs) < 3 {
		return &InsufficientDataError{Stage: StageVisualize, Group: ColUsageMidpoint, N: len(xs)}
	}

	p := plot.New()
	p.Title.Text = "Yield vs precision-ag adoption"
	p.X.Label.Text = "precision-ag usage midpoint (%)"
	p.Y.Label.Text = "yield (bu/acre)"

	pts := make(plotter.XYs, len(xs))
	for ind := range xs {
		pts[ind] = plotter.XY{X: xs[ind], Y: ys[ind]}
	}

	sc, e1 := plotter.NewScatter(pts)
	if e1 != nil {
		return e1
	}
	sc.GlyphStyle.Color = pointColor
	sc.GlyphStyle.Radius = vg.Points(2)

	line, band, e2 := fitBand(xs, ys)
	if e2 != nil {
		return e2
	}

	p.Add(band, sc, line)

	return savePNG(p, path)
}

// fitBand builds the OLS fit line and its 95% confidence band over an even
// grid spanning the observed x range.
func fitBand(xs, ys []float64) (*plotter.Line, *plotter.Polygon, error) {
	const gridN = 100

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	n := float64(len(xs))
	xBar := stat.Mean(xs, nil)

	sxx, rss := 0.0, 0.0
	for ind := range xs {
		dx := xs[ind] - xBar
		sxx += dx * dx
		r := ys[ind] - alpha - beta*xs[ind]
		rss += r * r
	}

	se := math.Sqrt(rss / (n - 2))
	tCrit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}.Quantile(0.975)

	xMin, xMax := xs[0], xs[0]
	for _, x := range xs {
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
	}

	linePts := make(plotter.XYs, gridN)
	upper := make(plotter.XYs, gridN)
	lower := make(plotter.XYs, gridN)
	for ind := 0; ind < gridN; ind++ {
		x := xMin + (xMax-xMin)*float64(ind)/float64(gridN-1)
		yHat := alpha + beta*x
		half := tCrit * se * math.Sqrt(1/n+(x-xBar)*(x-xBar)/sxx)

		linePts[ind] = plotter.XY{X: x, Y: yHat}
		upper[ind] = plotter.XY{X: x, Y: yHat + half}
		lower[gridN-1-ind] = plotter.XY{X: x, Y: yHat - half}
	}

	line, e := plotter.NewLine(linePts)
	if e != nil {
		return nil, nil, e
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)

	band, e1 := plotter.NewPolygon(append(upper, lower...))
	if e1 != nil {
		return nil, nil, e1
	}
	band.Color = bandColor
	band.LineStyle.Width = 0

	return line, band, nil
}

// YieldBoxplot draws one box per level of the adoption flag. Rows with a
// missing flag are excluded.
func YieldBoxplot(fr *Frame, path string) error {
	g0, g1, e := yieldByFlag(fr)
	if e != nil {
		return e
	}

	p := plot.New()
	p.Title.Text = "Yield by high precision-ag usage"
	p.X.Label.Text = ColHighPrecision
	p.Y.Label.Text = "yield (bu/acre)"

	b0, e1 := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(g0))
	if e1 != nil {
		return e1
	}
	b1, e2 := plotter.NewBoxPlot(vg.Points(40), 1, plotter.Values(g1))
	if e2 != nil {
		return e2
	}

	p.Add(b0, b1)
	p.NominalX("0", "1")

	return savePNG(p, path)
}

func yieldByFlag(fr *Frame) (g0, g1 []float64, err error) {
	obs, e := pairedObserved(fr, ColYield, ColHighPrecision)
	if e != nil {
		return nil, nil, &SchemaError{Stage: StageVisualize, Msg: e.Error()}
	}

	for ind, flag := range obs[1] {
		if flag == 0 {
			g0 = append(g0, obs[0][ind])
		} else {
			g1 = append(g1, obs[0][ind])
		}
	}

	if len(g0) == 0 || len(g1) == 0 {
		return nil, nil, &InsufficientDataError{Stage: StageVisualize, Group: ColHighPrecision, N: 0}
	}

	return g0, g1, nil
}

// Figures writes the three PNG figures plus an interactive HTML companion
// for each, all under dir.
func Figures(fr *Frame, dir string) error {
	steps := []struct {
		base string
		png  func(*Frame, string) error
		html func(*Frame, string) error
	}{
		{"yield_histogram", YieldHistogram, yieldHistogramHTML},
		{"yield_vs_precision_midpoint", YieldScatter, yieldScatterHTML},
		{"yield_by_high_precision_boxplot", YieldBoxplot, yieldBoxplotHTML},
	}

	for _, s := range steps {
		if e := s.png(fr, filepath.Join(dir, s.base+".png")); e != nil {
			return e
		}
		if e := s.html(fr, filepath.Join(dir, s.base+".html")); e != nil {
			return e
		}
	}

	return nil
}

func yieldHistogramHTML(fr *Frame, path string) error {
	col, e := fr.Column(ColYield)
	if e != nil {
		return &SchemaError{Stage: StageVisualize, Msg: e.Error()}
	}

	p := NewPlot(WithTitle("Corn yield, 2022"),
		WithXlabel("yield (bu/acre)"), WithYlabel("counties"))
	p.Histogram(col.Observed(), histBins, ColYield)

	return p.SaveHTML(path)
}

func yieldScatterHTML(fr *Frame, path string) error {
	obs, e := pairedObserved(fr, ColUsageMidpoint, ColYield)
	if e != nil {
		return &SchemaError{Stage: StageVisualize, Msg: e.Error()}
	}

	xs, ys := obs[0], obs[1]
	p := NewPlot(WithTitle("Yield vs precision-ag adoption"),
		WithXlabel("precision-ag usage midpoint (%)"), WithYlabel("yield (bu/acre)"))
	p.Points(xs, ys, "counties", "steelblue")

	if len(xs) >= 3 {
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		xMin, xMax := xs[0], xs[0]
		for _, x := range xs {
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
		}
		p.Line([]float64{xMin, xMax},
			[]float64{alpha + beta*xMin, alpha + beta*xMax}, "ols fit", "firebrick")
	}

	return p.SaveHTML(path)
}

func yieldBoxplotHTML(fr *Frame, path string) error {
	g0, g1, e := yieldByFlag(fr)
	if e != nil {
		return e
	}

	p := NewPlot(WithTitle("Yield by high precision-ag usage"),
		WithXlabel(ColHighPrecision), WithYlabel("yield (bu/acre)"))
	p.Box(g0, "0")
	p.Box(g1, "1")

	return p.SaveHTML(path)
}

// savePNG renders the figure into memory and writes it in one call, so a
// failed render leaves no partial file.
func savePNG(p *plot.Plot, path string) error {
	wt, e := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if e != nil {
		return &IOError{Stage: StageVisualize, Path: path, Err: e}
	}

	var buf bytes.Buffer
	if _, e1 := wt.WriteTo(&buf); e1 != nil {
		return &IOError{Stage: StageVisualize, Path: path, Err: e1}
	}

	return writeWhole(path, buf.Bytes(), StageVisualize)
}
