package cornstats

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot wraps a plotly figure. Each PNG figure gets an interactive HTML
// companion built through this type.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

func (p *Plot) Histogram(x []float64, bins int, seriesName string) {
	tr := &grob.Histogram{Name: seriesName, X: x, Nbinsx: int64(bins)}
	p.Fig.AddTraces(tr)
}

func (p *Plot) Points(x, y []float64, seriesName, clr string) {
	tr := &grob.Scatter{Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeMarkers, Marker: &grob.ScatterMarker{Color: clr}}
	p.Fig.AddTraces(tr)
}

func (p *Plot) Line(x, y []float64, seriesName, clr string) {
	tr := &grob.Scatter{Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: clr}}
	p.Fig.AddTraces(tr)
}

func (p *Plot) Box(y []float64, seriesName string) {
	tr := &grob.Box{Name: seriesName, Y: y}
	p.Fig.AddTraces(tr)
}

// SaveHTML writes the figure as a standalone HTML file.
func (p *Plot) SaveHTML(path string) error {
	if e := ensureDir(path); e != nil {
		return e
	}

	offline.ToHtml(p.Fig, path)

	return nil
}
