// Package layout turns an ordered sales dataset into pixel geometry for a
// horizontal bar chart.
//
// Compute is pure and deterministic: identical inputs always produce
// identical Layouts, and nothing here touches a drawing surface. Painting
// is a separate step (see pkg/chart/sink) that walks the Layout and issues
// draw calls, clearing prior output first. A Layout is ephemeral: it is
// rebuilt from scratch whenever the dataset changes and no bar identity
// survives a rebuild.
package layout

import "saleschart/pkg/sales"

// BandPadding is the fraction of each vertical band left as gap between
// bars.
const BandPadding = 0.1

// TickSpacing is the target horizontal distance between value-axis ticks
// in pixels.
const TickSpacing = 80.0

// Margin is the space reserved around the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Canvas is the fixed drawing configuration. Callers may vary the
// dimensions but must supply all fields.
type Canvas struct {
	Width, Height float64
	Margin        Margin
}

// DefaultCanvas returns the standard 600x300 canvas with margins sized for
// product labels on the left and a value axis below.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:  600,
		Height: 300,
		Margin: Margin{Top: 20, Right: 30, Bottom: 40, Left: 90},
	}
}

// InnerWidth returns the horizontal extent of the plot area.
func (c Canvas) InnerWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// InnerHeight returns the vertical extent of the plot area.
func (c Canvas) InnerHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// Bar is the rectangle for one record, in canvas pixels.
type Bar struct {
	Label  string
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Tick is one value-axis mark.
type Tick struct {
	Value float64
	X     float64
}

// Layout is the computed geometry for one dataset on one canvas.
// Bars[i] corresponds to dataset[i] for all i.
type Layout struct {
	Canvas Canvas
	Bars   []Bar
	X      LinearScale
	Y      BandScale
	Ticks  []Tick
}

// Empty reports whether there is nothing to draw. This is the "no data"
// condition, not an error.
func (l Layout) Empty() bool {
	return len(l.Bars) == 0
}

// Compute maps the dataset to bar geometry on the given canvas.
//
// The value scale spans [0, max(vendas)] across the inner width, so zero
// always lands on the left margin. The band scale divides the inner height
// into len(dataset) equal steps in dataset order, top to bottom. An empty
// dataset yields an empty Layout; a dataset whose values are all zero
// yields zero-width bars in their correct bands.
func Compute(ds sales.Dataset, c Canvas) Layout {
	l := Layout{Canvas: c}
	if len(ds) == 0 {
		return l
	}

	maxV := float64(ds.MaxVendas())
	l.X = NewLinear(0, maxV, c.Margin.Left, c.Width-c.Margin.Right)
	l.Y = NewBand(len(ds), c.Margin.Top, c.Height-c.Margin.Bottom, BandPadding)

	x0 := l.X.Map(0)
	l.Bars = make([]Bar, len(ds))
	for i, r := range ds {
		v := float64(r.Vendas)
		l.Bars[i] = Bar{
			Label:  r.Produto,
			Value:  v,
			X:      x0,
			Y:      l.Y.Position(i),
			Width:  l.X.Map(v) - x0,
			Height: l.Y.Bandwidth(),
		}
	}

	for _, v := range TickValues(0, maxV, int(c.Width/TickSpacing)) {
		l.Ticks = append(l.Ticks, Tick{Value: v, X: l.X.Map(v)})
	}
	return l
}
