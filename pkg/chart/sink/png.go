package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	barFill string
	scale   float64
}

// WithPNGBarFill sets the bar fill color as a hex string.
func WithPNGBarFill(hex string) PNGOption {
	return func(r *pngRenderer) { r.barFill = hex }
}

// WithPNGScale sets the resolution scale factor (default 2.0 for 2x).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the layout. The drawing surface is cleared to white
// before any geometry is painted, so consecutive renders never accumulate
// stale bars.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{barFill: defaultBarFill, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	c := l.Canvas
	w := int(c.Width * r.scale)
	h := int(c.Height * r.scale)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "canvas has no drawable area (%gx%g)", c.Width, c.Height)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if l.Empty() {
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored("no data", c.Width/2, c.Height/2, 0.5, 0.5)
		return encodePNG(dc)
	}

	for _, b := range l.Bars {
		dc.SetHexColor(r.barFill)
		dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(b.Label, c.Margin.Left-labelGap, b.Y+b.Height/2, 1, 0.4)
	}

	axisY := c.Height - c.Margin.Bottom
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(c.Margin.Left, axisY, c.Width-c.Margin.Right, axisY)
	dc.Stroke()

	for _, tick := range l.Ticks {
		dc.DrawLine(tick.X, axisY, tick.X, axisY+tickLength)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(tick.Value), tick.X, axisY+tickLength+10, 0.5, 0.5)
	}

	return encodePNG(dc)
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
