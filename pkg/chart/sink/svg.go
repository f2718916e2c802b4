// Package sink renders computed chart layouts to output formats.
//
// Sinks are the imperative half of the renderer: each one walks a
// [layout.Layout] and issues draw calls. Every render produces a complete
// document from scratch, so nothing from a previous dataset can leak into
// the output. The layout itself is never modified.
package sink

import (
	"bytes"
	"fmt"

	"saleschart/pkg/chart/layout"
)

const (
	defaultBarFill   = "#4682b4"
	defaultAxisColor = "#333333"
	defaultFont      = "sans-serif"
	tickLength       = 6.0
	labelGap         = 6.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	barFill string
	title   string
}

// WithBarFill sets the bar fill color (any SVG color value).
func WithBarFill(color string) SVGOption {
	return func(r *svgRenderer) { r.barFill = color }
}

// WithTitle draws a title centered above the plot area.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

// RenderSVG renders the layout as a standalone SVG document. An empty
// layout renders a "no data" placeholder rather than failing.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{barFill: defaultBarFill}
	for _, opt := range opts {
		opt(&r)
	}

	c := l.Canvas
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		c.Width, c.Height, c.Width, c.Height, defaultFont)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", c.Width, c.Height)

	if l.Empty() {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" fill="%s">no data</text>`+"\n",
			c.Width/2, c.Height/2, defaultAxisColor)
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="14" fill="%s">%s</text>`+"\n",
			c.Width/2, c.Margin.Top/2+4, defaultAxisColor, escapeText(r.title))
	}

	for _, b := range l.Bars {
		fmt.Fprintf(&buf, `  <rect class="bar" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			b.X, b.Y, b.Width, b.Height, r.barFill)
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="middle" font-size="11" fill="%s">%s</text>`+"\n",
			c.Margin.Left-labelGap, b.Y+b.Height/2, defaultAxisColor, escapeText(b.Label))
	}

	axisY := c.Height - c.Margin.Bottom
	fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
		c.Margin.Left, axisY, c.Width-c.Margin.Right, axisY, defaultAxisColor)
	for _, tick := range l.Ticks {
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
			tick.X, axisY, tick.X, axisY+tickLength, defaultAxisColor)
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-size="10" fill="%s">%s</text>`+"\n",
			tick.X, axisY+tickLength+12, defaultAxisColor, formatTick(tick.Value))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// formatTick prints a tick value without trailing zeros.
func formatTick(v float64) string {
	return fmt.Sprintf("%g", v)
}

// escapeText escapes the XML special characters that can appear in product
// names.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
