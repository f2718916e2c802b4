package sink

import (
	"encoding/json"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/errors"
)

type jsonOutput struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Margin jsonMargin `json:"margin"`
	Bars   []jsonBar  `json:"bars"`
	Ticks  []jsonTick `json:"ticks"`
}

type jsonMargin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type jsonBar struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonTick struct {
	Value float64 `json:"value"`
	X     float64 `json:"x"`
}

// RenderJSON serializes the computed geometry for programmatic consumers,
// such as a frontend that wants to paint the bars itself.
func RenderJSON(l layout.Layout) ([]byte, error) {
	out := jsonOutput{
		Width:  l.Canvas.Width,
		Height: l.Canvas.Height,
		Margin: jsonMargin{
			Top:    l.Canvas.Margin.Top,
			Right:  l.Canvas.Margin.Right,
			Bottom: l.Canvas.Margin.Bottom,
			Left:   l.Canvas.Margin.Left,
		},
		Bars:  make([]jsonBar, 0, len(l.Bars)),
		Ticks: make([]jsonTick, 0, len(l.Ticks)),
	}
	for _, b := range l.Bars {
		out.Bars = append(out.Bars, jsonBar(b))
	}
	for _, t := range l.Ticks {
		out.Ticks = append(out.Ticks, jsonTick(t))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}
