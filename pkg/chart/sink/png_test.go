package sink

import (
	"bytes"
	"image/png"
	"testing"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
)

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testLayout())
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	// Default 2x scale over the 600x300 canvas.
	bounds := img.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 600 {
		t.Errorf("image size = %dx%d, want 1200x600", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(testLayout(), WithPNGScale(1.0))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 600 {
		t.Errorf("width = %d, want 600", img.Bounds().Dx())
	}
}

func TestRenderPNGEmptyLayout(t *testing.T) {
	data, err := RenderPNG(layout.Compute(sales.Dataset{}, layout.DefaultCanvas()))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
}

func TestRenderPNGZeroCanvas(t *testing.T) {
	_, err := RenderPNG(layout.Layout{})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}
