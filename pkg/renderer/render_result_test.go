package renderer

import (
	"math"
	"testing"

	"github.com/df07/raito/pkg/core"
)

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance &&
		math.Abs(a.A-b.A) < tolerance
}

func TestRenderResult_SetAddGet(t *testing.T) {
	r := NewRenderResult(4, 3)

	if got := r.GetPixelColor(3, 2); got != (core.Color{}) {
		t.Errorf("Expected transparent black, got %v", got)
	}

	r.SetPixelColor(1, 2, core.NewColor(0.5, 0.25, 0))
	r.AddPixelColor(1, 2, core.NewColor(0.25, 0.25, 1))
	expected := core.Color{R: 0.75, G: 0.5, B: 1, A: 1}
	if got := r.GetPixelColor(1, 2); !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRenderResult_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"x past width", 4, 0},
		{"y past height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for pixel (%d,%d)", tt.x, tt.y)
				}
			}()
			NewRenderResult(4, 3).GetPixelColor(tt.x, tt.y)
		})
	}
}

func TestRenderResult_MergeAtOffset(t *testing.T) {
	full := NewRenderResult(6, 5)
	tile := NewOffsetRenderResult(2, 3, 3, 2)
	tile.SetPixelColor(0, 0, core.NewColor(1, 0, 0))
	tile.SetPixelColor(2, 1, core.NewColor(0, 1, 0))

	full.Merge(tile)
	full.Merge(tile)

	if got := full.GetPixelColor(2, 3); !colorsClose(got, core.NewColor(2, 0, 0), 1e-12) {
		t.Errorf("Expected doubled red at (2,3), got %v", got)
	}
	if got := full.GetPixelColor(4, 4); !colorsClose(got, core.NewColor(0, 2, 0), 1e-12) {
		t.Errorf("Expected doubled green at (4,4), got %v", got)
	}
	if got := full.GetPixelColor(0, 0); got != (core.Color{}) {
		t.Errorf("Pixel outside the tile changed: %v", got)
	}
	if got := tile.GetOffsetPixelColor(4, 4); got != core.NewColor(0, 1, 0) {
		t.Errorf("Expected full-image lookup to reach tile pixel, got %v", got)
	}
}

func TestRenderResult_ApplyGammaAndImage(t *testing.T) {
	r := NewRenderResult(2, 1)
	r.SetPixelColor(0, 0, core.NewColor(0.25, 1, 4))
	r.SetPixelColor(1, 0, core.NewColor(-1, 0, 0.01))
	r.ApplyGamma()

	if got := r.GetPixelColor(0, 0); !colorsClose(got, core.NewColor(0.5, 1, 2), 1e-12) {
		t.Errorf("Unexpected gamma result %v", got)
	}
	if got := r.GetPixelColor(1, 0); !colorsClose(got, core.NewColor(0, 0, 0.1), 1e-12) {
		t.Errorf("Unexpected gamma result %v", got)
	}

	img := r.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected image bounds %v", img.Bounds())
	}
	if c := img.RGBAAt(0, 0); c.R != 127 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("Unexpected 8-bit pixel %v", c)
	}
}
