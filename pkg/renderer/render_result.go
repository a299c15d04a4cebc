package renderer

import (
	"fmt"
	"image"

	"github.com/df07/raito/pkg/core"
)

// RenderResult is a width x height grid of linear colours. Tile buffers carry
// the offset of their top-left pixel inside the full image; pixel accessors
// always take local coordinates.
type RenderResult struct {
	Width, Height    int
	XOffset, YOffset int
	pixels           []core.Color
}

// NewRenderResult creates a full-frame result
func NewRenderResult(width, height int) *RenderResult {
	return NewOffsetRenderResult(0, 0, width, height)
}

// NewOffsetRenderResult creates a tile buffer whose pixel (0,0) maps to
// (xOffset, yOffset) in the full image
func NewOffsetRenderResult(xOffset, yOffset, width, height int) *RenderResult {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("render result with negative size %dx%d", width, height))
	}
	return &RenderResult{
		Width:   width,
		Height:  height,
		XOffset: xOffset,
		YOffset: yOffset,
		pixels:  make([]core.Color, width*height),
	}
}

func (r *RenderResult) index(x, y int) int {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		panic(fmt.Sprintf("pixel (%d,%d) outside %dx%d render result", x, y, r.Width, r.Height))
	}
	return y*r.Width + x
}

// Bounds returns the area covered in full-image coordinates
func (r *RenderResult) Bounds() image.Rectangle {
	return image.Rect(r.XOffset, r.YOffset, r.XOffset+r.Width, r.YOffset+r.Height)
}

// SetPixelColor overwrites a pixel
func (r *RenderResult) SetPixelColor(x, y int, c core.Color) {
	r.pixels[r.index(x, y)] = c
}

// AddPixelColor accumulates into a pixel, compositing opacity
func (r *RenderResult) AddPixelColor(x, y int, c core.Color) {
	i := r.index(x, y)
	r.pixels[i] = r.pixels[i].Add(c)
}

// GetPixelColor reads a pixel in local coordinates
func (r *RenderResult) GetPixelColor(x, y int) core.Color {
	return r.pixels[r.index(x, y)]
}

// GetOffsetPixelColor reads a pixel addressed in full-image coordinates
func (r *RenderResult) GetOffsetPixelColor(x, y int) core.Color {
	return r.GetPixelColor(x-r.XOffset, y-r.YOffset)
}

// Clear resets every pixel to transparent black
func (r *RenderResult) Clear() {
	clear(r.pixels)
}

// Merge adds every pixel of tile into r at the tile's offset. The tile must
// lie entirely inside r.
func (r *RenderResult) Merge(tile *RenderResult) {
	dx := tile.XOffset - r.XOffset
	dy := tile.YOffset - r.YOffset
	for y := 0; y < tile.Height; y++ {
		for x := 0; x < tile.Width; x++ {
			r.AddPixelColor(x+dx, y+dy, tile.pixels[y*tile.Width+x])
		}
	}
}

// ApplyGamma gamma-encodes every pixel in place
func (r *RenderResult) ApplyGamma() {
	for i, c := range r.pixels {
		r.pixels[i] = c.Gamma()
	}
}

// ToImage converts the result to an 8-bit image. Colours are clamped, not
// gamma-encoded.
func (r *RenderResult) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, y, r.pixels[y*r.Width+x].ToRGBA())
		}
	}
	return img
}
