package renderer

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/df07/raito/pkg/geometry"
)

// BucketMode selects the order in which buckets are handed out
type BucketMode int

const (
	BucketModeRaster BucketMode = iota // Row-major from the top-left bucket
	BucketModeCenter                   // Buckets closest to the image centre first
)

func (m BucketMode) String() string {
	switch m {
	case BucketModeRaster:
		return "raster"
	case BucketModeCenter:
		return "center"
	}
	return fmt.Sprintf("BucketMode(%d)", int(m))
}

// ParseBucketMode maps "raster" or "center" to a BucketMode
func ParseBucketMode(name string) (BucketMode, error) {
	switch strings.ToLower(name) {
	case "raster", "":
		return BucketModeRaster, nil
	case "center", "centre":
		return BucketModeCenter, nil
	}
	return BucketModeRaster, fmt.Errorf("%w: unknown bucket mode %q", ErrInvalidConfig, name)
}

// RenderBucket is a rectangular tile of the frame with its own pixel buffer
type RenderBucket struct {
	ID      int
	Left    int
	Top     int
	Width   int
	Height  int
	Samples int           // Samples per pixel completed so far
	Result  *RenderResult // Local buffer, offset to the bucket position

	seq int // enqueue order, breaks ties in the queue
}

// NewRenderBucket creates a bucket with zero completed samples
func NewRenderBucket(id, left, top, width, height int) *RenderBucket {
	return &RenderBucket{
		ID:     id,
		Left:   left,
		Top:    top,
		Width:  width,
		Height: height,
		Result: NewOffsetRenderResult(left, top, width, height),
	}
}

// Bounds returns the bucket rectangle in full-image coordinates
func (b *RenderBucket) Bounds() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Left+b.Width, b.Top+b.Height)
}

// PixelCount returns the number of pixels in the bucket
func (b *RenderBucket) PixelCount() int {
	return b.Width * b.Height
}

// NewBucketGrid tiles a width x height image with tileSize squares, the last
// row and column truncated to the remainder
func NewBucketGrid(width, height, tileSize int) []*RenderBucket {
	tileSize = max(1, tileSize)

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	buckets := make([]*RenderBucket, 0, tilesX*tilesY)
	id := 0
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			buckets = append(buckets, NewRenderBucket(id, x0, y0, x1-x0, y1-y0))
			id++
		}
	}

	return buckets
}

// GetBucketList partitions the camera frame into buckets in the order given
// by mode
func GetBucketList(camera *geometry.Camera, mode BucketMode, tileSize int) []*RenderBucket {
	width, height := camera.Width(), camera.Height()
	buckets := NewBucketGrid(width, height, tileSize)

	if mode == BucketModeCenter {
		cx, cy := float64(width)/2, float64(height)/2
		distance := func(b *RenderBucket) float64 {
			dx := float64(b.Left) + float64(b.Width)/2 - cx
			dy := float64(b.Top) + float64(b.Height)/2 - cy
			return dx*dx + dy*dy
		}
		sort.SliceStable(buckets, func(i, j int) bool {
			return distance(buckets[i]) < distance(buckets[j])
		})
	}

	return buckets
}
