package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/df07/raito/pkg/geometry"
)

func TestNewBucketGrid_CoversEveryPixelOnce(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
	}{
		{100, 100, 50},
		{101, 99, 50},
		{7, 3, 50},
		{64, 36, 8},
		{1, 1, 1},
		{33, 17, 4},
		{400, 225, 64},
		{10, 10, 0}, // clamped to 1
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d_tile%d", tt.width, tt.height, tt.tileSize), func(t *testing.T) {
			buckets := NewBucketGrid(tt.width, tt.height, tt.tileSize)

			counts := make([]int, tt.width*tt.height)
			for i, b := range buckets {
				if b.ID != i {
					t.Errorf("Bucket %d has ID %d", i, b.ID)
				}
				if b.Samples != 0 {
					t.Errorf("Bucket %d starts with %d samples", b.ID, b.Samples)
				}
				if b.Width < 1 || b.Height < 1 {
					t.Errorf("Bucket %d is empty: %+v", b.ID, b.Bounds())
				}
				if b.Result.Width != b.Width || b.Result.Height != b.Height || b.Result.XOffset != b.Left || b.Result.YOffset != b.Top {
					t.Errorf("Bucket %d buffer does not match its bounds", b.ID)
				}
				for y := b.Top; y < b.Top+b.Height; y++ {
					for x := b.Left; x < b.Left+b.Width; x++ {
						if x >= tt.width || y >= tt.height {
							t.Fatalf("Bucket %d reaches outside the image at (%d,%d)", b.ID, x, y)
						}
						counts[y*tt.width+x]++
					}
				}
			}

			for i, c := range counts {
				if c != 1 {
					t.Fatalf("Pixel (%d,%d) covered %d times", i%tt.width, i/tt.width, c)
				}
			}
		})
	}
}

func TestNewBucketGrid_RemainderTiles(t *testing.T) {
	buckets := NewBucketGrid(120, 70, 50)
	if len(buckets) != 6 {
		t.Fatalf("Expected 3x2 buckets, got %d", len(buckets))
	}

	last := buckets[len(buckets)-1]
	if last.Left != 100 || last.Top != 50 || last.Width != 20 || last.Height != 20 {
		t.Errorf("Unexpected corner bucket %v", last.Bounds())
	}
	if buckets[2].Width != 20 || buckets[2].Height != 50 {
		t.Errorf("Unexpected right-edge bucket %v", buckets[2].Bounds())
	}
}

func TestGetBucketList_Modes(t *testing.T) {
	camera := geometry.NewCamera(geometry.CameraConfig{Width: 150, AspectRatio: 1})

	raster := GetBucketList(camera, BucketModeRaster, 50)
	center := GetBucketList(camera, BucketModeCenter, 50)

	if len(raster) != 9 || len(center) != 9 {
		t.Fatalf("Expected 9 buckets, got %d and %d", len(raster), len(center))
	}
	for i, b := range raster {
		if b.ID != i {
			t.Errorf("Raster bucket %d has ID %d", i, b.ID)
		}
	}
	if center[0].Left != 50 || center[0].Top != 50 {
		t.Errorf("Expected middle bucket first, got %v", center[0].Bounds())
	}

	seen := make(map[int]bool)
	for _, b := range center {
		seen[b.ID] = true
	}
	if len(seen) != 9 {
		t.Errorf("Center mode lost buckets: %v", seen)
	}
}

func TestParseBucketMode(t *testing.T) {
	tests := []struct {
		name     string
		expected BucketMode
		wantErr  bool
	}{
		{"raster", BucketModeRaster, false},
		{"", BucketModeRaster, false},
		{"Center", BucketModeCenter, false},
		{"spiral", BucketModeRaster, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseBucketMode(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if mode != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, mode)
			}
		})
	}
}
