package renderer

import (
	"math"
	"testing"
	"time"
)

func TestRenderStats_Record(t *testing.T) {
	stats := newRenderStats(10, 10, 4, 2)
	stats.record(1, 50, time.Millisecond)
	stats.record(1, 50, time.Millisecond)
	stats.record(0, 100, 3*time.Millisecond)

	if stats.Passes != 3 || stats.TotalSamples != 200 {
		t.Errorf("Unexpected totals %+v", stats)
	}
	if stats.PerWorker[1].Buckets != 2 || stats.PerWorker[1].Samples != 100 {
		t.Errorf("Unexpected worker stats %+v", stats.PerWorker[1])
	}
	if stats.PerWorker[0].ID != 0 || stats.PerWorker[1].ID != 1 {
		t.Errorf("Worker IDs should follow slots, got %+v", stats.PerWorker)
	}
	if stats.PerWorker[0].Busy != 3*time.Millisecond {
		t.Errorf("Expected 3ms busy on worker 0, got %v", stats.PerWorker[0].Busy)
	}
}

func TestRenderStats_Rates(t *testing.T) {
	tests := []struct {
		name         string
		stats        RenderStats
		perPixel     float64
		perSecond float64
	}{
		{"empty", RenderStats{}, 0, 0},
		{"no elapsed time", RenderStats{Width: 10, Height: 10, TotalSamples: 200}, 2, 0},
		{"two seconds", RenderStats{Width: 4, Height: 5, TotalSamples: 400, Elapsed: 2 * time.Second}, 20, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.AverageSamples(); math.Abs(got-tt.perPixel) > 1e-12 {
				t.Errorf("Expected %f samples per pixel, got %f", tt.perPixel, got)
			}
			if got := tt.stats.SamplesPerSecond(); math.Abs(got-tt.perSecond) > 1e-9 {
				t.Errorf("Expected %f samples per second, got %f", tt.perSecond, got)
			}
		})
	}
}
