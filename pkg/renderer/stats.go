package renderer

import "time"

// WorkerStats contains the work done by one worker slot
type WorkerStats struct {
	ID      int           // Worker slot
	Buckets int           // Bucket passes rendered
	Samples int64         // Camera samples traced
	Busy    time.Duration // Time spent rendering
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height int
	Buckets       int   // Buckets in the frame
	Passes        int   // Bucket passes rendered, equal to Buckets for single-pass renders
	Workers       int   // Worker slots
	TotalSamples  int64 // Camera samples traced over the whole frame
	Elapsed       time.Duration
	PerWorker     []WorkerStats
}

// SamplesPerSecond returns the traced camera samples per wall-clock second
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// AverageSamples returns the mean samples per pixel
func (s RenderStats) AverageSamples() float64 {
	pixels := s.Width * s.Height
	if pixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(pixels)
}

func newRenderStats(width, height, buckets, workers int) RenderStats {
	perWorker := make([]WorkerStats, workers)
	for i := range perWorker {
		perWorker[i].ID = i
	}
	return RenderStats{
		Width:     width,
		Height:    height,
		Buckets:   buckets,
		Workers:   workers,
		PerWorker: perWorker,
	}
}

// record adds one finished bucket pass
func (s *RenderStats) record(workerID int, samples int64, busy time.Duration) {
	s.Passes++
	s.TotalSamples += samples
	w := &s.PerWorker[workerID]
	w.Buckets++
	w.Samples += samples
	w.Busy += busy
}
