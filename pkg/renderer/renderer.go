package renderer

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/log"
	"github.com/df07/raito/pkg/scene"
)

var (
	// ErrResultSize is returned when the result buffer does not match the camera
	ErrResultSize = errors.New("render result size does not match camera")
	// ErrInvalidConfig is returned for out-of-range renderer settings
	ErrInvalidConfig = errors.New("invalid renderer config")
)

// Config contains the bucket scheduler settings
type Config struct {
	TileSize       int        // Bucket edge length in pixels
	NumWorkers     int        // Concurrent render goroutines (0 = use CPU count)
	Mode           BucketMode // Initial bucket order
	SamplesPerPass int        // Samples rendered per bucket pop; 0 renders all samples at once
	Seed           int64      // Base seed for the per-bucket samplers

	// NewSampler creates the sampler of one bucket pass. Defaults to a
	// seeded random sampler.
	NewSampler func(seed int64) core.Sampler

	// OnBucketDone is called after every bucket pass has been merged. It is
	// called with the result lock held and must not block.
	OnBucketDone func(BucketCompletion)
}

// DefaultConfig returns 50px buckets in raster order on 8 workers, every
// bucket rendered in a single pass
func DefaultConfig() Config {
	return Config{
		TileSize:       50,
		NumWorkers:     8,
		Mode:           BucketModeRaster,
		SamplesPerPass: 0,
		Seed:           42,
	}
}

// BucketCompletion describes one merged bucket pass
type BucketCompletion struct {
	BucketID    int
	Bounds      image.Rectangle // Bucket rectangle in full-image coordinates
	WorkerID    int
	PassSamples int  // Samples per pixel rendered by this pass
	Samples     int  // Samples per pixel completed so far
	Final       bool // True when the bucket reached the scene's samples per pixel
	Duration    time.Duration
}

// BucketRenderer renders a scene bucket by bucket on a bounded worker pool
type BucketRenderer struct {
	scene  *scene.Scene
	config Config
	logger log.Logger

	mu sync.Mutex // guards the full-frame result and stats
}

// NewBucketRenderer creates a renderer for the scene
func NewBucketRenderer(s *scene.Scene, config Config) *BucketRenderer {
	if config.NewSampler == nil {
		config.NewSampler = func(seed int64) core.Sampler {
			return core.NewSeededSampler(seed)
		}
	}
	return &BucketRenderer{
		scene:  s,
		config: config,
		logger: log.New("renderer"),
	}
}

func (r *BucketRenderer) validate(result *RenderResult) error {
	if r.scene == nil {
		return scene.ErrEmptyScene
	}
	if err := r.scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene %q: %w", r.scene.Name, err)
	}
	if r.config.TileSize < 1 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, r.config.TileSize)
	}
	if r.config.SamplesPerPass < 0 {
		return fmt.Errorf("%w: samples per pass must not be negative, got %d", ErrInvalidConfig, r.config.SamplesPerPass)
	}
	camera := r.scene.Camera
	if result == nil || result.Width != camera.Width() || result.Height != camera.Height() {
		return fmt.Errorf("%w: camera is %dx%d", ErrResultSize, camera.Width(), camera.Height())
	}
	return nil
}

// samplesPerPass returns how many samples a single bucket pop renders
func (r *BucketRenderer) samplesPerPass() int {
	spp := r.scene.Settings.SamplesPerPixel
	if r.config.SamplesPerPass <= 0 || r.config.SamplesPerPass > spp {
		return spp
	}
	return r.config.SamplesPerPass
}

// Render fills result with the gamma-encoded image. It returns once every
// bucket has been rendered and merged.
func (r *BucketRenderer) Render(result *RenderResult) (RenderStats, error) {
	if err := r.validate(result); err != nil {
		return RenderStats{}, err
	}

	start := time.Now()
	spp := r.scene.Settings.SamplesPerPixel
	passSamples := r.samplesPerPass()

	buckets := GetBucketList(r.scene.Camera, r.config.Mode, r.config.TileSize)
	queue := NewBucketQueue(buckets...)
	pool := NewWorkerPool(r.config.NumWorkers)
	stats := newRenderStats(result.Width, result.Height, len(buckets), pool.Size())

	r.logger.Infof("rendering %q at %dx%d, %d spp, %d buckets of %dpx on %d workers",
		r.scene.Name, result.Width, result.Height, spp, len(buckets), r.config.TileSize, pool.Size())

	// Buckets still short of spp. When the queue runs dry while buckets are
	// in flight, the loop waits on wake for one of them to come back.
	var remaining atomic.Int64
	remaining.Store(int64(len(buckets)))
	wake := make(chan struct{}, 1)

	for remaining.Load() > 0 {
		slot := pool.WaitForFree()
		bucket, ok := queue.Pop()
		if !ok {
			pool.Release(slot)
			<-wake
			continue
		}

		samples := min(passSamples, spp-bucket.Samples)
		pool.Go(slot, func(workerID int) {
			done := r.renderPass(bucket, samples, workerID, result, &stats)
			if done {
				remaining.Add(-1)
			} else {
				queue.Push(bucket)
			}
			select {
			case wake <- struct{}{}:
			default:
			}
		})
	}

	pool.Join()
	result.ApplyGamma()

	stats.Elapsed = time.Since(start)
	r.logger.Infof("rendered %q in %v (%d passes, %.0f samples/s)",
		r.scene.Name, stats.Elapsed, stats.Passes, stats.SamplesPerSecond())

	return stats, nil
}

// RenderScene renders the scene into result with the default configuration
func RenderScene(s *scene.Scene, result *RenderResult) error {
	_, err := NewBucketRenderer(s, DefaultConfig()).Render(result)
	return err
}
