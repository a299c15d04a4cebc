package renderer

import (
	"time"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/tracer"
)

// bucketSeedStride separates the sampler seeds of neighbouring buckets
const bucketSeedStride = 1_000_003

// renderPass traces the given number of samples for every pixel of bucket
// into its local buffer, then merges the buffer into result. It reports whether the
// bucket has reached the scene's samples per pixel.
func (r *BucketRenderer) renderPass(bucket *RenderBucket, samples, workerID int, result *RenderResult, stats *RenderStats) bool {
	start := time.Now()

	camera := r.scene.Camera
	spp := r.scene.Settings.SamplesPerPixel
	weight := 1.0 / float64(spp)

	// Seeded per bucket and per pass so the image does not depend on which
	// worker picks the bucket up
	sampler := r.config.NewSampler(r.config.Seed + int64(bucket.ID)*bucketSeedStride + int64(bucket.Samples))
	tr := tracer.New(r.scene)

	local := bucket.Result
	local.Clear()

	for pixel := range camera.PixelsIn(bucket.Left, bucket.Top, bucket.Width, bucket.Height) {
		x, y := pixel.X-bucket.Left, pixel.Y-bucket.Top
		for s := 0; s < samples; s++ {
			local.AddPixelColor(x, y, sampleColor(tr, pixel.JitteredRay(sampler), sampler).Scale(weight))
		}
	}

	elapsed := time.Since(start)

	r.mu.Lock()
	defer r.mu.Unlock()

	result.Merge(local)
	bucket.Samples += samples
	final := bucket.Samples >= spp
	stats.record(workerID, int64(samples*bucket.PixelCount()), elapsed)

	r.logger.Debugf("bucket %d %v: %d/%d spp on worker %d in %v",
		bucket.ID, bucket.Bounds(), bucket.Samples, spp, workerID, elapsed)

	if r.config.OnBucketDone != nil {
		r.config.OnBucketDone(BucketCompletion{
			BucketID:    bucket.ID,
			Bounds:      bucket.Bounds(),
			WorkerID:    workerID,
			PassSamples: samples,
			Samples:     bucket.Samples,
			Final:       final,
			Duration:    elapsed,
		})
	}

	return final
}

// sampleColor traces one camera ray. A ray that produced nothing at all
// shows up as the error colour.
func sampleColor(tr tracer.Tracer, ray core.Ray, sampler core.Sampler) core.Color {
	hit, ok := tr.TraceRay(ray, sampler)
	if !ok {
		return core.ErrorColor
	}
	return hit.Color
}
