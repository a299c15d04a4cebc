package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// WorkerPool caps the number of concurrently running render goroutines.
// Each running goroutine holds one numbered slot so work can be attributed
// to a worker.
type WorkerPool struct {
	sem  *semaphore.Weighted
	size int
	wg   sync.WaitGroup

	mu   sync.Mutex
	free []int // slot IDs not currently held
}

// NewWorkerPool creates a pool with the given number of slots (0 = use CPU count)
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	free := make([]int, numWorkers)
	for i := range free {
		free[i] = numWorkers - 1 - i // slot 0 is handed out first
	}

	return &WorkerPool{
		sem:  semaphore.NewWeighted(int64(numWorkers)),
		size: numWorkers,
		free: free,
	}
}

// Size returns the number of slots
func (wp *WorkerPool) Size() int {
	return wp.size
}

// WaitForFree blocks until a slot is free and returns it. The caller owns
// the slot until it hands it to Go or gives it back with Release.
func (wp *WorkerPool) WaitForFree() int {
	// Acquire on a background context only fails on cancellation
	_ = wp.sem.Acquire(context.Background(), 1)

	wp.mu.Lock()
	defer wp.mu.Unlock()
	slot := wp.free[len(wp.free)-1]
	wp.free = wp.free[:len(wp.free)-1]
	return slot
}

// Release returns an unused slot to the pool
func (wp *WorkerPool) Release(slot int) {
	wp.mu.Lock()
	wp.free = append(wp.free, slot)
	wp.mu.Unlock()

	wp.sem.Release(1)
}

// Go runs fn on a new goroutine that holds slot until fn returns
func (wp *WorkerPool) Go(slot int, fn func(slot int)) {
	wp.wg.Add(1)
	go func() {
		defer wp.wg.Done()
		defer wp.Release(slot)
		fn(slot)
	}()
}

// Join waits for every goroutine started with Go
func (wp *WorkerPool) Join() {
	wp.wg.Wait()
}
