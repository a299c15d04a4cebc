package renderer

import (
	"container/heap"
	"sync"
)

// bucketHeap orders buckets by completed samples, then by enqueue order
type bucketHeap []*RenderBucket

func (h bucketHeap) Len() int { return len(h) }

func (h bucketHeap) Less(i, j int) bool {
	if h[i].Samples != h[j].Samples {
		return h[i].Samples < h[j].Samples
	}
	return h[i].seq < h[j].seq
}

func (h bucketHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *bucketHeap) Push(x any) { *h = append(*h, x.(*RenderBucket)) }

func (h *bucketHeap) Pop() any {
	old := *h
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return b
}

// BucketQueue is a thread-safe priority queue of pending buckets. The bucket
// with the fewest completed samples is served first.
type BucketQueue struct {
	mu    sync.Mutex
	items bucketHeap
	seq   int
}

// NewBucketQueue creates a queue holding buckets in the given order
func NewBucketQueue(buckets ...*RenderBucket) *BucketQueue {
	q := &BucketQueue{}
	for _, b := range buckets {
		q.Push(b)
	}
	return q
}

// Push enqueues a bucket
func (q *BucketQueue) Push(b *RenderBucket) {
	q.mu.Lock()
	defer q.mu.Unlock()

	b.seq = q.seq
	q.seq++
	heap.Push(&q.items, b)
}

// Pop removes the next bucket. It never blocks; ok is false when the queue
// is empty.
func (q *BucketQueue) Pop() (b *RenderBucket, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	return heap.Pop(&q.items).(*RenderBucket), true
}

// Len returns the number of pending buckets
func (q *BucketQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
