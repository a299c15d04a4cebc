package renderer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	const size = 3
	pool := NewWorkerPool(size)
	if pool.Size() != size {
		t.Fatalf("Expected %d slots, got %d", size, pool.Size())
	}

	var running, peak, total atomic.Int64
	var mu sync.Mutex
	held := make(map[int]bool)

	for i := 0; i < 20; i++ {
		slot := pool.WaitForFree()
		pool.Go(slot, func(slot int) {
			mu.Lock()
			if held[slot] {
				t.Errorf("Slot %d handed out twice", slot)
			}
			held[slot] = true
			mu.Unlock()

			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)
			total.Add(1)

			mu.Lock()
			delete(held, slot)
			mu.Unlock()
		})
	}
	pool.Join()

	if total.Load() != 20 {
		t.Errorf("Expected 20 tasks, got %d", total.Load())
	}
	if peak.Load() > size {
		t.Errorf("Expected at most %d concurrent tasks, saw %d", size, peak.Load())
	}
}

func TestWorkerPool_ReleaseReturnsSlot(t *testing.T) {
	pool := NewWorkerPool(1)

	slot := pool.WaitForFree()
	if slot != 0 {
		t.Errorf("Expected slot 0, got %d", slot)
	}
	pool.Release(slot)

	done := make(chan int)
	go func() { done <- pool.WaitForFree() }()

	select {
	case slot = <-done:
		pool.Release(slot)
	case <-time.After(time.Second):
		t.Fatal("Released slot was not handed out again")
	}
}

func TestWorkerPool_DefaultSize(t *testing.T) {
	if NewWorkerPool(0).Size() < 1 {
		t.Error("Expected at least one slot")
	}
}
