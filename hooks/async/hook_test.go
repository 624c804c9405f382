package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/prefcache"
)

type countingHooks struct {
	mu          sync.Mutex
	loaded      int
	failed      int
	invalidated int
	cleared     int
}

var _ prefcache.Hooks = (*countingHooks)(nil)

func (h *countingHooks) SnapshotLoaded(int) {
	h.mu.Lock()
	h.loaded++
	h.mu.Unlock()
}
func (h *countingHooks) SnapshotLoadFailed(error) {
	h.mu.Lock()
	h.failed++
	h.mu.Unlock()
}
func (h *countingHooks) Invalidated(int) {
	h.mu.Lock()
	h.invalidated++
	h.mu.Unlock()
}
func (h *countingHooks) ObserversCleared(int) {
	h.mu.Lock()
	h.cleared++
	h.mu.Unlock()
}

func TestDeliversAllEventsBeforeClose(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 64)

	for i := 0; i < 10; i++ {
		h.SnapshotLoaded(i)
		h.Invalidated(1)
	}
	h.SnapshotLoadFailed(nil)
	h.ObserversCleared(3)

	h.Close() // drains the queue

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.loaded != 10 || inner.invalidated != 10 || inner.failed != 1 || inner.cleared != 1 {
		t.Fatalf("delivered = %+v", inner)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&countingHooks{}, 1, 1)
	h.Close()
	h.Close()
}
