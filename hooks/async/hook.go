// Package asynchook decouples hook consumers from the cache's hot paths:
// events are queued to a bounded channel and delivered by worker goroutines.
// When the queue is full, events are dropped rather than blocking a read.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{LoadEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := prefcache.New[Prefs](prefcache.Options[Prefs]{
//	    Provider: provider,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/prefcache"
)

type Hooks struct {
	inner prefcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ prefcache.Hooks = (*Hooks)(nil)

func New(inner prefcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SnapshotLoaded(entries int)   { h.try(func() { h.inner.SnapshotLoaded(entries) }) }
func (h *Hooks) SnapshotLoadFailed(err error) { h.try(func() { h.inner.SnapshotLoadFailed(err) }) }
func (h *Hooks) Invalidated(observers int)    { h.try(func() { h.inner.Invalidated(observers) }) }
func (h *Hooks) ObserversCleared(removed int) { h.try(func() { h.inner.ObserversCleared(removed) }) }
