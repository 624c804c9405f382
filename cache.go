package prefcache

import (
	"context"
	"fmt"
	"maps"
	"sync"

	pr "github.com/unkn0wn-root/prefcache/provider"
)

type cache[V any] struct {
	provider pr.Provider[V]
	log      Logger
	hooks    Hooks

	// snapshot lifecycle. loaded distinguishes "never loaded / invalidated"
	// from "loaded empty" - an empty bulk result is a complete snapshot.
	mu       sync.Mutex
	snapshot map[string]V
	loaded   bool

	obsMu     sync.Mutex
	observers []Observer
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("prefcache: %w", ErrNilProvider)
	}

	c := &cache[V]{
		provider: opts.Provider,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return c, nil
}

func (c *cache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	return c.GetOr(ctx, key, zero)
}

func (c *cache[V]) GetOr(ctx context.Context, key string, def V) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		var zero V
		return zero, err
	}
	if v, ok := c.snapshot[key]; ok {
		return v, nil
	}
	return def, nil
}

func (c *cache[V]) Has(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return false, err
	}
	_, ok := c.snapshot[key]
	return ok, nil
}

func (c *cache[V]) GetAll(ctx context.Context) (map[string]V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	// defensive copy; callers must not reach into cache state
	return maps.Clone(c.snapshot), nil
}

func (c *cache[V]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// ensureLoaded pulls one bulk snapshot from the provider when none is
// present. Caller holds c.mu, which serializes the absent->present
// transition (at most one load per invalidation cycle, even under
// concurrent readers). A provider failure leaves the snapshot absent so
// the next read retries, and propagates to the caller untranslated.
func (c *cache[V]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	m, err := c.provider.GetAll(ctx)
	if err != nil {
		c.log.Error("snapshot load failed", Fields{"err": err})
		c.hooks.SnapshotLoadFailed(err)
		return err
	}
	if m == nil {
		m = make(map[string]V)
	}
	c.snapshot = m
	c.loaded = true
	c.log.Debug("snapshot loaded", Fields{"entries": len(m)})
	c.hooks.SnapshotLoaded(len(m))
	return nil
}

// Invalidate drops the snapshot, then notifies observers synchronously in
// registration order. The list is copied before iteration, so observers may
// register, clear, or re-invalidate without affecting the in-flight pass.
// A panicking observer aborts the remaining notifications and propagates.
func (c *cache[V]) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.loaded = false
	c.mu.Unlock()

	c.obsMu.Lock()
	obs := make([]Observer, len(c.observers))
	copy(obs, c.observers)
	c.obsMu.Unlock()

	c.log.Debug("snapshot invalidated", Fields{"observers": len(obs)})
	c.hooks.Invalidated(len(obs))

	for _, o := range obs {
		o.Invalidated()
	}
}

func (c *cache[V]) RegisterObserver(o Observer) {
	c.obsMu.Lock()
	c.observers = append(c.observers, o)
	c.obsMu.Unlock()
}

func (c *cache[V]) ClearObservers() {
	c.obsMu.Lock()
	removed := len(c.observers)
	c.observers = nil
	c.obsMu.Unlock()

	if removed > 0 {
		c.hooks.ObserversCleared(removed)
	}
}

func (c *cache[V]) Provider() pr.Provider[V] { return c.provider }
