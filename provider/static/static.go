// Package static implements an in-memory map provider. It is the natural
// source for tests and for single-process applications that assemble
// preference data up front.
package static

import (
	"context"
	"maps"
	"sync"

	pr "github.com/unkn0wn-root/prefcache/provider"
)

// Provider serves preferences from an in-process map. Seeded at
// construction; Set/Delete mutate the source afterwards (the cache will not
// see mutations until it reloads after an invalidation).
type Provider[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

var _ pr.Provider[string] = (*Provider[string])(nil)

// New copies seed into a fresh provider. A nil seed yields an empty source.
func New[V any](seed map[string]V) *Provider[V] {
	m := make(map[string]V, len(seed))
	maps.Copy(m, seed)
	return &Provider[V]{m: m}
}

func (p *Provider[V]) Get(_ context.Context, key string, def V) (V, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.m[key]; ok {
		return v, nil
	}
	return def, nil
}

func (p *Provider[V]) GetAll(_ context.Context) (map[string]V, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.m), nil
}

func (p *Provider[V]) Has(_ context.Context, key string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.m[key]
	return ok, nil
}

// Set writes directly to the source. Pair with Cache.Invalidate so readers
// pick the change up on their next load.
func (p *Provider[V]) Set(key string, v V) {
	p.mu.Lock()
	p.m[key] = v
	p.mu.Unlock()
}

// Delete removes a key from the source.
func (p *Provider[V]) Delete(key string) {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
}
