package prefcache

import (
	"context"

	pr "github.com/unkn0wn-root/prefcache/provider"
)

// Cache is the high-level, provider-agnostic preference cache API.
// V is the caller's value type. The snapshot is loaded lazily on the first
// read and kept until Invalidate.
type Cache[V any] interface {
	// Get returns the value for key, or the zero V if the key is absent from
	// the snapshot. Absence is a normal, silent case - never an error.
	Get(ctx context.Context, key string) (V, error)

	// GetOr is Get with an explicit fallback for absent keys.
	GetOr(ctx context.Context, key string, def V) (V, error)

	// Has reports key membership in the snapshot. Membership, not truthiness:
	// a key mapped to a zero/empty value still reports true.
	Has(ctx context.Context, key string) (bool, error)

	// GetAll returns a copy of the full snapshot. Mutating the returned map
	// does not affect cache state.
	GetAll(ctx context.Context) (map[string]V, error)

	// Loaded reports whether a snapshot is currently present.
	Loaded() bool

	// Invalidate discards the snapshot and synchronously notifies every
	// registered observer in registration order.
	Invalidate()

	// RegisterObserver appends o to the observer list. No deduplication:
	// registering the same observer twice yields two notifications per
	// invalidation.
	RegisterObserver(o Observer)

	// ClearObservers empties the observer list. Snapshot state is untouched.
	ClearObservers()

	// Provider returns the underlying provider, for introspection only.
	Provider() pr.Provider[V]
}

// Options tune the cache. Only Provider is required.
type Options[V any] struct {
	// Required
	Provider pr.Provider[V]

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
