// Package provider defines the data-source abstraction used by prefcache.
//
// A Provider exposes one fixed key space of string-keyed values. Bulk loading
// via GetAll is mandatory: an empty map means the source is empty, and MUST
// NOT be used as an "unsupported" sentinel - the cache accepts an empty
// result as a complete snapshot and will not fall back to per-key reads.
//
// Error handling (timeouts, serialization, connectivity) is entirely the
// provider's own; the cache passes provider errors through untranslated.
package provider

import "context"

// Provider is a read-only view over a preference source.
// Safe to call multiple times per request; no ordering or performance
// contract beyond that.
type Provider[V any] interface {
	// Get returns the value for key, or def when the key is unknown.
	// Unknown keys are a normal case and must not yield an error.
	Get(ctx context.Context, key string, def V) (V, error)

	// GetAll returns every known key-value pair in one call.
	GetAll(ctx context.Context) (map[string]V, error)

	// Has reports whether key is known to the source, independent of
	// whether its value is a zero value.
	Has(ctx context.Context, key string) (bool, error)
}
