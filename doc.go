// Package prefcache implements a request-scoped, provider-agnostic cache for
// string-keyed preference/configuration data. The first read operation pulls
// one bulk snapshot from the Provider; every later read is served from that
// snapshot until Invalidate discards it and synchronously notifies the
// registered observers in registration order.
//
// Components:
//   - Provider[V]: the data source (static map, Redis hash, BigCache, ...).
//     Bulk loading is mandatory; an empty result is a complete snapshot.
//   - Observer: a no-argument callback fired on every invalidation.
//   - Codec[V]: (de)serializes V <-> []byte for byte-store providers.
//
// Lifecycle:
//
//	absent --(Get|Has|GetAll, triggers load)--> present
//	present --(Invalidate)--> absent
//
// A failed load leaves the snapshot absent, so the next read retries.
// Provider errors are never caught or translated by the cache.
package prefcache
