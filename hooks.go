package prefcache

// Hooks are lightweight callbacks for high-signal lifecycle events.
// Implementations MUST be cheap and non-blocking; the cache calls them
// inline on read and invalidation paths.
type Hooks interface {
	// A bulk snapshot was loaded from the provider; entries is its size
	// (0 for an empty-but-complete snapshot).
	SnapshotLoaded(entries int)

	// The provider's bulk load failed; the snapshot stays absent and the
	// next read retries.
	SnapshotLoadFailed(err error)

	// The snapshot was discarded; observers is the number about to be
	// notified.
	Invalidated(observers int)

	// ClearObservers removed a non-empty observer list.
	ObserversCleared(removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SnapshotLoaded(int)       {}
func (NopHooks) SnapshotLoadFailed(error) {}
func (NopHooks) Invalidated(int)          {}
func (NopHooks) ObserversCleared(int)     {}
