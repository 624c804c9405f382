package prefcache

// Observer is notified on every invalidation. Notification is synchronous
// and in registration order; implementations that need to do real work
// should hand it off themselves.
type Observer interface {
	Invalidated()
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func()

func (f ObserverFunc) Invalidated() { f() }
