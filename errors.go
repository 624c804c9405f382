package prefcache

import "errors"

// ErrNilProvider is returned by New when Options.Provider is nil.
// A cache without a source has nothing to load.
var ErrNilProvider = errors.New("provider is required")
