// Package sloghooks provides a log/slog implementation of prefcache.Hooks
// with optional sampling for the per-request load event.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/prefcache"
)

type Options struct {
	// Sampling to avoid floods on the load path; 0/1 = log all.
	// Loads happen once per request, invalidations are rarer and always logged.
	LoadEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	loadCtr atomic.Uint64
}

var _ prefcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SnapshotLoaded(entries int) {
	if h.l == nil || !sample(h.opts.LoadEvery, &h.loadCtr) {
		return
	}
	h.l.Debug("prefcache.snapshot_loaded",
		"entries", entries)
}

func (h *Hooks) SnapshotLoadFailed(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("prefcache.snapshot_load_failed",
		"err", err)
}

func (h *Hooks) Invalidated(observers int) {
	if h.l == nil {
		return
	}
	h.l.Debug("prefcache.invalidated",
		"observers", observers)
}

func (h *Hooks) ObserversCleared(removed int) {
	if h.l == nil {
		return
	}
	h.l.Debug("prefcache.observers_cleared",
		"removed", removed)
}
