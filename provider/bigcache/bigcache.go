// Package bigcache implements a prefcache provider over allegro/bigcache.
// Entries live in one BigCache instance owned by the provider; bulk loading
// walks the cache iterator. TTL is BigCache's global LifeWindow.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	c "github.com/unkn0wn-root/prefcache/codec"
	pr "github.com/unkn0wn-root/prefcache/provider"
)

var ErrNilCodec = errors.New("bigcache provider: nil codec")

type Provider[V any] struct {
	c     *bc.BigCache
	codec c.Codec[V]
}

var _ pr.Provider[string] = (*Provider[string])(nil)

type Config[V any] struct {
	Codec c.Codec[V]

	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New[V any](cfg Config[V]) (*Provider[V], error) {
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	cc, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Provider[V]{c: cc, codec: cfg.Codec}, nil
}

func (p *Provider[V]) Get(_ context.Context, key string, def V) (V, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return def, nil
	}
	if err != nil {
		var zero V
		return zero, err
	}
	return p.codec.Decode(b)
}

// GetAll walks the iterator. Entries that expire mid-walk are skipped.
func (p *Provider[V]) GetAll(_ context.Context) (map[string]V, error) {
	out := make(map[string]V)
	it := p.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			continue
		}
		v, err := p.codec.Decode(e.Value())
		if err != nil {
			return nil, err
		}
		out[e.Key()] = v
	}
	return out, nil
}

func (p *Provider[V]) Has(_ context.Context, key string) (bool, error) {
	_, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Set encodes v and stores it. For writers that own the instance.
func (p *Provider[V]) Set(_ context.Context, key string, v V) error {
	b, err := p.codec.Encode(v)
	if err != nil {
		return err
	}
	return p.c.Set(key, b)
}

// Delete removes a key (best-effort).
func (p *Provider[V]) Delete(_ context.Context, key string) error {
	err := p.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (p *Provider[V]) Close(context.Context) error {
	return p.c.Close()
}
