// Package redis implements a prefcache provider over a single Redis hash.
// Each preference key is a hash field; values are (de)serialized by a
// pluggable codec. One hash per logical preference scope (e.g. per user).
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	c "github.com/unkn0wn-root/prefcache/codec"
	pr "github.com/unkn0wn-root/prefcache/provider"
)

var (
	ErrNilClient = errors.New("redis provider: nil client")
	ErrNoKey     = errors.New("redis provider: hash key is required")
	ErrNilCodec  = errors.New("redis provider: nil codec")
)

type Provider[V any] struct {
	rdb         goredis.UniversalClient
	key         string
	codec       c.Codec[V]
	closeClient bool
}

var _ pr.Provider[string] = (*Provider[string])(nil)

type Config[V any] struct {
	Client goredis.UniversalClient
	Key    string     // hash key holding the preference fields
	Codec  c.Codec[V] // field-value serialization

	CloseClient bool // set true only if this provider exclusively owns the client
}

func New[V any](cfg Config[V]) (*Provider[V], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Key == "" {
		return nil, ErrNoKey
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	return &Provider[V]{
		rdb:         cfg.Client,
		key:         cfg.Key,
		codec:       cfg.Codec,
		closeClient: cfg.CloseClient,
	}, nil
}

func (p *Provider[V]) Get(ctx context.Context, key string, def V) (V, error) {
	b, err := p.rdb.HGet(ctx, p.key, key).Bytes()
	if err == goredis.Nil {
		return def, nil // unknown key, normal case
	}
	if err != nil {
		var zero V
		return zero, err
	}
	return p.codec.Decode(b)
}

// GetAll loads the whole hash in one HGETALL. A missing hash decodes to an
// empty map, which the cache treats as a complete snapshot.
func (p *Provider[V]) GetAll(ctx context.Context) (map[string]V, error) {
	raw, err := p.rdb.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]V, len(raw))
	for k, s := range raw {
		v, err := p.codec.Decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (p *Provider[V]) Has(ctx context.Context, key string) (bool, error) {
	return p.rdb.HExists(ctx, p.key, key).Result()
}

// Set encodes v and writes it as a hash field. Not part of the cache-facing
// contract; for writers that own the hash.
func (p *Provider[V]) Set(ctx context.Context, key string, v V) error {
	b, err := p.codec.Encode(v)
	if err != nil {
		return err
	}
	return p.rdb.HSet(ctx, p.key, key, b).Err()
}

// Delete removes a hash field (best-effort).
func (p *Provider[V]) Delete(ctx context.Context, key string) error {
	return p.rdb.HDel(ctx, p.key, key).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Provider[V]) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
