package bigcache

import (
	"context"
	"testing"
	"time"

	"github.com/unkn0wn-root/prefcache/codec"
)

type prefs struct {
	Theme    string `msgpack:"theme"`
	FontSize int    `msgpack:"font_size"`
}

func newTestProvider(t *testing.T) *Provider[prefs] {
	t.Helper()
	p, err := New(Config[prefs]{
		Codec:      codec.Msgpack[prefs]{},
		LifeWindow: time.Minute,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestNewRequiresCodec(t *testing.T) {
	if _, err := New(Config[prefs]{LifeWindow: time.Minute}); err == nil {
		t.Fatalf("New without codec should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	def := prefs{Theme: "light"}
	if v, err := p.Get(ctx, "u:1", def); err != nil || v != def {
		t.Fatalf("Get miss: v=%v err=%v", v, err)
	}
	if ok, err := p.Has(ctx, "u:1"); err != nil || ok {
		t.Fatalf("Has miss: ok=%v err=%v", ok, err)
	}

	want := prefs{Theme: "dark", FontSize: 14}
	if err := p.Set(ctx, "u:1", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, err := p.Get(ctx, "u:1", def); err != nil || v != want {
		t.Fatalf("Get hit: v=%v err=%v", v, err)
	}
	if ok, err := p.Has(ctx, "u:1"); err != nil || !ok {
		t.Fatalf("Has hit: ok=%v err=%v", ok, err)
	}

	if err := p.Delete(ctx, "u:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := p.Has(ctx, "u:1"); ok {
		t.Fatalf("Has after Delete")
	}
	// deleting again is a no-op
	if err := p.Delete(ctx, "u:1"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestGetAllWalksEverything(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	want := map[string]prefs{
		"u:1": {Theme: "dark", FontSize: 12},
		"u:2": {Theme: "light", FontSize: 16},
		"u:3": {},
	}
	for k, v := range want {
		if err := p.Set(ctx, k, v); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	got, err := p.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("GetAll len=%d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("GetAll[%s]=%v, want %v", k, got[k], v)
		}
	}
}

func TestGetAllEmpty(t *testing.T) {
	p := newTestProvider(t)
	got, err := p.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("GetAll on empty store: %v", got)
	}
}
