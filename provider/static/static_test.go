package static

import (
	"context"
	"testing"
)

func TestGetAllIsACopy(t *testing.T) {
	ctx := context.Background()
	p := New(map[string]string{"a": "1"})

	m, err := p.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	m["a"] = "tampered"

	if v, _ := p.Get(ctx, "a", ""); v != "1" {
		t.Fatalf("source mutated through GetAll result: %q", v)
	}
}

func TestSeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := map[string]string{"a": "1"}
	p := New(seed)
	seed["a"] = "tampered"

	if v, _ := p.Get(ctx, "a", ""); v != "1" {
		t.Fatalf("source shares memory with seed: %q", v)
	}
}

func TestMutators(t *testing.T) {
	ctx := context.Background()
	p := New[string](nil)

	if ok, _ := p.Has(ctx, "k"); ok {
		t.Fatalf("Has on empty source")
	}
	if v, _ := p.Get(ctx, "k", "def"); v != "def" {
		t.Fatalf("Get default: %q", v)
	}

	p.Set("k", "v")
	if v, _ := p.Get(ctx, "k", "def"); v != "v" {
		t.Fatalf("Get after Set: %q", v)
	}
	if ok, _ := p.Has(ctx, "k"); !ok {
		t.Fatalf("Has after Set")
	}

	p.Delete("k")
	if ok, _ := p.Has(ctx, "k"); ok {
		t.Fatalf("Has after Delete")
	}
}
