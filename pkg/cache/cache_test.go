package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("null cache must always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("null cache must not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	want := []byte(`{"artifact":"lib:core:1.0"}`)
	if err := c.Set(ctx, "k1", want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, hit, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := c.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k1"); hit {
		t.Error("expected miss after Delete")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("deleting absent key must not error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("hash must be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs must differ")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	r1 := k.ResolveKey("lib:core:1.0", ResolveKeyOpts{Transitive: true, MaxDepth: 3})
	r2 := k.ResolveKey("lib:core:1.0", ResolveKeyOpts{Transitive: true, MaxDepth: 5})
	if r1 == r2 {
		t.Error("different depths must produce different keys")
	}
	if r1 != k.ResolveKey("lib:core:1.0", ResolveKeyOpts{Transitive: true, MaxDepth: 3}) {
		t.Error("keys must be deterministic")
	}

	if k.VersionsKey("lib", "core", "lexical") == k.VersionsKey("lib", "core", "semver") {
		t.Error("sort order must be part of the versions key")
	}
	if k.TreeKey("lib:core:1.0", 3) == k.ResolveKey("lib:core:1.0", ResolveKeyOpts{MaxDepth: 3}) {
		t.Error("tree and resolve keys must not collide")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "repoA:")

	got := scoped.TreeKey("lib:core:1.0", 3)
	want := "repoA:" + base.TreeKey("lib:core:1.0", 3)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	defaulted := NewScopedKeyer(nil, "x:")
	if defaulted.VersionsKey("g", "a", "lexical") != "x:"+base.VersionsKey("g", "a", "lexical") {
		t.Error("nil inner keyer must fall back to the default")
	}
}
