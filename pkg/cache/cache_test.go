package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/framechart/pkg/observability"
)

type missCounter struct {
	observability.NoopCacheHooks
	misses map[string]int
}

func (m *missCounter) OnCacheMiss(_ context.Context, keyType string) { m.misses[keyType]++ }

func TestNullCache(t *testing.T) {
	counter := &missCounter{misses: map[string]int{}}
	defer observability.Install(observability.Hooks{Cache: counter})()

	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "layout:abc", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || hit || data != nil {
		t.Errorf("Get after Set = %q, %v, %v; want miss", data, hit, err)
	}
	c.Get(ctx, "artifact:svg:def")
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Errorf("Delete: %v", err)
	}

	if counter.misses["layout"] != 1 || counter.misses["artifact"] != 1 {
		t.Errorf("misses = %v, want one per namespace", counter.misses)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Fatal("empty cache should miss")
	}

	if err := c.Set(ctx, "layout:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}

	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	entries, size, err := c.Stats()
	if err != nil || entries != 3 || size == 0 {
		t.Errorf("Stats = %d entries, %d bytes, %v", entries, size, err)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("cleared entry should miss")
	}
	if entries, _, _ := c.Stats(); entries != 0 {
		t.Errorf("Stats after Clear = %d entries", entries)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// LayoutKey should include options in hash
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{Width: 800, Height: 600})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{Width: 1024, Height: 600})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey should be namespaced: %s", lk1)
	}
	if lk1 != k.LayoutKey("hash123", LayoutKeyOpts{Width: 800, Height: 600}) {
		t.Error("LayoutKey should be deterministic")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Scale: 2})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ak1, "artifact:svg:") {
		t.Errorf("ArtifactKey should carry its format: %s", ak1)
	}
	if keyType(ak1) != "artifact" {
		t.Errorf("keyType(%s) = %s", ak1, keyType(ak1))
	}
}

func TestScopedKeyer(t *testing.T) {
	for _, inner := range []Keyer{nil, NewDefaultKeyer()} {
		scoped := NewScopedKeyer(inner, "v1.2.0:")
		base := NewDefaultKeyer()

		lk := scoped.LayoutKey("doc", LayoutKeyOpts{Width: 1})
		if lk != "v1.2.0:"+base.LayoutKey("doc", LayoutKeyOpts{Width: 1}) {
			t.Errorf("LayoutKey = %s", lk)
		}
		ak := scoped.ArtifactKey("layout", ArtifactKeyOpts{Format: "pdf"})
		if !strings.HasPrefix(ak, "v1.2.0:artifact:pdf:") {
			t.Errorf("ArtifactKey = %s", ak)
		}
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"layout:abc", "layout"},
		{"artifact:svg:abc", "artifact"},
		{"dev:layout:abc", "layout"},
		{"framechart:v1:artifact:png:abc", "artifact"},
		{"other:abc", "other"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := keyType(tt.key); got != tt.want {
			t.Errorf("keyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
