package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryCache_SetGetStats(t *testing.T) {
	c := NewMemoryCache(0, time.Minute)

	if _, ok := c.Get("cheddar"); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Set("cheddar", []byte{1, 5, 0}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get("cheddar")
	if !ok || string(got) != string([]byte{1, 5, 0}) {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats = %d hits, %d misses, want 1, 1", hits, misses)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	_ = c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Hour, time.Minute)
	_ = c.Set("k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, 0)

	key := FetchKey("https://example.org/export.csv")
	if err := c.Set(key, []byte(`"etag"`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get(key)
	if !ok || string(got) != `"etag"` {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected one cache file, found %d", len(entries))
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestDiskCache_Expired(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Millisecond)
	_ = c.Set("k", []byte("v"), 0)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, 0)
	_ = c.Set("k", []byte("v"), 0)

	entries, _ := os.ReadDir(dir)
	if err := os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected corrupt entry to miss")
	}
}

func TestDiskCache_JSON(t *testing.T) {
	c := NewDiskCache(t.TempDir(), 0)
	type meta struct {
		ETag string `json:"etag"`
	}

	if err := c.SetJSON("k", meta{ETag: "abc"}, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var got meta
	if !c.GetJSON("k", &got) || got.ETag != "abc" {
		t.Errorf("GetJSON = %+v", got)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	key := ReviewKey("gpt-4o-mini", "blorptang")

	first := NewLayeredCache(time.Hour, dir, 0)
	if err := first.Set(key, []byte("pantry"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewLayeredCache(time.Hour, dir, 0)
	got, ok := second.Get(key)
	if !ok || string(got) != "pantry" {
		t.Fatalf("Get from disk = %q, %v", got, ok)
	}
	if _, ok := second.memory.Get(key); !ok {
		t.Error("disk hit was not promoted to memory")
	}

	_ = second.Delete(key)
	if _, ok := NewLayeredCache(time.Hour, dir, 0).Get(key); ok {
		t.Error("expected key gone after Delete")
	}
}

func TestKeysAreDistinct(t *testing.T) {
	if ReviewKey("m1", "rice") == ReviewKey("m2", "rice") {
		t.Error("review key must depend on model")
	}
	if FetchKey("a") == FetchKey("b") {
		t.Error("fetch keys collide")
	}
}
