package cache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value")); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_GetSet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir, 0)
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}

	_, hit, err := c.Get(ctx, "dark_magician.jpg")
	if err != nil || hit {
		t.Fatalf("Get() on empty cache = %v, %v; want miss", hit, err)
	}

	want := []byte{0xff, 0xd8, 0xff, 0xe0}
	if err := c.Set(ctx, "dark_magician.jpg", want); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Stored verbatim under the key
	raw, err := os.ReadFile(filepath.Join(dir, "dark_magician.jpg"))
	if err != nil {
		t.Fatalf("cache file missing: %v", err)
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("file contents = %v, want %v", raw, want)
	}

	got, hit, err := c.Get(ctx, "dark_magician.jpg")
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v; want hit", hit, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %v, want %v", got, want)
	}

	if err := c.Delete(ctx, "dark_magician.jpg"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := c.Delete(ctx, "dark_magician.jpg"); err != nil {
		t.Errorf("Delete() of missing key should be nil, got %v", err)
	}
}

func TestFileCache_CreatesDirIdempotently(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deck_images")
	if _, err := NewFileCache(dir, 0); err != nil {
		t.Fatalf("first NewFileCache() failed: %v", err)
	}
	if _, err := NewFileCache(dir, 0); err != nil {
		t.Fatalf("second NewFileCache() failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("cache dir not created: %v", err)
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set(ctx, "key", []byte("value")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Fatal("Get() should hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit {
		t.Error("Get() returned hit for expired key")
	}
}

func TestFileCache_InvalidKey(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir(), 0)

	for _, key := range []string{"", ".", "..", "a/b.jpg", `a\b.jpg`} {
		if err := c.Set(ctx, key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidKey", key, err)
		}
		if _, _, err := c.Get(ctx, key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Get(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir, 0)
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}
	for _, key := range []string{"kuriboh.jpg", "jinzo.jpg", "dark_magician.jpg"} {
		if err := c.Set(ctx, key, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}

	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "kuriboh.jpg"); hit {
		t.Error("entry survived Clear()")
	}
	if _, err := os.Stat(filepath.Join(dir, "keep")); err != nil {
		t.Error("Clear() should leave subdirectories alone")
	}

	// Clearing a removed directory is not an error.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if n, err := c.Clear(ctx); err != nil || n != 0 {
		t.Errorf("Clear() on missing dir = %d, %v; want 0, nil", n, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	tests := []struct {
		card string
		want string
	}{
		{"Dark Magician", "dark_magician.jpg"},
		{"Blue-Eyes White Dragon", "blue-eyes_white_dragon.jpg"},
		{"D/D/D Wave King Caesar", "d_d_d_wave_king_caesar.jpg"},
		{"kuriboh", "kuriboh.jpg"},
	}
	for _, tt := range tests {
		if got := k.ImageKey(tt.card); got != tt.want {
			t.Errorf("ImageKey(%q) = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestDefaultKeyerLongNames(t *testing.T) {
	k := NewDefaultKeyer()
	a := k.ImageKey(strings.Repeat("a", 200) + " one")
	b := k.ImageKey(strings.Repeat("a", 200) + " two")

	if a == b {
		t.Error("long names with different suffixes should produce different keys")
	}
	if len(a) > maxKeyLength+len(ImageExt) {
		t.Errorf("key too long: %d bytes", len(a))
	}
	if !strings.HasSuffix(a, ImageExt) {
		t.Errorf("key %q should end with %s", a, ImageExt)
	}
}

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("NewRedisCache() should fail without an address")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 is reserved (tcpmux) and not served on test machines.
	_, err := NewRedisCache(ctx, RedisOptions{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("NewRedisCache() should fail when the server is unreachable")
	}
	if !strings.Contains(err.Error(), "127.0.0.1:1") {
		t.Errorf("error should name the address: %v", err)
	}
}
