// Package cache provides byte-level storage for downloaded card images.
//
// The [Cache] interface is deliberately small: the image provider only needs
// to ask whether bytes exist for a key, store them after a download, and
// forget them when asked. Three backends are available:
//
//   - [FileCache]: one file per key in a directory (the default, deck_images/)
//   - [RedisCache]: a shared Redis instance, useful when several machines
//     render charts for the same card pool
//   - [NullCache]: stores nothing; every lookup is a miss
//
// Keys are produced by a [Keyer]. The [DefaultKeyer] normalizes card names
// into stable file names ("Dark Magician" → "dark_magician.jpg").
package cache

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned when a key cannot be mapped to a storage location,
// for example a FileCache key containing a path separator.
var ErrInvalidKey = errors.New("invalid cache key")

// Cache stores opaque byte blobs by key.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// A non-nil error means the backend itself failed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
