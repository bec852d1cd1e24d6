// Package storage is the durable key/value store behind the wishlist.
// It mirrors the load/save contract of browser local storage: whole
// values in, whole values out, best effort.
package storage

import (
	"context"
	"errors"
	"fmt"

	"storefront/pkg/global"
)

// ErrNotFound is returned by Load when no snapshot exists for a key.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// FromEnv selects a backend via STORAGE_BACKEND: "file" (default)
// or "redis".
func FromEnv() (Store, error) {
	backend := global.GetEnvOrDefault("STORAGE_BACKEND", "file")
	switch backend {
	case "file":
		return NewFileStore(global.GetEnvOrDefault("STORAGE_DIR", "./data"))
	case "redis":
		return NewRedisStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
