// Package cache stores short-lived JSON values such as profile drafts and
// success notices.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

type Store interface {
	Get(ctx context.Context, key string, dst any) error
	// Set stores v under key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
