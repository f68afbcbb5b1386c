package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ICache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ICache is a byte-oriented key/value cache with expiry.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
