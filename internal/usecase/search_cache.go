package usecase

import (
	"context"
	"time"
)

// SearchCache is what the search usecase needs from the redis wrapper.
// The wrapper degrades to a no-op when redis is down, so callers treat
// every error as a miss.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}
