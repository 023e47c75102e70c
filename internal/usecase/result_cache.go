package usecase

import (
	"context"
	"time"
)

// ResultCache is a best-effort JSON cache. Implementations report misses
// as (false, nil) and are expected to degrade to a no-op when the backing
// store is unreachable.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
