package repository

import "context"

// CacheRepository memoizes calculator results keyed by their input tuple.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
