package ports

import (
	"context"
	"time"
)

// RunLock guards a named job against overlapping runs
type RunLock interface {
	// TryLock returns acquired=false without error when another holder owns the lock.
	TryLock(ctx context.Context, name string, ttl time.Duration) (token string, acquired bool, err error)
	Unlock(ctx context.Context, name, token string) error
	Backend() string
}
