package external

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherstack.app/internal/config"
	"weatherstack.app/pkg/errors"
)

// MemoryRunLock guards runs within a single process
type MemoryRunLock struct {
	mutex sync.Mutex
	held  map[string]memoryLockItem
	now   func() time.Time
}

type memoryLockItem struct {
	token     string
	expiresAt time.Time
}

func NewMemoryRunLock() *MemoryRunLock {
	return &MemoryRunLock{
		held: make(map[string]memoryLockItem),
		now:  time.Now,
	}
}

func (l *MemoryRunLock) TryLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	if name == "" {
		return "", false, errors.NewValidationError("lock name cannot be empty")
	}
	if ttl <= 0 {
		return "", false, errors.NewValidationError("lock TTL must be positive")
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	if item, exists := l.held[name]; exists && now.Before(item.expiresAt) {
		return "", false, nil
	}

	token := uuid.NewString()
	l.held[name] = memoryLockItem{token: token, expiresAt: now.Add(ttl)}
	return token, true, nil
}

func (l *MemoryRunLock) Unlock(ctx context.Context, name, token string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if item, exists := l.held[name]; exists && item.token == token {
		delete(l.held, name)
	}
	return nil
}

func (l *MemoryRunLock) Backend() string {
	return config.LockTypeMemory.String()
}
