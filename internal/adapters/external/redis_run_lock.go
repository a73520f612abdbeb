package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"weatherstack.app/internal/config"
	"weatherstack.app/pkg/errors"
)

const runLockKeyPrefix = "weatherstack:runlock:"

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRunLock implements the RunLock port with SET NX PX on a shared Redis
type RedisRunLock struct {
	client *redis.Client
}

// NewRedisRunLock creates a new Redis run lock
func NewRedisRunLock(config *config.RedisConfig) (*RedisRunLock, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisRunLock{client: client}, nil
}

// TryLock acquires the lock for ttl unless another holder owns it
func (l *RedisRunLock) TryLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	if name == "" {
		return "", false, errors.NewValidationError("lock name cannot be empty")
	}
	if ttl <= 0 {
		return "", false, errors.NewValidationError("lock TTL must be positive")
	}

	token := uuid.NewString()
	acquired, err := l.client.SetNX(ctx, runLockKeyPrefix+name, token, ttl).Result()
	if err != nil {
		return "", false, errors.NewExternalAPIError("redis lock acquire failed", err)
	}
	if !acquired {
		return "", false, nil
	}
	return token, true, nil
}

// Unlock releases the lock if token still owns it; an expired lock is not an error
func (l *RedisRunLock) Unlock(ctx context.Context, name, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{runLockKeyPrefix + name}, token).Err(); err != nil && err != redis.Nil {
		return errors.NewExternalAPIError("redis lock release failed", err)
	}
	return nil
}

func (l *RedisRunLock) Backend() string {
	return config.LockTypeRedis.String()
}

// Ping checks if Redis connection is alive
func (l *RedisRunLock) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (l *RedisRunLock) Close() error {
	if err := l.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}
