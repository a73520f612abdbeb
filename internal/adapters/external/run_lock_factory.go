package external

import (
	"fmt"

	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

type RunLockFactory struct{}

func NewRunLockFactory() *RunLockFactory {
	return &RunLockFactory{}
}

func (f *RunLockFactory) CreateRunLock(cfg *config.LockConfig) (ports.RunLock, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("lock config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.LockTypeMemory:
		return NewMemoryRunLock(), nil
	case config.LockTypeRedis:
		return NewRedisRunLock(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported lock type: %s", cfg.Type.String()), nil)
	}
}
