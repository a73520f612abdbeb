package infrastructure

import (
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherstackConfig returns weatherstack configuration
func (c *ConfigProviderAdapter) GetWeatherstackConfig() ports.WeatherstackConfig {
	baseURLs := make([]string, len(c.config.Weatherstack.BaseURLs))
	copy(baseURLs, c.config.Weatherstack.BaseURLs)

	return ports.WeatherstackConfig{
		APIKey:   c.config.Weatherstack.APIKey,
		Query:    c.config.Weatherstack.Query,
		Units:    c.config.Weatherstack.Units,
		BaseURLs: baseURLs,
		Timeout:  c.config.Weatherstack.Timeout,
		LogCalls: c.config.Weatherstack.LogCalls,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Enabled: c.config.Server.Enabled,
		Port:    c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration without the password
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver:     c.config.Database.Driver.String(),
		Host:       c.config.Database.Host,
		Port:       c.config.Database.Port,
		User:       c.config.Database.User,
		Name:       c.config.Database.Name,
		SSLMode:    c.config.Database.SSLMode,
		SQLitePath: c.config.Database.SQLitePath,
	}
}

// GetPipelineConfig returns pipeline configuration
func (c *ConfigProviderAdapter) GetPipelineConfig() ports.PipelineConfig {
	return ports.PipelineConfig{
		Mode:          c.config.Pipeline.Mode.String(),
		Schedule:      c.config.Pipeline.Schedule,
		StepRetries:   c.config.Pipeline.StepRetries,
		RetryDelay:    c.config.Pipeline.RetryDelay,
		LockTTL:       c.config.Pipeline.LockTTL,
		RetentionDays: c.config.Retention.Days,
	}
}

// GetLockConfig returns run lock configuration
func (c *ConfigProviderAdapter) GetLockConfig() ports.LockConfig {
	return ports.LockConfig{
		Type: c.config.Lock.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Lock.Redis.Addr,
			Password:     c.config.Lock.Redis.Password,
			DB:           c.config.Lock.Redis.DB,
			DialTimeout:  c.config.Lock.Redis.DialTimeout,
			ReadTimeout:  c.config.Lock.Redis.ReadTimeout,
			WriteTimeout: c.config.Lock.Redis.WriteTimeout,
		},
	}
}
