package ports

import "time"

// WeatherstackConfig represents weather fetcher configuration
type WeatherstackConfig struct {
	APIKey   string
	Query    string
	Units    string
	BaseURLs []string
	Timeout  time.Duration
	LogCalls bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Enabled bool
	Port    int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Name       string
	SSLMode    string
	SQLitePath string
}

// PipelineConfig represents pipeline run configuration
type PipelineConfig struct {
	Mode          string
	Schedule      string
	StepRetries   int
	RetryDelay    time.Duration
	LockTTL       time.Duration
	RetentionDays int
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// LockConfig represents run lock configuration
type LockConfig struct {
	Type  string
	Redis RedisConfig
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherstackConfig() WeatherstackConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetPipelineConfig() PipelineConfig
	GetLockConfig() LockConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
