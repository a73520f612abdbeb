package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"weatherstack.app/pkg/errors"
	"weatherstack.app/pkg/validation"
)

const (
	maxRedisDB       = 15
	maxPortNumber    = 65535
	maxRetentionDays = 3650
	maxStepRetries   = 10
)

// Config is loaded once at process start and passed by pointer into every component
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Database     DatabaseConfig     `split_words:"true"`
	Weatherstack WeatherstackConfig `split_words:"true"`
	Retention    RetentionConfig    `split_words:"true"`
	Pipeline     PipelineConfig     `split_words:"true"`
	Lock         LockConfig         `split_words:"true"`
	Logging      LoggingConfig      `split_words:"true"`
}

type ServerConfig struct {
	Enabled bool `envconfig:"SERVER_ENABLED" default:"false"`
	Port    int  `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver selects the gorm dialector used for every connection
type DatabaseDriver int

const (
	DatabaseDriverUnknown DatabaseDriver = iota
	DatabaseDriverPostgres
	DatabaseDriverSQLite
)

func (d DatabaseDriver) String() string {
	switch d {
	case DatabaseDriverPostgres:
		return "postgres"
	case DatabaseDriverSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

func (d DatabaseDriver) IsValid() bool {
	return d == DatabaseDriverPostgres || d == DatabaseDriverSQLite
}

func DatabaseDriverFromString(s string) DatabaseDriver {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql":
		return DatabaseDriverPostgres
	case "sqlite", "sqlite3":
		return DatabaseDriverSQLite
	default:
		return DatabaseDriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseDriver) UnmarshalText(text []byte) error {
	*d = DatabaseDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"PG_HOST" default:"localhost"`
	Port       int            `envconfig:"PG_PORT" default:"5433"`
	User       string         `envconfig:"PG_USER" default:"weather"`
	Password   string         `envconfig:"PG_PASSWORD" default:"weather"`
	Name       string         `envconfig:"PG_DATABASE" default:"weatherdb"`
	SSLMode    string         `envconfig:"PG_SSLMODE" default:"disable"`
	SQLitePath string         `envconfig:"SQLITE_PATH" default:"weather.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherstackConfig struct {
	APIKey   string        `envconfig:"WEATHERSTACK_API_KEY" required:"true" validate:"required"`
	Query    string        `envconfig:"WEATHERSTACK_QUERY" default:"Jakarta" validate:"required"`
	Units    string        `envconfig:"WEATHERSTACK_UNITS" default:"m" validate:"oneof=m s f"`
	BaseURLs []string      `envconfig:"WEATHERSTACK_BASE_URLS" default:"https://api.weatherstack.com,http://api.weatherstack.com" validate:"min=1,dive,url"`
	Timeout  time.Duration `envconfig:"WEATHERSTACK_TIMEOUT" default:"20s" validate:"gt=0"`
	LogCalls bool          `envconfig:"WEATHERSTACK_LOG_CALLS" default:"true"`
}

type RetentionConfig struct {
	Days int `envconfig:"RETENTION_DAYS" default:"2"`
}

// PipelineMode selects between a single run and the built-in scheduler
type PipelineMode int

const (
	PipelineModeUnknown PipelineMode = iota
	PipelineModeOnce
	PipelineModeSchedule
)

func (m PipelineMode) String() string {
	switch m {
	case PipelineModeOnce:
		return "once"
	case PipelineModeSchedule:
		return "schedule"
	default:
		return "unknown"
	}
}

func (m PipelineMode) IsValid() bool {
	return m == PipelineModeOnce || m == PipelineModeSchedule
}

func PipelineModeFromString(s string) PipelineMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return PipelineModeOnce
	case "schedule":
		return PipelineModeSchedule
	default:
		return PipelineModeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (m *PipelineMode) UnmarshalText(text []byte) error {
	*m = PipelineModeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (m PipelineMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type PipelineConfig struct {
	Mode        PipelineMode  `envconfig:"PIPELINE_MODE" default:"schedule"`
	Schedule    string        `envconfig:"PIPELINE_SCHEDULE" default:"*/10 * * * *"`
	StepRetries int           `envconfig:"PIPELINE_STEP_RETRIES" default:"2"`
	RetryDelay  time.Duration `envconfig:"PIPELINE_RETRY_DELAY" default:"1m"`
	LockTTL     time.Duration `envconfig:"PIPELINE_LOCK_TTL" default:"15m"`
}

// LockType represents the backend guarding against overlapping runs
type LockType int

const (
	LockTypeUnknown LockType = iota
	LockTypeMemory
	LockTypeRedis
)

// String returns the string representation of lock type
func (l LockType) String() string {
	switch l {
	case LockTypeMemory:
		return "memory"
	case LockTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the lock type is valid
func (l LockType) IsValid() bool {
	return l == LockTypeMemory || l == LockTypeRedis
}

// LockTypeFromString converts string to LockType enum
func LockTypeFromString(s string) LockType {
	switch s {
	case "memory":
		return LockTypeMemory
	case "redis":
		return LockTypeRedis
	default:
		return LockTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (l *LockType) UnmarshalText(text []byte) error {
	*l = LockTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (l LockType) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type LockConfig struct {
	Type  LockType    `envconfig:"LOCK_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weatherstack.Validate(); err != nil {
		return err
	}
	if err := c.Retention.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	if err := c.Lock.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Driver.IsValid() {
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
	if d.Driver == DatabaseDriverSQLite {
		if !validation.IsNotEmpty(d.SQLitePath) {
			return errors.NewConfigurationError("SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	}
	if d.Host == "" {
		return errors.NewConfigurationError("PG_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("PG_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("PG_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("PG_DATABASE cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("PG_SSLMODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

var structValidator = validator.New()

func (w *WeatherstackConfig) Validate() error {
	if !validation.IsNotEmpty(w.APIKey) {
		return errors.NewConfigurationError("WEATHERSTACK_API_KEY is required", nil)
	}
	if err := structValidator.Struct(w); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return errors.NewConfigurationError(
				fmt.Sprintf("invalid weatherstack setting %s (rule %q)", fieldErrs[0].Field(), fieldErrs[0].Tag()), err)
		}
		return errors.NewConfigurationError("invalid weatherstack configuration", err)
	}
	for _, baseURL := range w.BaseURLs {
		if !validation.IsHTTPURL(baseURL) {
			return errors.NewConfigurationError("WEATHERSTACK_BASE_URLS entries must start with http:// or https://", nil)
		}
	}
	return nil
}

func (r *RetentionConfig) Validate() error {
	if r.Days < 1 || r.Days > maxRetentionDays {
		return errors.NewConfigurationError("RETENTION_DAYS must be between 1 and 3650", nil)
	}
	return nil
}

func (p *PipelineConfig) Validate() error {
	if !p.Mode.IsValid() {
		return errors.NewConfigurationError("PIPELINE_MODE must be one of: once, schedule", nil)
	}
	if p.Mode == PipelineModeSchedule && !validation.IsNotEmpty(p.Schedule) {
		return errors.NewConfigurationError("PIPELINE_SCHEDULE cannot be empty in schedule mode", nil)
	}
	if p.StepRetries < 0 || p.StepRetries > maxStepRetries {
		return errors.NewConfigurationError("PIPELINE_STEP_RETRIES must be between 0 and 10", nil)
	}
	if p.RetryDelay < 0 {
		return errors.NewConfigurationError("PIPELINE_RETRY_DELAY cannot be negative", nil)
	}
	if p.LockTTL <= 0 {
		return errors.NewConfigurationError("PIPELINE_LOCK_TTL must be positive", nil)
	}
	return nil
}

func (l *LockConfig) Validate() error {
	if !l.Type.IsValid() {
		return errors.NewConfigurationError("LOCK_TYPE must be one of: memory, redis", nil)
	}

	if l.Type == LockTypeRedis {
		return l.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis lock", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
