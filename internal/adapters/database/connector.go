package database

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

// Connector opens a fresh single-connection database handle for every
// operation and closes it when the operation returns.
type Connector struct {
	driver    string
	dialector func() gorm.Dialector
	logger    ports.Logger
}

// NewConnector creates a connector for the configured driver
func NewConnector(cfg config.DatabaseConfig, logger ports.Logger) (*Connector, error) {
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		dsn := cfg.GetDSN()
		return &Connector{
			driver:    cfg.Driver.String(),
			dialector: func() gorm.Dialector { return postgres.Open(dsn) },
			logger:    logger,
		}, nil
	case config.DatabaseDriverSQLite:
		path := cfg.SQLitePath
		return &Connector{
			driver:    cfg.Driver.String(),
			dialector: func() gorm.Dialector { return sqlite.Open(path) },
			logger:    logger,
		}, nil
	default:
		return nil, errors.NewConfigurationError("unsupported database driver: "+cfg.Driver.String(), nil)
	}
}

// Driver returns the configured driver name
func (c *Connector) Driver() string {
	return c.driver
}

// WithConnection runs fn on a new connection. Statements run in autocommit mode.
func (c *Connector) WithConnection(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(c.dialector(), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return errors.NewDatabaseError("failed to connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	sqlDB.SetMaxOpenConns(1)
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			c.logger.Warn("Failed to close database connection", ports.F("error", closeErr))
		}
	}()

	return fn(db.WithContext(ctx))
}

// Ping checks that a connection can be opened and answers
func (c *Connector) Ping(ctx context.Context) error {
	return c.WithConnection(ctx, func(db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.NewDatabaseError("failed to get underlying database connection", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return errors.NewDatabaseError("database ping failed", err)
		}
		return nil
	})
}
