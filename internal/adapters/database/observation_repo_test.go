package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

type discardLogger struct{}

func (discardLogger) Debug(string, ...ports.Field) {}
func (discardLogger) Info(string, ...ports.Field)  {}
func (discardLogger) Warn(string, ...ports.Field)  {}
func (discardLogger) Error(string, ...ports.Field) {}

func setupObservationTestDB(t *testing.T) (*Connector, ports.ObservationRepository) {
	connector, err := NewConnector(config.DatabaseConfig{
		Driver:     config.DatabaseDriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "weather.db"),
	}, discardLogger{})
	require.NoError(t, err)

	repo := NewObservationRepositoryAdapter(connector)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return connector, repo
}

func strPtr(s string) *string { return &s }
func f64Ptr(f float64) *float64 { return &f }

func jakartaObservation() *ports.ObservationData {
	return &ports.ObservationData{
		QueryText:    strPtr("Jakarta, Indonesia"),
		LocationName: strPtr("Jakarta"),
		Country:      strPtr("Indonesia"),
		Latitude:     f64Ptr(-6.214),
		Longitude:    f64Ptr(106.845),
		TemperatureC: f64Ptr(29),
		Humidity:     f64Ptr(70),
		WindDir:      strPtr("NW"),
		IsDay:        strPtr("yes"),
		Raw:          []byte(`{"request":{"query":"Jakarta, Indonesia"},"current":{"temperature":29}}`),
	}
}

func countRows(t *testing.T, connector *Connector) int64 {
	var count int64
	err := connector.WithConnection(context.Background(), func(db *gorm.DB) error {
		return db.Model(&ObservationModel{}).Count(&count).Error
	})
	require.NoError(t, err)
	return count
}

func ageAllRows(t *testing.T, connector *Connector, modifier string) {
	err := connector.WithConnection(context.Background(), func(db *gorm.DB) error {
		return db.Exec("UPDATE weather_current SET fetched_at = datetime('now', ?)", modifier).Error
	})
	require.NoError(t, err)
}

func TestNewConnector_UnsupportedDriver(t *testing.T) {
	connector, err := NewConnector(config.DatabaseConfig{Driver: config.DatabaseDriverUnknown}, discardLogger{})

	assert.Nil(t, connector)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestNewConnector_RequiresLogger(t *testing.T) {
	_, err := NewConnector(config.DatabaseConfig{Driver: config.DatabaseDriverSQLite}, nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestConnector_Ping(t *testing.T) {
	connector, _ := setupObservationTestDB(t)

	assert.NoError(t, connector.Ping(context.Background()))
	assert.Equal(t, "sqlite", connector.Driver())
}

func TestObservationRepository_EnsureSchema_Idempotent(t *testing.T) {
	connector, repo := setupObservationTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	var tables, indexes int64
	err := connector.WithConnection(ctx, func(db *gorm.DB) error {
		if err := db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", "weather_current").Scan(&tables).Error; err != nil {
			return err
		}
		return db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'index' AND name = ?", "idx_weather_current_fetched_at").Scan(&indexes).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), tables)
	assert.Equal(t, int64(1), indexes)
}

func TestObservationRepository_EnsureSchema_KeepsRows(t *testing.T) {
	connector, repo := setupObservationTestDB(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))

	assert.Equal(t, int64(1), countRows(t, connector))
}

func TestObservationRepository_Insert(t *testing.T) {
	_, repo := setupObservationTestDB(t)
	ctx := context.Background()

	obs := jakartaObservation()
	before := time.Now().UTC().Add(-time.Minute)

	id, err := repo.Insert(ctx, obs)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, id, obs.ID)

	found, err := repo.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)

	row := found[0]
	assert.Equal(t, id, row.ID)
	assert.Equal(t, "Jakarta, Indonesia", *row.QueryText)
	assert.Equal(t, "Jakarta", *row.LocationName)
	assert.Nil(t, row.Region)
	assert.InDelta(t, -6.214, *row.Latitude, 1e-9)
	assert.InDelta(t, 29.0, *row.TemperatureC, 1e-6)
	assert.Nil(t, row.Pressure)
	assert.True(t, row.FetchedAt.After(before), "fetched_at should be assigned by the database")

	var stored, original interface{}
	require.NoError(t, json.Unmarshal(row.Raw, &stored))
	require.NoError(t, json.Unmarshal(obs.Raw, &original))
	assert.Equal(t, original, stored)
}

func TestObservationRepository_Insert_IDsIncrease(t *testing.T) {
	_, repo := setupObservationTestDB(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)
	second, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestObservationRepository_Insert_MissingQueryText(t *testing.T) {
	connector, repo := setupObservationTestDB(t)

	obs := jakartaObservation()
	obs.QueryText = nil

	_, err := repo.Insert(context.Background(), obs)
	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
	assert.Equal(t, int64(0), countRows(t, connector))
}

func TestObservationRepository_Insert_Nil(t *testing.T) {
	_, repo := setupObservationTestDB(t)

	_, err := repo.Insert(context.Background(), nil)

	var appErr *errors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ValidationError, appErr.Type)
}

func TestObservationRepository_Insert_BeforeSchema(t *testing.T) {
	connector, err := NewConnector(config.DatabaseConfig{
		Driver:     config.DatabaseDriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "empty.db"),
	}, discardLogger{})
	require.NoError(t, err)
	repo := NewObservationRepositoryAdapter(connector)

	_, err = repo.Insert(context.Background(), jakartaObservation())
	assert.True(t, errors.IsDatabaseError(err))
}

func TestObservationRepository_DeleteOlderThan(t *testing.T) {
	connector, repo := setupObservationTestDB(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)
	ageAllRows(t, connector, "-3 days")
	_, err = repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, int64(1), countRows(t, connector))
}

func TestObservationRepository_DeleteOlderThan_KeepsRecentRows(t *testing.T) {
	connector, repo := setupObservationTestDB(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)
	ageAllRows(t, connector, "-1 days")

	deleted, err := repo.DeleteOlderThan(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, int64(1), countRows(t, connector))
}

func TestObservationRepository_DeleteOlderThan_EmptyTable(t *testing.T) {
	_, repo := setupObservationTestDB(t)

	deleted, err := repo.DeleteOlderThan(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestObservationRepository_DeleteOlderThan_InvalidDays(t *testing.T) {
	_, repo := setupObservationTestDB(t)

	_, err := repo.DeleteOlderThan(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestObservationRepository_FindRecent_Order(t *testing.T) {
	connector, repo := setupObservationTestDB(t)
	ctx := context.Background()

	old := jakartaObservation()
	old.LocationName = strPtr("Bandung")
	_, err := repo.Insert(ctx, old)
	require.NoError(t, err)
	ageAllRows(t, connector, "-1 hours")

	_, err = repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)

	found, err := repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Jakarta", *found[0].LocationName)

	_, err = repo.FindRecent(ctx, 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestStatementsFor_UnknownDialect(t *testing.T) {
	_, err := statementsFor("mysql")
	assert.True(t, errors.IsConfigurationError(err))
}

// TEST_POSTGRES_DSN points at a disposable database, e.g. the one from docker-compose.
func TestObservationRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	connector := &Connector{
		driver:    "postgres",
		dialector: func() gorm.Dialector { return postgres.Open(dsn) },
		logger:    discardLogger{},
	}
	repo := NewObservationRepositoryAdapter(connector)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	id, err := repo.Insert(ctx, jakartaObservation())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = connector.WithConnection(context.Background(), func(db *gorm.DB) error {
			return db.Exec("DELETE FROM weather_current WHERE id = ?", id).Error
		})
	})

	err = connector.WithConnection(ctx, func(db *gorm.DB) error {
		return db.Exec("UPDATE weather_current SET fetched_at = now() - interval '3 days' WHERE id = ?", id).Error
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(ctx, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))
}
