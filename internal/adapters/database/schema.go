package database

import (
	"fmt"

	"weatherstack.app/pkg/errors"
)

const (
	observationTable = "weather_current"
	fetchedAtIndex   = "idx_weather_current_fetched_at"
)

// dialectStatements holds the raw SQL that differs between engines
type dialectStatements struct {
	createTable string
	createIndex string
	prune       string
	pruneArg    func(days int) interface{}
}

var postgresStatements = dialectStatements{
	createTable: `CREATE TABLE IF NOT EXISTS weather_current (
		id BIGSERIAL PRIMARY KEY,
		query_text TEXT NOT NULL,
		location_name TEXT,
		region TEXT,
		country TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		observation_time TEXT,
		temperature_c REAL,
		humidity REAL,
		wind_speed REAL,
		wind_dir TEXT,
		pressure REAL,
		precip REAL,
		cloudcover REAL,
		uv_index REAL,
		visibility REAL,
		is_day TEXT,
		fetched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		raw JSONB NOT NULL
	)`,
	createIndex: `CREATE INDEX IF NOT EXISTS idx_weather_current_fetched_at ON weather_current (fetched_at DESC)`,
	prune:       `DELETE FROM weather_current WHERE fetched_at < now() - make_interval(days => ?)`,
	pruneArg:    func(days int) interface{} { return days },
}

var sqliteStatements = dialectStatements{
	createTable: `CREATE TABLE IF NOT EXISTS weather_current (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query_text TEXT NOT NULL,
		location_name TEXT,
		region TEXT,
		country TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		observation_time TEXT,
		temperature_c REAL,
		humidity REAL,
		wind_speed REAL,
		wind_dir TEXT,
		pressure REAL,
		precip REAL,
		cloudcover REAL,
		uv_index REAL,
		visibility REAL,
		is_day TEXT,
		fetched_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		raw JSON NOT NULL
	)`,
	createIndex: `CREATE INDEX IF NOT EXISTS idx_weather_current_fetched_at ON weather_current (fetched_at DESC)`,
	prune:       `DELETE FROM weather_current WHERE fetched_at < datetime('now', ?)`,
	pruneArg:    func(days int) interface{} { return fmt.Sprintf("-%d days", days) },
}

func statementsFor(dialect string) (dialectStatements, error) {
	switch dialect {
	case "postgres":
		return postgresStatements, nil
	case "sqlite":
		return sqliteStatements, nil
	default:
		return dialectStatements{}, errors.NewConfigurationError("no schema for database dialect "+dialect, nil)
	}
}
