package ports

import (
	"context"
	"time"
)

// ObservationData represents one weather_current row for persistence
type ObservationData struct {
	ID              int64
	QueryText       *string
	LocationName    *string
	Region          *string
	Country         *string
	Latitude        *float64
	Longitude       *float64
	ObservationTime *string
	TemperatureC    *float64
	Humidity        *float64
	WindSpeed       *float64
	WindDir         *string
	Pressure        *float64
	Precip          *float64
	Cloudcover      *float64
	UVIndex         *float64
	Visibility      *float64
	IsDay           *string
	FetchedAt       time.Time
	Raw             []byte
}

// ObservationRepository defines the contract for weather_current persistence
type ObservationRepository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, obs *ObservationData) (int64, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*ObservationData, error)
}
