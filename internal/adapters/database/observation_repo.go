package database

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

// ObservationModel represents the database model for weather_current.
// fetched_at is read-only so the database clock always assigns it.
type ObservationModel struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement"`
	QueryText       *string        `gorm:"column:query_text"`
	LocationName    *string        `gorm:"column:location_name"`
	Region          *string        `gorm:"column:region"`
	Country         *string        `gorm:"column:country"`
	Latitude        *float64       `gorm:"column:latitude"`
	Longitude       *float64       `gorm:"column:longitude"`
	ObservationTime *string        `gorm:"column:observation_time"`
	TemperatureC    *float64       `gorm:"column:temperature_c"`
	Humidity        *float64       `gorm:"column:humidity"`
	WindSpeed       *float64       `gorm:"column:wind_speed"`
	WindDir         *string        `gorm:"column:wind_dir"`
	Pressure        *float64       `gorm:"column:pressure"`
	Precip          *float64       `gorm:"column:precip"`
	Cloudcover      *float64       `gorm:"column:cloudcover"`
	UVIndex         *float64       `gorm:"column:uv_index"`
	Visibility      *float64       `gorm:"column:visibility"`
	IsDay           *string        `gorm:"column:is_day"`
	FetchedAt       time.Time      `gorm:"column:fetched_at;->"`
	Raw             datatypes.JSON `gorm:"column:raw;type:jsonb;not null"`
}

func (ObservationModel) TableName() string {
	return observationTable
}

// ObservationRepositoryAdapter implements the ObservationRepository port using GORM
type ObservationRepositoryAdapter struct {
	connector *Connector
}

// NewObservationRepositoryAdapter creates a new observation repository adapter
func NewObservationRepositoryAdapter(connector *Connector) ports.ObservationRepository {
	return &ObservationRepositoryAdapter{connector: connector}
}

// EnsureSchema creates the table and the fetched_at index when they are missing
func (r *ObservationRepositoryAdapter) EnsureSchema(ctx context.Context) error {
	return r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		statements, err := statementsFor(db.Dialector.Name())
		if err != nil {
			return err
		}

		if err := db.Exec(statements.createTable).Error; err != nil {
			return errors.NewDatabaseError("failed to create "+observationTable, err)
		}
		if err := db.Exec(statements.createIndex).Error; err != nil {
			return errors.NewDatabaseError("failed to create "+fetchedAtIndex, err)
		}
		return nil
	})
}

// Insert persists one observation and returns its id
func (r *ObservationRepositoryAdapter) Insert(ctx context.Context, obs *ports.ObservationData) (int64, error) {
	if obs == nil {
		return 0, errors.NewValidationError("observation cannot be nil")
	}

	model := r.dataToModel(obs)
	err := r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		if err := db.Create(model).Error; err != nil {
			return errors.NewDatabaseError("failed to insert observation", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	obs.ID = model.ID
	return model.ID, nil
}

// DeleteOlderThan removes rows whose fetched_at is older than days, by the database clock
func (r *ObservationRepositoryAdapter) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		return 0, errors.NewValidationError("retention days must be positive")
	}

	var deleted int64
	err := r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		statements, err := statementsFor(db.Dialector.Name())
		if err != nil {
			return err
		}

		result := db.Exec(statements.prune, statements.pruneArg(days))
		if result.Error != nil {
			return errors.NewDatabaseError("failed to delete old observations", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// FindRecent returns up to limit observations, newest first
func (r *ObservationRepositoryAdapter) FindRecent(ctx context.Context, limit int) ([]*ports.ObservationData, error) {
	if limit < 1 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []ObservationModel
	err := r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		if err := db.Order("fetched_at DESC").Order("id DESC").Limit(limit).Find(&models).Error; err != nil {
			return errors.NewDatabaseError("failed to find recent observations", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]*ports.ObservationData, len(models))
	for i := range models {
		result[i] = r.modelToData(&models[i])
	}
	return result, nil
}

func (r *ObservationRepositoryAdapter) dataToModel(data *ports.ObservationData) *ObservationModel {
	return &ObservationModel{
		ID:              data.ID,
		QueryText:       data.QueryText,
		LocationName:    data.LocationName,
		Region:          data.Region,
		Country:         data.Country,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		ObservationTime: data.ObservationTime,
		TemperatureC:    data.TemperatureC,
		Humidity:        data.Humidity,
		WindSpeed:       data.WindSpeed,
		WindDir:         data.WindDir,
		Pressure:        data.Pressure,
		Precip:          data.Precip,
		Cloudcover:      data.Cloudcover,
		UVIndex:         data.UVIndex,
		Visibility:      data.Visibility,
		IsDay:           data.IsDay,
		Raw:             datatypes.JSON(data.Raw),
	}
}

func (r *ObservationRepositoryAdapter) modelToData(model *ObservationModel) *ports.ObservationData {
	return &ports.ObservationData{
		ID:              model.ID,
		QueryText:       model.QueryText,
		LocationName:    model.LocationName,
		Region:          model.Region,
		Country:         model.Country,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		ObservationTime: model.ObservationTime,
		TemperatureC:    model.TemperatureC,
		Humidity:        model.Humidity,
		WindSpeed:       model.WindSpeed,
		WindDir:         model.WindDir,
		Pressure:        model.Pressure,
		Precip:          model.Precip,
		Cloudcover:      model.Cloudcover,
		UVIndex:         model.UVIndex,
		Visibility:      model.Visibility,
		IsDay:           model.IsDay,
		FetchedAt:       model.FetchedAt,
		Raw:             []byte(model.Raw),
	}
}
