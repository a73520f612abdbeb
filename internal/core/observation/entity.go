package observation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
	"weatherstack.app/pkg/validation"
)

// Observation is one flattened current-conditions record of weather_current
type Observation struct {
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
	Raw             json.RawMessage
}

// FetchParams represents a request for the current conditions of one location
type FetchParams struct {
	Query  string
	APIKey string
	Units  string
}

// IsValid validates fetch parameters
func (p *FetchParams) IsValid() error {
	if !validation.IsNotEmpty(p.Query) {
		return fmt.Errorf("query cannot be empty")
	}
	if !validation.IsNotEmpty(p.APIKey) {
		return fmt.Errorf("api key cannot be empty")
	}
	if !validation.IsValidUnits(p.Units) {
		return fmt.Errorf("units must be one of m, s, f")
	}
	return nil
}

// Normalize trims the free-text query
func (p *FetchParams) Normalize() {
	p.Query = strings.TrimSpace(p.Query)
}

// NewObservationFromPayload maps a validated payload into a row.
// Missing sections and fields become nil columns; a value that cannot be
// coerced to a number is a DATA_MAPPING_ERROR.
func NewObservationFromPayload(payload *ports.WeatherPayload) (*Observation, error) {
	if payload == nil {
		return nil, errors.NewDataMappingError("payload is nil", nil)
	}
	if len(payload.Raw) == 0 || !json.Valid(payload.Raw) {
		return nil, errors.NewDataMappingError("payload has no valid raw body", nil)
	}

	obs := &Observation{
		Raw: append(json.RawMessage(nil), payload.Raw...),
	}

	if req := payload.Request; req != nil {
		obs.QueryText = req.Query
	}

	if loc := payload.Location; loc != nil {
		obs.LocationName = loc.Name
		obs.Region = loc.Region
		obs.Country = loc.Country

		var err error
		if obs.Latitude, err = coerce("location.lat", loc.Latitude); err != nil {
			return nil, err
		}
		if obs.Longitude, err = coerce("location.lon", loc.Longitude); err != nil {
			return nil, err
		}
	}

	if cur := payload.Current; cur != nil {
		obs.ObservationTime = cur.ObservationTime
		obs.WindDir = cur.WindDir
		obs.IsDay = cur.IsDay

		numbers := []struct {
			field  string
			value  *ports.FlexNumber
			target **float64
		}{
			{"current.temperature", cur.Temperature, &obs.TemperatureC},
			{"current.humidity", cur.Humidity, &obs.Humidity},
			{"current.wind_speed", cur.WindSpeed, &obs.WindSpeed},
			{"current.pressure", cur.Pressure, &obs.Pressure},
			{"current.precip", cur.Precip, &obs.Precip},
			{"current.cloudcover", cur.Cloudcover, &obs.Cloudcover},
			{"current.uv_index", cur.UVIndex, &obs.UVIndex},
			{"current.visibility", cur.Visibility, &obs.Visibility},
		}
		for _, n := range numbers {
			v, err := coerce(n.field, n.value)
			if err != nil {
				return nil, err
			}
			*n.target = v
		}
	}

	return obs, nil
}

func coerce(field string, value *ports.FlexNumber) (*float64, error) {
	v, err := value.Float64()
	if err != nil {
		return nil, errors.NewDataMappingError(fmt.Sprintf("field %s is not numeric", field), err)
	}
	return v, nil
}

// ToData converts the observation into its persistence shape
func (o *Observation) ToData() *ports.ObservationData {
	return &ports.ObservationData{
		ID:              o.ID,
		QueryText:       o.QueryText,
		LocationName:    o.LocationName,
		Region:          o.Region,
		Country:         o.Country,
		Latitude:        o.Latitude,
		Longitude:       o.Longitude,
		ObservationTime: o.ObservationTime,
		TemperatureC:    o.TemperatureC,
		Humidity:        o.Humidity,
		WindSpeed:       o.WindSpeed,
		WindDir:         o.WindDir,
		Pressure:        o.Pressure,
		Precip:          o.Precip,
		Cloudcover:      o.Cloudcover,
		UVIndex:         o.UVIndex,
		Visibility:      o.Visibility,
		IsDay:           o.IsDay,
		FetchedAt:       o.FetchedAt,
		Raw:             o.Raw,
	}
}

// FromData builds an observation from its persistence shape
func FromData(data *ports.ObservationData) *Observation {
	return &Observation{
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
		FetchedAt:       data.FetchedAt,
		Raw:             json.RawMessage(data.Raw),
	}
}

// String returns a short representation for log lines
func (o *Observation) String() string {
	return fmt.Sprintf("%s: temperature=%s humidity=%s",
		stringOrNull(o.QueryText), floatOrNull(o.TemperatureC), floatOrNull(o.Humidity))
}

func stringOrNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

func floatOrNull(f *float64) string {
	if f == nil {
		return "null"
	}
	return fmt.Sprintf("%.1f", *f)
}
