package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"weatherstack.app/internal/core/observation"
	"weatherstack.app/pkg/errors"
)

const defaultObservationLimit = 20

// ObservationResponse represents one stored observation
type ObservationResponse struct {
	ID              int64    `json:"id"`
	Query           *string  `json:"query"`
	Location        *string  `json:"location"`
	Region          *string  `json:"region"`
	Country         *string  `json:"country"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	ObservationTime *string  `json:"observation_time"`
	TemperatureC    *float64 `json:"temperature_c"`
	Humidity        *float64 `json:"humidity"`
	WindSpeed       *float64 `json:"wind_speed"`
	WindDir         *string  `json:"wind_dir"`
	Pressure        *float64 `json:"pressure"`
	Precip          *float64 `json:"precip"`
	Cloudcover      *float64 `json:"cloudcover"`
	UVIndex         *float64 `json:"uv_index"`
	Visibility      *float64 `json:"visibility"`
	IsDay           *string  `json:"is_day"`
	FetchedAt       string   `json:"fetched_at"`
}

// listObservations handles GET /api/observations requests
func (s *HTTPServerAdapter) listObservations(c *gin.Context) {
	limit := defaultObservationLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.handleError(c, errors.NewValidationError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	observations, err := s.observations.Recent(c.Request.Context(), limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]ObservationResponse, 0, len(observations))
	for _, obs := range observations {
		response = append(response, toObservationResponse(obs))
	}

	c.JSON(http.StatusOK, response)
}

func toObservationResponse(obs *observation.Observation) ObservationResponse {
	return ObservationResponse{
		ID:              obs.ID,
		Query:           obs.QueryText,
		Location:        obs.LocationName,
		Region:          obs.Region,
		Country:         obs.Country,
		Latitude:        obs.Latitude,
		Longitude:       obs.Longitude,
		ObservationTime: obs.ObservationTime,
		TemperatureC:    obs.TemperatureC,
		Humidity:        obs.Humidity,
		WindSpeed:       obs.WindSpeed,
		WindDir:         obs.WindDir,
		Pressure:        obs.Pressure,
		Precip:          obs.Precip,
		Cloudcover:      obs.Cloudcover,
		UVIndex:         obs.UVIndex,
		Visibility:      obs.Visibility,
		IsDay:           obs.IsDay,
		FetchedAt:       obs.FetchedAt.UTC().Format(time.RFC3339),
	}
}
