package external

import (
	"context"
	"time"

	"weatherstack.app/internal/ports"
)

// WeatherFetcherLoggingDecorator decorates a weather fetcher with structured logging
type WeatherFetcherLoggingDecorator struct {
	fetcher ports.WeatherFetcher
	logger  ports.Logger
}

// NewWeatherFetcherLoggingDecorator creates a new logging decorator for weather fetchers
func NewWeatherFetcherLoggingDecorator(fetcher ports.WeatherFetcher, logger ports.Logger) ports.WeatherFetcher {
	return &WeatherFetcherLoggingDecorator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// FetchCurrent wraps the fetcher call with structured logging
func (d *WeatherFetcherLoggingDecorator) FetchCurrent(ctx context.Context, req ports.FetchRequest) (*ports.WeatherPayload, error) {
	d.logger.Info("Weatherstack request started",
		ports.F("query", req.Query),
		ports.F("units", req.Units),
		ports.F("event", "request"))

	startTime := time.Now()

	payload, err := d.fetcher.FetchCurrent(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weatherstack request failed",
			ports.F("query", req.Query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weatherstack request completed",
		ports.F("query", req.Query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(payload.Raw)),
		ports.F("has_location", payload.Location != nil))

	return payload, nil
}
