package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherstack.app/internal/ports"
)

// Simple test using concrete implementations instead of mocks
func TestWeatherFetcherLoggingDecorator_BasicFunctionality(t *testing.T) {
	payload, err := ports.DecodeWeatherPayload([]byte(`{"location":{"name":"Jakarta"},"current":{"temperature":29}}`))
	require.NoError(t, err)
	testFetcher := &testWeatherFetcher{response: payload}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherFetcherLoggingDecorator(testFetcher, testLogger)

	result, err := decorator.FetchCurrent(context.Background(), ports.FetchRequest{Query: "Jakarta", APIKey: "secret", Units: "m"})

	assert.NoError(t, err)
	assert.Same(t, payload, result)

	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weatherstack request started", requestLog.message)
	assert.Equal(t, "Jakarta", requestLog.fields["query"])
	assert.Equal(t, "m", requestLog.fields["units"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weatherstack request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, len(payload.Raw), responseLog.fields["bytes"])
	assert.Equal(t, true, responseLog.fields["has_location"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	for _, entry := range testLogger.entries {
		for _, value := range entry.fields {
			assert.NotEqual(t, "secret", value)
		}
	}
}

func TestWeatherFetcherLoggingDecorator_ErrorHandling(t *testing.T) {
	testFetcher := &testWeatherFetcher{err: errors.New("usage limit reached")}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherFetcherLoggingDecorator(testFetcher, testLogger)

	result, err := decorator.FetchCurrent(context.Background(), ports.FetchRequest{Query: "Nowhere"})

	assert.Error(t, err)
	assert.Equal(t, "usage limit reached", err.Error())
	assert.Nil(t, result)

	require.Len(t, testLogger.entries, 2)
	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weatherstack request failed", errorLog.message)
	assert.Equal(t, "Nowhere", errorLog.fields["query"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "usage limit reached", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherFetcherLoggingDecorator_DurationTracking(t *testing.T) {
	payload, err := ports.DecodeWeatherPayload([]byte(`{"current":{}}`))
	require.NoError(t, err)
	testFetcher := &testWeatherFetcher{response: payload, delay: 10 * time.Millisecond}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherFetcherLoggingDecorator(testFetcher, testLogger)

	_, err = decorator.FetchCurrent(context.Background(), ports.FetchRequest{Query: "Slow"})
	require.NoError(t, err)

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

type testWeatherFetcher struct {
	response *ports.WeatherPayload
	err      error
	delay    time.Duration
}

func (f *testWeatherFetcher) FetchCurrent(ctx context.Context, req ports.FetchRequest) (*ports.WeatherPayload, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}
