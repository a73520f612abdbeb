package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherstack.app/internal/mocks"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

const currentResponse = `{
	"request": {"type": "City", "query": "Jakarta, Indonesia", "language": "en", "unit": "m"},
	"location": {"name": "Jakarta", "country": "Indonesia", "region": "Jakarta Raya", "lat": "-6.215", "lon": "106.845"},
	"current": {"observation_time": "03:15 AM", "temperature": 29, "wind_speed": 7, "wind_dir": "SW",
		"pressure": 1010, "precip": 0.1, "humidity": 70, "cloudcover": 75, "uv_index": 6, "visibility": 10, "is_day": "yes"}
}`

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestProvider(t *testing.T, baseURLs ...string) (*WeatherstackProviderAdapter, *mocks.PipelineMetrics) {
	t.Helper()
	metrics := mocks.NewPipelineMetrics(t)
	provider, err := NewWeatherstackProviderAdapter(WeatherstackProviderParams{
		BaseURLs: baseURLs,
		Timeout:  2 * time.Second,
		Metrics:  metrics,
		Logger:   &testLogger{},
	})
	require.NoError(t, err)
	return provider, metrics
}

var jakartaRequest = ports.FetchRequest{Query: "Jakarta", APIKey: "test-api-key", Units: "m"}

func TestWeatherstackProvider_FetchCurrent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "Jakarta", r.URL.Query().Get("query"))
		assert.Equal(t, "m", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(currentResponse))
		assert.NoError(t, err)
	}))
	defer server.Close()

	provider, metrics := newTestProvider(t, server.URL+"/")
	metrics.EXPECT().RecordFetchAttempt(server.URL, ports.OutcomeSuccess).Once()

	payload, err := provider.FetchCurrent(context.Background(), jakartaRequest)

	require.NoError(t, err)
	require.NotNil(t, payload.Current)
	require.NotNil(t, payload.Location)
	assert.Equal(t, "Jakarta", *payload.Location.Name)
	assert.Equal(t, "SW", *payload.Current.WindDir)
	assert.JSONEq(t, currentResponse, string(payload.Raw))
}

func TestWeatherstackProvider_FetchCurrent_FallsBackToSecondEndpoint(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer failing.Close()
	working := jsonServer(t, http.StatusOK, currentResponse)

	provider, metrics := newTestProvider(t, failing.URL, working.URL)
	metrics.EXPECT().RecordFetchAttempt(failing.URL, ports.OutcomeFailure).Once()
	metrics.EXPECT().RecordFetchAttempt(working.URL, ports.OutcomeSuccess).Once()

	payload, err := provider.FetchCurrent(context.Background(), jakartaRequest)

	require.NoError(t, err)
	assert.JSONEq(t, currentResponse, string(payload.Raw))
}

func TestWeatherstackProvider_FetchCurrent_StopsAtFirstSuccess(t *testing.T) {
	calls := 0
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer second.Close()
	first := jsonServer(t, http.StatusOK, currentResponse)

	provider, metrics := newTestProvider(t, first.URL, second.URL)
	metrics.EXPECT().RecordFetchAttempt(first.URL, ports.OutcomeSuccess).Once()

	_, err := provider.FetchCurrent(context.Background(), jakartaRequest)

	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWeatherstackProvider_FetchCurrent_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		errorType errors.ErrorType
		contains  []string
	}{
		{
			name:      "ProviderFailureFlag",
			status:    http.StatusOK,
			body:      `{"success": false, "error": {"code": 101, "type": "invalid_access_key", "info": "You have not supplied a valid API Access Key."}}`,
			errorType: errors.ErrorTypeExternalAPI,
			contains:  []string{"code=101", "valid API Access Key"},
		},
		{
			name:      "ProviderFailureWithoutDetail",
			status:    http.StatusOK,
			body:      `{"success": false}`,
			errorType: errors.ErrorTypeExternalAPI,
			contains:  []string{"code=null"},
		},
		{
			name:      "MissingCurrent",
			status:    http.StatusOK,
			body:      `{"request": {"query": "Jakarta"}, "location": {"name": "Jakarta"}}`,
			errorType: errors.ErrorTypeShapeValidation,
			contains:  []string{"unexpected API response shape", `"location": {"name": "Jakarta"}`},
		},
		{
			name:      "ArrayBody",
			status:    http.StatusOK,
			body:      `["current"]`,
			errorType: errors.ErrorTypeShapeValidation,
			contains:  []string{"unexpected API response shape"},
		},
		{
			name:      "CurrentWithWrongType",
			status:    http.StatusOK,
			body:      `{"current": "sunny"}`,
			errorType: errors.ErrorTypeShapeValidation,
			contains:  []string{"unexpected API response shape"},
		},
		{
			name:      "NotJSON",
			status:    http.StatusServiceUnavailable,
			body:      `Service Unavailable`,
			errorType: errors.ErrorTypeExternalAPI,
			contains:  []string{"status 503"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, tt.status, tt.body)
			provider, metrics := newTestProvider(t, server.URL)
			metrics.EXPECT().RecordFetchAttempt(server.URL, ports.OutcomeFailure).Once()

			payload, err := provider.FetchCurrent(context.Background(), jakartaRequest)

			assert.Nil(t, payload)
			require.Error(t, err)
			assert.True(t, errors.IsExternalAPIError(err), "aggregated error must be EXTERNAL_API_ERROR")

			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			require.Error(t, appErr.Cause)
			assert.Equal(t, tt.errorType, errors.TypeOf(appErr.Cause))
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestWeatherstackProvider_FetchCurrent_AllEndpointsFail(t *testing.T) {
	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachableURL := unreachable.URL
	unreachable.Close()
	apiError := jsonServer(t, http.StatusOK, `{"success": false, "error": {"code": 104, "info": "Your monthly usage limit has been reached."}}`)

	provider, metrics := newTestProvider(t, unreachableURL, apiError.URL)
	metrics.EXPECT().RecordFetchAttempt(mock.Anything, ports.OutcomeFailure).Twice()

	_, err := provider.FetchCurrent(context.Background(), jakartaRequest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 endpoints")
	assert.Contains(t, err.Error(), "code=104")
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestWeatherstackProvider_FetchCurrent_RedactsKeyInTransportErrors(t *testing.T) {
	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachableURL := unreachable.URL
	unreachable.Close()

	provider, metrics := newTestProvider(t, unreachableURL)
	metrics.EXPECT().RecordFetchAttempt(unreachableURL, ports.OutcomeFailure).Once()

	_, err := provider.FetchCurrent(context.Background(), jakartaRequest)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "test-api-key")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestWeatherstackProvider_FetchCurrent_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	metrics := mocks.NewPipelineMetrics(t)
	metrics.EXPECT().RecordFetchAttempt(slow.URL, ports.OutcomeFailure).Once()
	provider, err := NewWeatherstackProviderAdapter(WeatherstackProviderParams{
		BaseURLs: []string{slow.URL},
		Timeout:  50 * time.Millisecond,
		Metrics:  metrics,
		Logger:   &testLogger{},
	})
	require.NoError(t, err)

	_, err = provider.FetchCurrent(context.Background(), jakartaRequest)

	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestWeatherstackProvider_Validation(t *testing.T) {
	_, err := NewWeatherstackProviderAdapter(WeatherstackProviderParams{Metrics: mocks.NewPipelineMetrics(t), Logger: &testLogger{}})
	assert.True(t, errors.IsConfigurationError(err))

	provider, _ := newTestProvider(t, "http://127.0.0.1:1")
	_, err = provider.FetchCurrent(context.Background(), ports.FetchRequest{Query: " "})
	assert.True(t, errors.IsValidationError(err))
}

func TestProviderFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"NotAnObject", `[1, 2]`, ""},
		{"SuccessTrue", `{"success": true, "current": {}}`, ""},
		{"SuccessMissing", `{"current": {}}`, ""},
		{"SuccessNotBool", `{"success": "false"}`, ""},
		{"StringCode", `{"success": false, "error": {"code": "615", "info": "request failed"}}`, "code=615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var instance any
			decoder := json.NewDecoder(strings.NewReader(tt.body))
			decoder.UseNumber()
			require.NoError(t, decoder.Decode(&instance))

			err := providerFailure(instance)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
