// Package external provides adapters for external services
// These adapters implement ports for the weatherstack API and the run lock backends.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

const (
	defaultRequestTimeout = 20 * time.Second
	maxResponseBytes      = 1 << 20

	currentSchemaURL = "weatherstack-current.json"
	currentSchema    = `{
		"type": "object",
		"required": ["current"]
	}`
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherstackProviderAdapter implements the WeatherFetcher port for weatherstack.com.
// Base URLs are tried in order; the first structurally valid answer wins.
type WeatherstackProviderAdapter struct {
	baseURLs []string
	client   HTTPClient
	schema   *jsonschema.Schema
	metrics  ports.PipelineMetrics
	logger   ports.Logger
}

// WeatherstackProviderParams holds parameters for creating the weatherstack provider
type WeatherstackProviderParams struct {
	BaseURLs []string
	Timeout  time.Duration
	Client   HTTPClient
	Metrics  ports.PipelineMetrics
	Logger   ports.Logger
}

// NewWeatherstackProviderAdapter creates a new weatherstack provider adapter
func NewWeatherstackProviderAdapter(params WeatherstackProviderParams) (*WeatherstackProviderAdapter, error) {
	if len(params.BaseURLs) == 0 {
		return nil, errors.NewConfigurationError("at least one weatherstack base URL is required", nil)
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	schema, err := compileCurrentSchema()
	if err != nil {
		return nil, errors.NewConfigurationError("failed to compile weatherstack response schema", err)
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	baseURLs := make([]string, 0, len(params.BaseURLs))
	for _, baseURL := range params.BaseURLs {
		baseURLs = append(baseURLs, strings.TrimRight(baseURL, "/"))
	}

	return &WeatherstackProviderAdapter{
		baseURLs: baseURLs,
		client:   client,
		schema:   schema,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}, nil
}

func compileCurrentSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(currentSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(currentSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(currentSchemaURL)
}

// FetchCurrent retrieves the current conditions, falling back across base URLs
func (p *WeatherstackProviderAdapter) FetchCurrent(ctx context.Context, req ports.FetchRequest) (*ports.WeatherPayload, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	var lastErr error
	for _, baseURL := range p.baseURLs {
		payload, err := p.fetchFrom(ctx, baseURL, req)
		if err == nil {
			p.metrics.RecordFetchAttempt(baseURL, ports.OutcomeSuccess)
			return payload, nil
		}

		p.metrics.RecordFetchAttempt(baseURL, ports.OutcomeFailure)
		p.logger.Warn("weatherstack endpoint failed, trying next candidate",
			ports.F("endpoint", baseURL),
			ports.F("error", err.Error()))
		lastErr = err
	}

	return nil, errors.NewExternalAPIError(
		fmt.Sprintf("failed calling weatherstack API on all %d endpoints", len(p.baseURLs)), lastErr)
}

func (p *WeatherstackProviderAdapter) fetchFrom(ctx context.Context, baseURL string, req ports.FetchRequest) (*ports.WeatherPayload, error) {
	query := url.Values{}
	query.Set("access_key", req.APIKey)
	query.Set("query", req.Query)
	query.Set("units", req.Units)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/current?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build weatherstack request", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call weatherstack", redactKey(err, req.APIKey))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close weatherstack response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read weatherstack response", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("failed to decode weatherstack response (status %d)", resp.StatusCode), err)
	}

	if err := providerFailure(instance); err != nil {
		return nil, err
	}

	if err := p.schema.Validate(instance); err != nil {
		return nil, errors.NewShapeValidationError(
			fmt.Sprintf("unexpected API response shape: %s", body), err)
	}

	payload, err := ports.DecodeWeatherPayload(body)
	if err != nil {
		return nil, errors.NewShapeValidationError(
			fmt.Sprintf("unexpected API response shape: %s", body), err)
	}
	return payload, nil
}

// providerFailure reports the provider error when the payload carries "success": false
func providerFailure(instance any) error {
	doc, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	if success, ok := doc["success"].(bool); !ok || success {
		return nil
	}

	code, info := "null", "null"
	if detail, ok := doc["error"].(map[string]any); ok {
		code = scalarString(detail["code"])
		info = scalarString(detail["info"])
	}
	return errors.NewExternalAPIError(fmt.Sprintf("weatherstack API error (code=%s): %s", code, info), nil)
}

func scalarString(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// redactKey keeps the access key out of transport errors, which embed the request URL
func redactKey(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !stderrors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), "REDACTED"),
		Err: urlErr.Err,
	}
}
