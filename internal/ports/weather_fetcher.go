package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FetchRequest carries the inputs of a single current-conditions lookup
type FetchRequest struct {
	Query  string
	APIKey string
	Units  string
}

// WeatherFetcher defines the contract for retrieving a validated weatherstack payload
type WeatherFetcher interface {
	FetchCurrent(ctx context.Context, req FetchRequest) (*WeatherPayload, error)
}

// WeatherPayload is a current-conditions response. Sections are nil when absent.
// Raw holds the response body exactly as received.
type WeatherPayload struct {
	Request  *RequestSection  `json:"request"`
	Location *LocationSection `json:"location"`
	Current  *CurrentSection  `json:"current"`

	Raw json.RawMessage `json:"-"`
}

// RequestSection mirrors the "request" object of the response
type RequestSection struct {
	Type     *string `json:"type"`
	Query    *string `json:"query"`
	Language *string `json:"language"`
	Unit     *string `json:"unit"`
}

// LocationSection mirrors the "location" object of the response
type LocationSection struct {
	Name      *string     `json:"name"`
	Country   *string     `json:"country"`
	Region    *string     `json:"region"`
	Latitude  *FlexNumber `json:"lat"`
	Longitude *FlexNumber `json:"lon"`
	Timezone  *string     `json:"timezone_id"`
}

// CurrentSection mirrors the "current" object of the response
type CurrentSection struct {
	ObservationTime *string     `json:"observation_time"`
	Temperature     *FlexNumber `json:"temperature"`
	WindSpeed       *FlexNumber `json:"wind_speed"`
	WindDir         *string     `json:"wind_dir"`
	Pressure        *FlexNumber `json:"pressure"`
	Precip          *FlexNumber `json:"precip"`
	Humidity        *FlexNumber `json:"humidity"`
	Cloudcover      *FlexNumber `json:"cloudcover"`
	UVIndex         *FlexNumber `json:"uv_index"`
	Visibility      *FlexNumber `json:"visibility"`
	IsDay           *string     `json:"is_day"`
}

// DecodeWeatherPayload decodes the typed sections of body and keeps body as Raw
func DecodeWeatherPayload(body []byte) (*WeatherPayload, error) {
	var payload WeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode weather payload: %w", err)
	}
	payload.Raw = append(json.RawMessage(nil), body...)
	return &payload, nil
}

// FlexNumber keeps a numeric field undecoded until it is mapped.
// weatherstack sends coordinates as strings and measurements as numbers.
type FlexNumber json.RawMessage

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = append((*n)[:0], data...)
	return nil
}

// MarshalJSON implements json.Marshaler
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if len(n) == 0 {
		return []byte("null"), nil
	}
	return []byte(n), nil
}

// Float64 returns nil for an absent or null value, the parsed value for a JSON
// number or numeric string, and an error for anything else.
func (n *FlexNumber) Float64() (*float64, error) {
	if n == nil || len(*n) == 0 {
		return nil, nil
	}

	text := strings.TrimSpace(string(*n))
	if text == "null" {
		return nil, nil
	}

	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal([]byte(text), &s); err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", text, err)
		}
		text = strings.TrimSpace(s)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %s: %w", string(*n), err)
	}
	return &value, nil
}
