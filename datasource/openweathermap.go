package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Coord is a latitude/longitude pair as reported by the provider.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentPayload represents the provider's current weather response.
type CurrentPayload struct {
	Coord Coord `json:"coord"`
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// ForecastPayload represents the provider's 5-day forecast response,
// a flat time-ordered list in 3-hour steps.
type ForecastPayload struct {
	List []ForecastItem `json:"list"`
}

// ForecastItem is one 3-hour step of the forecast list.
type ForecastItem struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

// PollutionPayload represents the provider's air pollution response.
type PollutionPayload struct {
	List []struct {
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
		} `json:"components"`
	} `json:"list"`
}

// apiMessage is the provider's error body, e.g. {"cod":"404","message":"city not found"}.
// cod is an int or a string depending on context, so it stays untyped.
type apiMessage struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Client fetches weather data from the OpenWeatherMap API.
type Client struct {
	apiKey     string
	baseURL    string // overridable for testing
	httpClient *http.Client
}

// Ensure Client implements the Source interface
var _ Source = (*Client)(nil)

// NewClient creates a new OpenWeatherMap client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBaseURL points the client at a different API root. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Name returns the provider name
func (c *Client) Name() string {
	return "OpenWeatherMap"
}

// FetchCurrent fetches current weather for a city
func (c *Client) FetchCurrent(ctx context.Context, city string) (*CurrentPayload, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric") // Use metric units

	var payload CurrentPayload
	if err := c.getJSON(ctx, "/weather", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchForecast fetches the 5-day forecast for a city
func (c *Client) FetchForecast(ctx context.Context, city string) (*ForecastPayload, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")

	var payload ForecastPayload
	if err := c.getJSON(ctx, "/forecast", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchAirQuality fetches air pollution data for coordinates
func (c *Client) FetchAirQuality(ctx context.Context, coord Coord) (*PollutionPayload, error) {
	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%g", coord.Lat))
	params.Add("lon", fmt.Sprintf("%g", coord.Lon))
	params.Add("appid", c.apiKey)

	var payload PollutionPayload
	if err := c.getJSON(ctx, "/air_pollution", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// getJSON executes a GET request against the provider and decodes the
// response into out, translating failures into typed APIErrors.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	// Build URL
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return &APIError{Kind: KindUnknown, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransportFailure, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindTransportFailure, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		statusText := resp.Status
		var msg apiMessage
		if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
			statusText = fmt.Sprintf("%s: %s", resp.Status, msg.Message)
		}
		return &APIError{Kind: kindForStatus(resp.StatusCode), StatusText: statusText}
	}

	// Parse response
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Kind: KindMalformedPayload, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return nil
}
