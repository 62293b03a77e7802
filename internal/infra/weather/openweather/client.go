package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/surgesense/backend/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. An empty API key is accepted here; Current
// then fails immediately without issuing a network call.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current retrieves the current weather for a coordinate in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (weather.Snapshot, error) {
	if c.apiKey == "" {
		return weather.Snapshot{}, errors.New("weather api key not configured")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Snapshot{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("read weather response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	if raw.Main == nil || raw.Main.Temp == nil || raw.Main.Humidity == nil {
		return weather.Snapshot{}, errors.New("weather response missing main fields")
	}
	if len(raw.Weather) == 0 {
		return weather.Snapshot{}, errors.New("weather response missing conditions")
	}

	return weather.Snapshot{
		Temperature: *raw.Main.Temp,
		Humidity:    *raw.Main.Humidity,
		Description: raw.Weather[0].Description,
	}, nil
}

type apiResponse struct {
	Main    *mainSection   `json:"main"`
	Weather []weatherEntry `json:"weather"`
}

type mainSection struct {
	Temp     *float64 `json:"temp"`
	Humidity *int     `json:"humidity"`
}

type weatherEntry struct {
	Description string `json:"description"`
}
