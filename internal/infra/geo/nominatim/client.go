package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/surgesense/backend/internal/domain/facility"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Roughly 5km in degrees.
const bboxSize = 0.05

const searchQuery = "clinic hospital healthcare"
const resultLimit = 10

// Client searches for healthcare facilities via the Nominatim free-text
// geocoding endpoint using a bounding box around the caller's position.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an API client. The user agent identifies this application
// to the provider, which requires a distinguishing header.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search returns up to ten facilities inside a ±0.05 degree box around the
// coordinate. The provider's display name serves as both name and address.
func (c *Client) Search(ctx context.Context, lat, lon float64) ([]facility.Facility, error) {
	// Viewbox format: left,top,right,bottom.
	viewbox := fmt.Sprintf("%s,%s,%s,%s",
		formatCoord(lon-bboxSize),
		formatCoord(lat+bboxSize),
		formatCoord(lon+bboxSize),
		formatCoord(lat-bboxSize),
	)

	query := url.Values{}
	query.Set("q", searchQuery)
	query.Set("format", "json")
	query.Set("viewbox", viewbox)
	query.Set("bounded", "1")
	query.Set("limit", strconv.Itoa(resultLimit))
	query.Set("amenity", "clinic,hospital")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build clinic search request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clinic search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("clinic search error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read clinic search response: %w", err)
	}

	var raw []searchResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode clinic search response: %w", err)
	}

	clinics := make([]facility.Facility, 0, len(raw))
	for _, item := range raw {
		clinics = append(clinics, facility.Facility{
			Name:    item.DisplayName,
			Lat:     parseCoord(item.Lat),
			Lon:     parseCoord(item.Lon),
			Address: item.DisplayName,
		})
	}
	return clinics, nil
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseCoord(v string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return parsed
}
