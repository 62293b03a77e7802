package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/surgesense/backend/internal/domain/facility"
)

const defaultBaseURL = "https://overpass-api.de/api/interpreter"

const searchRadiusMeters = 1500
const providerTimeoutSeconds = 25

// Client searches for medical facilities via the Overpass API, which serves
// raw OpenStreetMap data through a structured query language.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search returns clinics, hospitals and pharmacies within 1500m of the
// coordinate. Both point features (nodes) and area features (ways) are
// queried; features without resolvable coordinates are skipped.
func (c *Client) Search(ctx context.Context, lat, lon float64) ([]facility.Facility, error) {
	query := buildQuery(lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("overpass request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read overpass response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	places := make([]facility.Facility, 0, len(raw.Elements))
	for _, element := range raw.Elements {
		coord, ok := resolveCoordinates(element)
		if !ok {
			continue
		}
		places = append(places, facility.Facility{
			Name:    resolveName(element.Tags),
			Lat:     coord.Lat,
			Lon:     coord.Lon,
			Address: buildAddress(element.Tags),
			Type:    amenityOrUnknown(element.Tags),
		})
	}
	return places, nil
}

func buildQuery(lat, lon float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];\n(\n", providerTimeoutSeconds)
	for _, amenity := range []string{"clinic", "hospital", "pharmacy"} {
		fmt.Fprintf(&sb, "  node[\"amenity\"=\"%s\"](around:%d,%f,%f);\n", amenity, searchRadiusMeters, lat, lon)
		fmt.Fprintf(&sb, "  way[\"amenity\"=\"%s\"](around:%d,%f,%f);\n", amenity, searchRadiusMeters, lat, lon)
	}
	sb.WriteString(");\nout center meta;\n")
	return sb.String()
}

type apiResponse struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string            `json:"type"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type center struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type coordinate struct {
	Lat float64
	Lon float64
}

func resolveCoordinates(el element) (coordinate, bool) {
	switch {
	case el.Type == "node" && el.Lat != nil && el.Lon != nil:
		return coordinate{Lat: *el.Lat, Lon: *el.Lon}, true
	case el.Type == "way" && el.Center != nil && el.Center.Lat != nil && el.Center.Lon != nil:
		return coordinate{Lat: *el.Center.Lat, Lon: *el.Center.Lon}, true
	default:
		return coordinate{}, false
	}
}

// Name fallback order: explicit name, brand, operator, synthesized label.
func resolveName(tags map[string]string) string {
	for _, key := range []string{"name", "brand", "operator"} {
		if value := tags[key]; value != "" {
			return value
		}
	}
	amenity := tags["amenity"]
	if amenity == "" {
		amenity = "facility"
	}
	return "Unnamed " + amenity
}

func buildAddress(tags map[string]string) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city"} {
		if value := tags[key]; value != "" {
			parts = append(parts, value)
		}
	}
	if len(parts) == 0 {
		return "Address not available"
	}
	return strings.Join(parts, ", ")
}

func amenityOrUnknown(tags map[string]string) string {
	if amenity := tags["amenity"]; amenity != "" {
		return amenity
	}
	return "unknown"
}
