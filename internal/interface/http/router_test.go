package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surgesense/backend/internal/domain/auth"
	"github.com/surgesense/backend/internal/domain/facility"
	"github.com/surgesense/backend/internal/domain/weather"
	"github.com/surgesense/backend/internal/infra/config"
	apperrors "github.com/surgesense/backend/pkg/errors"
)

type stubAuth struct {
	result auth.LoginResult
	err    error
}

func (s *stubAuth) Login(context.Context, auth.LoginRequest) (auth.LoginResult, error) {
	return s.result, s.err
}

type stubWeather struct {
	snapshot *weather.Snapshot
}

func (s *stubWeather) Current(context.Context, float64, float64) *weather.Snapshot {
	return s.snapshot
}

type stubFacility struct {
	clinics []facility.Facility
	places  []facility.Facility
	calls   int
}

func (s *stubFacility) FindClinics(context.Context, float64, float64) []facility.Facility {
	s.calls++
	return s.clinics
}

func (s *stubFacility) FindMedicalPlaces(context.Context, float64, float64) []facility.Facility {
	s.calls++
	return s.places
}

type stubAdvisor struct {
	citizenResponse string
	citizenErr      error
	landingResponse string
	lastSnapshot    weather.Snapshot
	calls           int
}

func (s *stubAdvisor) CitizenAdvice(_ context.Context, _ string, snapshot weather.Snapshot) (string, error) {
	s.calls++
	s.lastSnapshot = snapshot
	if s.citizenErr != nil {
		return "", s.citizenErr
	}
	return s.citizenResponse, nil
}

func (s *stubAdvisor) LandingAdvice(context.Context, string, float64, float64) string {
	s.calls++
	return s.landingResponse
}

type routerDeps struct {
	auth     *stubAuth
	weather  *stubWeather
	facility *stubFacility
	advisor  *stubAdvisor
}

func newRouterUnderTest(deps routerDeps) *http.Server {
	if deps.auth == nil {
		deps.auth = &stubAuth{}
	}
	if deps.weather == nil {
		deps.weather = &stubWeather{}
	}
	if deps.facility == nil {
		deps.facility = &stubFacility{}
	}
	if deps.advisor == nil {
		deps.advisor = &stubAdvisor{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(deps.auth, deps.weather, deps.facility, deps.advisor, logger)
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: ":0"}}
	return NewRouter(cfg, handler)
}

func performRequest(server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestRouter_LoginSuccess(t *testing.T) {
	server := newRouterUnderTest(routerDeps{auth: &stubAuth{result: auth.LoginResult{
		Success: true,
		Role:    auth.RoleCitizen,
		Message: "Successfully logged in as citizen",
	}}})

	rec := performRequest(server, http.MethodPost, "/login", `{"email":"citizen@manuals","password":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "citizen", envelope["role"])
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	server := newRouterUnderTest(routerDeps{auth: &stubAuth{result: auth.LoginResult{
		Success: false,
		Message: "Invalid email or password",
	}}})

	rec := performRequest(server, http.MethodPost, "/login", `{"email":"citizen@manuals","password":"wrong"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "Invalid email or password", envelope["message"])
	require.NotContains(t, envelope, "role")
}

func TestRouter_LoginMissingFields(t *testing.T) {
	server := newRouterUnderTest(routerDeps{})

	rec := performRequest(server, http.MethodPost, "/login", `{"email":"citizen@manuals"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, false, envelope["success"])
}

func TestRouter_WeatherSuccess(t *testing.T) {
	snapshot := &weather.Snapshot{Temperature: 29.7, Humidity: 84, Description: "light rain"}
	server := newRouterUnderTest(routerDeps{weather: &stubWeather{snapshot: snapshot}})

	rec := performRequest(server, http.MethodGet, "/weather?lat=12.97&lon=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	got := envelope["weather"].(map[string]any)
	require.Equal(t, 29.7, got["temperature"])
	require.Equal(t, 84.0, got["humidity"])
	require.Equal(t, "light rain", got["description"])
}

func TestRouter_WeatherUnavailable(t *testing.T) {
	server := newRouterUnderTest(routerDeps{weather: &stubWeather{snapshot: nil}})

	rec := performRequest(server, http.MethodGet, "/weather?lat=12.97&lon=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "Failed to fetch weather data", envelope["message"])
}

func TestRouter_WeatherMissingCoordinates(t *testing.T) {
	server := newRouterUnderTest(routerDeps{})

	rec := performRequest(server, http.MethodGet, "/weather?lat=12.97", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ClinicsAlwaysSucceeds(t *testing.T) {
	server := newRouterUnderTest(routerDeps{facility: &stubFacility{clinics: []facility.Facility{}}})

	rec := performRequest(server, http.MethodGet, "/clinics?lat=12.97&lon=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	require.Empty(t, envelope["clinics"])
}

func TestRouter_NearbyMedicalBoundsRejected(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"latitude too high", "/nearby-medical?lat=91&lon=0", "Invalid latitude. Must be between -90 and 90"},
		{"longitude too high", "/nearby-medical?lat=0&lon=181", "Invalid longitude. Must be between -180 and 180"},
		{"latitude too low", "/nearby-medical?lat=-90.5&lon=0", "Invalid latitude. Must be between -90 and 90"},
		{"longitude too low", "/nearby-medical?lat=0&lon=-180.5", "Invalid longitude. Must be between -180 and 180"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facilityStub := &stubFacility{}
			server := newRouterUnderTest(routerDeps{facility: facilityStub})

			rec := performRequest(server, http.MethodGet, tc.path, "")
			require.Equal(t, http.StatusOK, rec.Code)

			envelope := decodeEnvelope(t, rec.Body.Bytes())
			require.Equal(t, false, envelope["success"])
			require.Equal(t, tc.message, envelope["message"])
			require.Zero(t, facilityStub.calls)
		})
	}
}

func TestRouter_NearbyMedicalBoundaryAccepted(t *testing.T) {
	facilityStub := &stubFacility{places: []facility.Facility{
		{Name: "City Clinic", Lat: 12.97, Lon: 77.59, Address: "Main Road", Type: "clinic"},
	}}
	server := newRouterUnderTest(routerDeps{facility: facilityStub})

	rec := performRequest(server, http.MethodGet, "/nearby-medical?lat=90&lon=180", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	require.Equal(t, 1, facilityStub.calls)
	places := envelope["places"].([]any)
	require.Len(t, places, 1)
	place := places[0].(map[string]any)
	require.Equal(t, "City Clinic", place["name"])
	require.Equal(t, "clinic", place["type"])
}

func TestRouter_CitizenAISuccessWithDefaultWeather(t *testing.T) {
	advisorStub := &stubAdvisor{citizenResponse: "structured advice"}
	server := newRouterUnderTest(routerDeps{
		weather: &stubWeather{snapshot: nil},
		advisor: advisorStub,
	})

	rec := performRequest(server, http.MethodPost, "/citizenai", `{"message":"what should I eat?","lat":12.97,"lon":77.59}`)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "structured advice", envelope["response"])

	// The failed lookup was replaced with the fixed default snapshot.
	require.Equal(t, weather.DefaultSnapshot(), advisorStub.lastSnapshot)
	got := envelope["weather"].(map[string]any)
	require.Equal(t, 25.0, got["temperature"])
	require.Equal(t, 60.0, got["humidity"])
	require.Equal(t, "moderate conditions", got["description"])

	location := envelope["location"].(map[string]any)
	require.Equal(t, 12.97, location["lat"])
	require.Equal(t, 77.59, location["lon"])
}

func TestRouter_CitizenAIGenerationFailure(t *testing.T) {
	advisorStub := &stubAdvisor{citizenErr: apperrors.Wrap("llm_error", "generation failed", errors.New("boom"))}
	server := newRouterUnderTest(routerDeps{
		weather: &stubWeather{snapshot: &weather.Snapshot{Temperature: 30, Humidity: 70, Description: "clear sky"}},
		advisor: advisorStub,
	})

	rec := performRequest(server, http.MethodPost, "/citizenai", `{"message":"any tips?","lat":12.97,"lon":77.59}`)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "Health assistant temporarily unavailable. Please try again or consult a healthcare provider.", envelope["message"])
	require.NotContains(t, envelope, "response")

	location := envelope["location"].(map[string]any)
	require.Equal(t, 12.97, location["lat"])
	require.Equal(t, 77.59, location["lon"])
}

func TestRouter_LandingAISuccess(t *testing.T) {
	advisorStub := &stubAdvisor{landingResponse: "drink more water"}
	server := newRouterUnderTest(routerDeps{advisor: advisorStub})

	rec := performRequest(server, http.MethodPost, "/landingai", `{"message":"how do I sleep better?","lat":0,"lon":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "drink more water", envelope["response"])
	require.NotContains(t, envelope, "weather")

	location := envelope["location"].(map[string]any)
	require.Equal(t, 0.0, location["lat"])
	require.Equal(t, 0.0, location["lon"])
}

func TestRouter_LandingAIMalformedBody(t *testing.T) {
	server := newRouterUnderTest(routerDeps{})

	rec := performRequest(server, http.MethodPost, "/landingai", `{"message":123}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, false, envelope["success"])
}

func TestRouter_Healthz(t *testing.T) {
	server := newRouterUnderTest(routerDeps{})

	rec := performRequest(server, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	require.Equal(t, true, envelope["success"])
}
