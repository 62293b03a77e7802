package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRequiresLLMKey(t *testing.T) {
	cfg := defaultConfig()
	require.Error(t, cfg.Validate())

	cfg.LLM.APIKey = "test-key"
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsMissingGeoUserAgent(t *testing.T) {
	cfg := defaultConfig()
	cfg.LLM.APIKey = "test-key"
	cfg.Geo.UserAgent = " "
	require.Error(t, cfg.Validate())
}

func TestDefaultsCarryProviderTimeouts(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, "10s", cfg.Weather.Timeout.String())
	require.Equal(t, "30s", cfg.Geo.OverpassTimeout.String())
	require.Equal(t, float32(0.7), cfg.LLM.CitizenTemperature)
	require.Equal(t, float32(0.6), cfg.LLM.LandingTemperature)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "env-key")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("OPENWEATHER_API_KEY", "weather-key")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, "env-key", cfg.LLM.APIKey)
	require.Equal(t, "weather-key", cfg.Weather.APIKey)
	require.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.HTTP.AllowedOrigins)
}
