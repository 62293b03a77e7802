package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Weather  WeatherConfig  `yaml:"weather"`
	Geo      GeoConfig      `yaml:"geo"`
	LLM      LLMConfig      `yaml:"llm"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// DatabaseConfig contains DSN and pooling settings for the credential store.
// An empty DSN selects the in-memory store.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// WeatherConfig contains OpenWeatherMap settings. The API key is allowed to
// be empty: weather lookups then fail per call instead of blocking startup.
type WeatherConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeoConfig contains the facility search provider endpoints.
type GeoConfig struct {
	NominatimBaseURL string        `yaml:"nominatimBaseUrl"`
	OverpassBaseURL  string        `yaml:"overpassBaseUrl"`
	UserAgent        string        `yaml:"userAgent"`
	NominatimTimeout time.Duration `yaml:"nominatimTimeout"`
	OverpassTimeout  time.Duration `yaml:"overpassTimeout"`
}

// LLMConfig contains generation provider settings.
type LLMConfig struct {
	APIKey             string  `yaml:"apiKey"`
	BaseURL            string  `yaml:"baseUrl"`
	Model              string  `yaml:"model"`
	CitizenTemperature float32 `yaml:"citizenTemperature"`
	LandingTemperature float32 `yaml:"landingTemperature"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Database.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("DATABASE_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Database.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.Timeout = parsed
		}
	}
	if v := os.Getenv("NOMINATIM_BASE_URL"); v != "" {
		cfg.Geo.NominatimBaseURL = v
	}
	if v := os.Getenv("OVERPASS_BASE_URL"); v != "" {
		cfg.Geo.OverpassBaseURL = v
	}
	if v := os.Getenv("GEO_USER_AGENT"); v != "" {
		cfg.Geo.UserAgent = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_CITIZEN_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.CitizenTemperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_LANDING_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.LandingTemperature = float32(parsed)
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 60 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
		},
		Database: DatabaseConfig{
			DSN:      "",
			MaxConns: 4,
			MinConns: 0,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5/weather",
			Timeout: 10 * time.Second,
		},
		Geo: GeoConfig{
			NominatimBaseURL: "https://nominatim.openstreetmap.org/search",
			OverpassBaseURL:  "https://overpass-api.de/api/interpreter",
			UserAgent:        "SurgeSense/1.0 (healthcare-app)",
			NominatimTimeout: 10 * time.Second,
			OverpassTimeout:  30 * time.Second,
		},
		LLM: LLMConfig{
			Model:              "gpt-4o-mini",
			CitizenTemperature: 0.7,
			LandingTemperature: 0.6,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.apiKey is required")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.CitizenTemperature <= 0 || c.LLM.LandingTemperature <= 0 {
		return errors.New("llm temperatures must be positive")
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	if c.Weather.Timeout <= 0 {
		return errors.New("weather.timeout must be positive")
	}
	if c.Geo.NominatimBaseURL == "" {
		return errors.New("geo.nominatimBaseUrl cannot be empty")
	}
	if c.Geo.OverpassBaseURL == "" {
		return errors.New("geo.overpassBaseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Geo.UserAgent) == "" {
		return errors.New("geo.userAgent cannot be empty")
	}
	if c.Geo.NominatimTimeout <= 0 || c.Geo.OverpassTimeout <= 0 {
		return errors.New("geo timeouts must be positive")
	}
	return nil
}
