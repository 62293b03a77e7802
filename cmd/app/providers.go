package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surgesense/backend/internal/domain/advisor"
	"github.com/surgesense/backend/internal/domain/auth"
	"github.com/surgesense/backend/internal/infra/config"
	"github.com/surgesense/backend/internal/infra/geo/nominatim"
	"github.com/surgesense/backend/internal/infra/geo/overpass"
	"github.com/surgesense/backend/internal/infra/llm/chatgpt"
	"github.com/surgesense/backend/internal/infra/userrepo"
	"github.com/surgesense/backend/internal/infra/weather/openweather"
)

func provideChatClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideWeatherClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
}

func provideNominatimClient(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(cfg.Geo.NominatimBaseURL, cfg.Geo.UserAgent, cfg.Geo.NominatimTimeout)
}

func provideOverpassClient(cfg *config.Config) *overpass.Client {
	return overpass.NewClient(cfg.Geo.OverpassBaseURL, cfg.Geo.OverpassTimeout)
}

func provideAdvisorConfig(cfg *config.Config) advisor.Config {
	return advisor.Config{
		Model:              cfg.LLM.Model,
		CitizenTemperature: cfg.LLM.CitizenTemperature,
		LandingTemperature: cfg.LLM.LandingTemperature,
	}
}

// provideUserRepository selects postgres when a DSN is configured and falls
// back to the in-memory store otherwise. Either store is seeded once.
func provideUserRepository(cfg *config.Config, logger *slog.Logger) auth.Repository {
	repo := buildUserRepository(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := auth.Seed(ctx, repo, logger); err != nil {
		logger.Error("credential seeding failed, using seeded memory repository", "error", err)
		fallback := userrepo.NewMemoryRepository()
		_ = auth.Seed(context.Background(), fallback, logger)
		return fallback
	}
	return repo
}

func buildUserRepository(cfg *config.Config, logger *slog.Logger) auth.Repository {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		logger.Info("database dsn not set, using memory repository")
		return userrepo.NewMemoryRepository()
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return userrepo.NewMemoryRepository()
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}
	if cfg.Database.MinConns > 0 {
		poolConfig.MinConns = cfg.Database.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return userrepo.NewMemoryRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return userrepo.NewMemoryRepository()
	}

	repo := userrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("postgres schema setup failed, using memory repository", "error", err)
		pool.Close()
		return userrepo.NewMemoryRepository()
	}
	logger.Info("postgres credential repository enabled")
	return repo
}
