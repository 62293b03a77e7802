package weather

import (
	"context"
	"log/slog"
)

// Service exposes weather lookups with the recover-locally contract: a
// failed provider call yields an absent snapshot, never an error.
type Service interface {
	Current(ctx context.Context, lat, lon float64) *Snapshot
}

// Client abstracts the upstream weather provider.
type Client interface {
	Current(ctx context.Context, lat, lon float64) (Snapshot, error)
}

type service struct {
	client Client
	logger *slog.Logger
}

// NewService wires up the weather lookup domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, lat, lon float64) *Snapshot {
	snapshot, err := s.client.Current(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("weather lookup failed", "lat", lat, "lon", lon, "error", err)
		return nil
	}
	return &snapshot
}
