package facility

import (
	"context"
	"log/slog"
)

// Service exposes the two facility lookups. Both recover locally: a failed
// or malformed provider response yields an empty list, never an error.
type Service interface {
	FindClinics(ctx context.Context, lat, lon float64) []Facility
	FindMedicalPlaces(ctx context.Context, lat, lon float64) []Facility
}

// BoundingBoxClient is the free-text bounding box search provider.
type BoundingBoxClient interface {
	Search(ctx context.Context, lat, lon float64) ([]Facility, error)
}

// RadiusClient is the structured radius tag search provider.
type RadiusClient interface {
	Search(ctx context.Context, lat, lon float64) ([]Facility, error)
}

type service struct {
	bbox   BoundingBoxClient
	radius RadiusClient
	logger *slog.Logger
}

// NewService wires up the facility lookup domain.
func NewService(bbox BoundingBoxClient, radius RadiusClient, logger *slog.Logger) Service {
	return &service{
		bbox:   bbox,
		radius: radius,
		logger: logger.With("component", "facility.service"),
	}
}

func (s *service) FindClinics(ctx context.Context, lat, lon float64) []Facility {
	results, err := s.bbox.Search(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("clinic search failed", "lat", lat, "lon", lon, "error", err)
		return []Facility{}
	}
	return results
}

func (s *service) FindMedicalPlaces(ctx context.Context, lat, lon float64) []Facility {
	results, err := s.radius.Search(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("medical place search failed", "lat", lat, "lon", lon, "error", err)
		return []Facility{}
	}
	s.logger.Info("medical places found", "count", len(results))
	return results
}
