package auth

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/surgesense/backend/pkg/errors"
)

// Service exposes the authentication workflow.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "auth.service"),
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return negativeResult(), nil
	}

	user, found, err := s.repo.GetByCredentials(ctx, email, req.Password)
	if err != nil {
		return LoginResult{}, apperrors.Wrap("auth_error", "failed to check credentials", err)
	}
	if !found {
		s.logger.Info("login rejected", "email", email)
		return negativeResult(), nil
	}

	s.logger.Info("login successful", "email", email, "role", user.Role)
	return LoginResult{
		Success: true,
		Role:    user.Role,
		Message: "Successfully logged in as " + user.Role,
	}, nil
}

func negativeResult() LoginResult {
	return LoginResult{
		Success: false,
		Message: "Invalid email or password",
	}
}
