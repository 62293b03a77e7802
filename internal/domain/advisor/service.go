package advisor

import (
	"context"
	"log/slog"

	"github.com/surgesense/backend/internal/domain/weather"
	"github.com/surgesense/backend/internal/infra/llm/chatgpt"
	apperrors "github.com/surgesense/backend/pkg/errors"
)

// Service exposes the two advisory profiles. The error contracts differ on
// purpose: CitizenAdvice propagates generation failures so the router can
// report them, LandingAdvice always degrades to a friendly fallback.
type Service interface {
	CitizenAdvice(ctx context.Context, message string, snapshot weather.Snapshot) (string, error)
	LandingAdvice(ctx context.Context, message string, lat, lon float64) string
}

// ChatClient abstracts the generation provider.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Config wires runtime settings for both profiles.
type Config struct {
	Model              string
	CitizenTemperature float32
	LandingTemperature float32
}

type service struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger
}

// NewService wires up the advisory domain.
func NewService(cfg Config, client ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "advisor.service"),
	}
}

// CitizenAdvice produces the structured ten-section advisory. The caller is
// responsible for substituting the default snapshot when the weather lookup
// failed.
func (s *service) CitizenAdvice(ctx context.Context, message string, snapshot weather.Snapshot) (string, error) {
	if ContainsAny(message, CriticalSymptoms) {
		s.logger.Info("critical symptoms detected, returning emergency response")
		return EmergencyResponse, nil
	}

	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: s.cfg.CitizenTemperature,
		Messages: []chatgpt.Message{
			{Role: "system", Content: citizenSystemPrompt},
			{Role: "user", Content: citizenUserPrompt(message, snapshot)},
		},
	})
	if err != nil {
		return "", apperrors.Wrap("llm_error", "citizen advice generation failed", err)
	}
	if len(completion.Choices) == 0 {
		return "", apperrors.Wrap("llm_error", "generation provider returned no choices", nil)
	}
	s.logger.Info("citizen advice generated")
	return completion.Choices[0].Message.Content, nil
}

// LandingAdvice produces the short landing-page advisory. It never fails:
// any provider error is replaced with the fixed fallback sentence.
func (s *service) LandingAdvice(ctx context.Context, message string, lat, lon float64) string {
	if ContainsAny(message, SeriousSymptoms) {
		s.logger.Info("serious symptoms detected, returning login prompt")
		return LoginResponse
	}

	withLocation := ContainsAny(message, WeatherKeywords) && lat != 0 && lon != 0

	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: s.cfg.LandingTemperature,
		Messages: []chatgpt.Message{
			{Role: "system", Content: landingSystemPrompt},
			{Role: "user", Content: landingUserPrompt(message, lat, lon, withLocation)},
		},
	})
	if err != nil {
		s.logger.Warn("landing advice generation failed, using fallback", "error", err)
		return LandingFallback
	}
	if len(completion.Choices) == 0 {
		s.logger.Warn("generation provider returned no choices, using fallback")
		return LandingFallback
	}
	s.logger.Info("landing advice generated")
	return completion.Choices[0].Message.Content
}
