//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/surgesense/backend/internal/bootstrap"
	"github.com/surgesense/backend/internal/domain/advisor"
	"github.com/surgesense/backend/internal/domain/auth"
	"github.com/surgesense/backend/internal/domain/facility"
	"github.com/surgesense/backend/internal/domain/weather"
	"github.com/surgesense/backend/internal/infra/config"
	"github.com/surgesense/backend/internal/infra/geo/nominatim"
	"github.com/surgesense/backend/internal/infra/geo/overpass"
	"github.com/surgesense/backend/internal/infra/llm/chatgpt"
	"github.com/surgesense/backend/internal/infra/weather/openweather"
	httpiface "github.com/surgesense/backend/internal/interface/http"
	"github.com/surgesense/backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatClient,
		provideWeatherClient,
		provideNominatimClient,
		provideOverpassClient,
		provideAdvisorConfig,
		provideUserRepository,
		auth.NewService,
		weather.NewService,
		facility.NewService,
		advisor.NewService,
		wire.Bind(new(weather.Client), new(*openweather.Client)),
		wire.Bind(new(facility.BoundingBoxClient), new(*nominatim.Client)),
		wire.Bind(new(facility.RadiusClient), new(*overpass.Client)),
		wire.Bind(new(advisor.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
