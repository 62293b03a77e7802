package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surgesense/backend/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
	)

	router.GET("/healthz", handler.Health)
	router.POST("/login", handler.Login)
	router.GET("/weather", handler.Weather)
	router.GET("/clinics", handler.Clinics)
	router.GET("/nearby-medical", handler.NearbyMedical)
	router.POST("/citizenai", handler.CitizenAI)
	router.POST("/landingai", handler.LandingAI)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
