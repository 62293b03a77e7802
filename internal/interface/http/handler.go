package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/surgesense/backend/internal/domain/advisor"
	"github.com/surgesense/backend/internal/domain/auth"
	"github.com/surgesense/backend/internal/domain/facility"
	"github.com/surgesense/backend/internal/domain/weather"
)

// Fixed envelope messages returned by the router.
const (
	weatherUnavailableMessage = "Failed to fetch weather data"
	invalidLatitudeMessage    = "Invalid latitude. Must be between -90 and 90"
	invalidLongitudeMessage   = "Invalid longitude. Must be between -180 and 180"
	citizenUnavailableMessage = "Health assistant temporarily unavailable. Please try again or consult a healthcare provider."
	landingUnavailableMessage = "Wellness assistant temporarily unavailable!"
)

// AdvisoryRequest is the payload accepted by both advisory endpoints.
type AdvisoryRequest struct {
	Message string  `json:"message" binding:"required"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Handler wires the HTTP transport to domain services. Every response uses
// the uniform {success, ...} envelope.
type Handler struct {
	authSvc     auth.Service
	weatherSvc  weather.Service
	facilitySvc facility.Service
	advisorSvc  advisor.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, weatherSvc weather.Service, facilitySvc facility.Service, advisorSvc advisor.Service, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc:     authSvc,
		weatherSvc:  weatherSvc,
		facilitySvc: facilitySvc,
		advisorSvc:  advisorSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Login checks credentials against the seeded store.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "role": result.Role, "message": result.Message})
}

// Weather returns the current conditions for a coordinate.
func (h *Handler) Weather(c *gin.Context) {
	lat, lon, ok := queryCoordinates(c)
	if !ok {
		return
	}

	snapshot := h.weatherSvc.Current(c.Request.Context(), lat, lon)
	if snapshot == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": weatherUnavailableMessage})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "weather": snapshot})
}

// Clinics runs the bounding box facility search. It never fails: provider
// errors surface as an empty list.
func (h *Handler) Clinics(c *gin.Context) {
	lat, lon, ok := queryCoordinates(c)
	if !ok {
		return
	}

	clinics := h.facilitySvc.FindClinics(c.Request.Context(), lat, lon)
	c.JSON(http.StatusOK, gin.H{"success": true, "clinics": clinics})
}

// NearbyMedical runs the radius tag search. This is the only geo endpoint
// that validates coordinate bounds, and it does so before any provider call.
func (h *Handler) NearbyMedical(c *gin.Context) {
	lat, lon, ok := queryCoordinates(c)
	if !ok {
		return
	}

	if lat < -90 || lat > 90 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": invalidLatitudeMessage})
		return
	}
	if lon < -180 || lon > 180 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": invalidLongitudeMessage})
		return
	}

	places := h.facilitySvc.FindMedicalPlaces(c.Request.Context(), lat, lon)
	c.JSON(http.StatusOK, gin.H{"success": true, "places": places})
}

// CitizenAI serves the structured advisory profile. Generation failures are
// reported to the caller with a fixed unavailability message.
func (h *Handler) CitizenAI(c *gin.Context) {
	var req AdvisoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	location := gin.H{"lat": req.Lat, "lon": req.Lon}

	snapshot := h.weatherSvc.Current(c.Request.Context(), req.Lat, req.Lon)
	if snapshot == nil {
		defaulted := weather.DefaultSnapshot()
		snapshot = &defaulted
		h.logger.Warn("using default weather data for citizen advice")
	}

	response, err := h.advisorSvc.CitizenAdvice(c.Request.Context(), req.Message, *snapshot)
	if err != nil {
		h.logger.Error("citizen advice failed", "error", err)
		c.JSON(http.StatusOK, gin.H{
			"success":  false,
			"message":  citizenUnavailableMessage,
			"location": location,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
		"weather":  snapshot,
		"location": location,
	})
}

// LandingAI serves the short advisory profile, which degrades internally and
// never reports a generation failure.
func (h *Handler) LandingAI(c *gin.Context) {
	var req AdvisoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	location := gin.H{"lat": req.Lat, "lon": req.Lon}

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("landing advice panicked", "panic", r)
			c.JSON(http.StatusOK, gin.H{
				"success":  false,
				"message":  landingUnavailableMessage,
				"location": location,
			})
		}
	}()

	response := h.advisorSvc.LandingAdvice(c.Request.Context(), req.Message, req.Lat, req.Lon)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
		"location": location,
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func queryCoordinates(c *gin.Context) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "lat and lon query parameters are required"})
		return 0, 0, false
	}
	return lat, lon, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body: " + err.Error()})
}
