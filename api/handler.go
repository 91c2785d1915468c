// Package api provides the HTTP handlers for the study platform.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/studyhub/platform/config"
	"github.com/studyhub/platform/internal/service"
	"github.com/studyhub/platform/store"
)

// Handler handles HTTP requests.
type Handler struct {
	store   store.Store
	service *service.Service
	config  *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new handler.
func NewHandler(store store.Store, svc *service.Service, config *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		store:   store,
		service: svc,
		config:  config,
		logger:  logger,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/chat", h.Chat)
	e.GET("/subjects", h.ListSubjects)

	e.GET("/notes/:subject", h.GetNotes)
	e.POST("/notes/:subject", h.AddNote)
	e.GET("/notes/:subject/search", h.SearchNotes)

	e.GET("/solutions/:subject", h.GetSolutions)
	e.POST("/solutions/:subject", h.AddSolution)
	e.GET("/solutions/:subject/search", h.SearchSolutions)

	e.GET("/history", h.GetAllHistory)
	e.GET("/history/:subject", h.GetHistory)
	e.DELETE("/history/:subject", h.ClearHistory)

	e.GET("/health", h.Health)
}

// Health returns health status and which API keys are configured.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"version":           "0.1.0",
		"openai_configured": h.config.OpenAIAPIKey != "",
		"tavily_configured": h.config.TavilyAPIKey != "",
	})
}
