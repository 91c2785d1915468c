package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// GetHistory returns a session's conversation history for one subject,
// oldest first.
// GET /history/:subject?session_id=...&limit=...
func (h *Handler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}
	sessionID := sessionParam(c)
	limit := limitParam(c, 20)

	messages, err := h.store.GetHistory(ctx, sessionID, subject, limit)
	if err != nil {
		h.logger.Error("failed to get history", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get history"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject":    subject,
		"session_id": sessionID,
		"messages":   messages,
		"count":      len(messages),
	})
}

// GetAllHistory returns a session's history across every subject,
// oldest first.
// GET /history?session_id=...&limit=...
func (h *Handler) GetAllHistory(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := sessionParam(c)
	limit := limitParam(c, 50)

	messages, err := h.store.GetAllHistory(ctx, sessionID, limit)
	if err != nil {
		h.logger.Error("failed to get history", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get history"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   messages,
		"count":      len(messages),
	})
}

// ClearHistory deletes a session's history for one subject. Other
// subjects and sessions are untouched.
// DELETE /history/:subject?session_id=...
func (h *Handler) ClearHistory(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}
	sessionID := sessionParam(c)

	if err := h.store.ClearHistory(ctx, sessionID, subject); err != nil {
		h.logger.Error("failed to clear history", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to clear history"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject":    subject,
		"session_id": sessionID,
		"message":    "History cleared",
	})
}

// limitParam parses the limit query parameter. limit=0 means no limit.
func limitParam(c echo.Context, defaultLimit int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return defaultLimit
	}
	return limit
}
