package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// Chat routes a message to its subject assistant and returns the reply.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	result, err := h.service.Chat(ctx, req.Message, req.SessionID)
	if err != nil {
		h.logger.Error("chat pipeline failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process message"})
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{
		Response:        result.Response,
		DetectedSubject: result.Subject,
		SessionID:       result.SessionID,
	})
}

// ListSubjects lists the fixed subject set.
// GET /subjects
func (h *Handler) ListSubjects(c echo.Context) error {
	subjects := domain.AllSubjects()
	return c.JSON(http.StatusOK, domain.SubjectListResponse{
		Subjects: subjects,
		Count:    len(subjects),
	})
}
