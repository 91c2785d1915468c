package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// GetNotes lists all notes for a subject, oldest first.
// GET /notes/:subject
func (h *Handler) GetNotes(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	notes, err := h.store.GetNotes(ctx, subject)
	if err != nil {
		h.logger.Error("failed to get notes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get notes"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject": subject,
		"notes":   notes,
		"count":   len(notes),
	})
}

// AddNote saves a note for a subject.
// POST /notes/:subject
func (h *Handler) AddNote(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	var req domain.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	note := &domain.Note{
		NoteID:    "note_" + uuid.New().String()[:8],
		Subject:   subject,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.AddNote(ctx, note); err != nil {
		h.logger.Error("failed to add note", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add note"})
	}

	return c.JSON(http.StatusOK, domain.NoteResponse{
		Note:    note,
		Message: "Note created successfully",
	})
}

// SearchNotes searches a subject's notes by substring.
// GET /notes/:subject/search?query=...
func (h *Handler) SearchNotes(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}

	notes, err := h.store.SearchNotes(ctx, subject, query)
	if err != nil {
		h.logger.Error("failed to search notes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to search notes"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject": subject,
		"query":   query,
		"notes":   notes,
		"count":   len(notes),
	})
}
