package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/studyhub/platform/domain"
)

// GetSolutions lists all solutions for a subject, oldest first.
// GET /solutions/:subject
func (h *Handler) GetSolutions(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	solutions, err := h.store.GetSolutions(ctx, subject)
	if err != nil {
		h.logger.Error("failed to get solutions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get solutions"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject":   subject,
		"solutions": solutions,
		"count":     len(solutions),
	})
}

// AddSolution saves a problem-solution pair for a subject.
// POST /solutions/:subject
func (h *Handler) AddSolution(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	var req domain.SolutionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Problem == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "problem is required"})
	}
	if req.Solution == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "solution is required"})
	}

	solution := &domain.Solution{
		SolutionID: "sol_" + uuid.New().String()[:8],
		Subject:    subject,
		Problem:    req.Problem,
		Solution:   req.Solution,
		Tags:       req.Tags,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.AddSolution(ctx, solution); err != nil {
		h.logger.Error("failed to add solution", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add solution"})
	}

	return c.JSON(http.StatusOK, domain.SolutionResponse{
		Solution: solution,
		Message:  "Solution saved successfully",
	})
}

// SearchSolutions searches a subject's solutions by substring.
// GET /solutions/:subject/search?query=...
func (h *Handler) SearchSolutions(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := domain.ParseSubject(c.Param("subject"))
	if err != nil {
		return invalidSubject(c)
	}

	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}

	solutions, err := h.store.SearchSolutions(ctx, subject, query)
	if err != nil {
		h.logger.Error("failed to search solutions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to search solutions"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subject":   subject,
		"query":     query,
		"solutions": solutions,
		"count":     len(solutions),
	})
}
