package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyhub/platform/domain"
)

// invalidSubject writes the 400 response for an unknown :subject path
// parameter, listing the valid set. The general fallback is addressable
// like any other subject.
func invalidSubject(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":          "invalid subject: " + c.Param("subject"),
		"valid_subjects": append(domain.AllSubjects(), domain.SubjectGeneral),
	})
}

// sessionParam returns the session_id query parameter, defaulting when
// absent.
func sessionParam(c echo.Context) string {
	if sid := c.QueryParam("session_id"); sid != "" {
		return sid
	}
	return domain.DefaultSessionID
}
