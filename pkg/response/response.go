// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/maxviazov/biblioteca-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Every failure behind /datos is a server-side one, so all of them map to 500;
// the code only tells operators which stage broke.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	switch {
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusInternalServerError, ErrorPayload{Error: "database_unavailable"}
	case errors.Is(err, repository.ErrSchema):
		return http.StatusInternalServerError, ErrorPayload{Error: "schema_mismatch"}
	case errors.Is(err, service.ErrInvalidPages):
		return http.StatusInternalServerError, ErrorPayload{Error: "invalid_row"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
