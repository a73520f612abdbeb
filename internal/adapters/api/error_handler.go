package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherstack.app/internal/ports"
	errorspkg "weatherstack.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors onto HTTP responses
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		s.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ExternalAPIError, errorspkg.ShapeValidationError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.DatabaseError:
		statusCode = http.StatusServiceUnavailable
		message = "Database unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		s.logFailure(c, err)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func (s *HTTPServerAdapter) logFailure(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed",
		ports.F("path", c.Request.URL.Path),
		ports.F("error", err))
}
