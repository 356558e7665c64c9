// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"esensi_dashboard_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code, label and message.
func Error(c *gin.Context, status int, label string, message string) {
	c.JSON(status, ErrorResponse{Error: label, Message: message})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values use their Kind for the status code; anything else
// is treated as a store/internal failure and surfaces as a 500 with the
// underlying message. Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, label string, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   label,
			Message: domainErr.Message,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: label, Message: err.Error()})
	return true
}
