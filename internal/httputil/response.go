// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
)

// ContentTypeXML is the content type of call-control documents.
const ContentTypeXML = "text/xml; charset=utf-8"

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// XMLResponseGin writes an already rendered XML document with the XML content type.
func XMLResponseGin(c *gin.Context, statusCode int, document []byte) {
	c.Data(statusCode, ContentTypeXML, document)
}

// errorMapping ties a domain error to the status and body returned for it.
type errorMapping struct {
	target     error
	statusCode int
	code       string
	// message is returned as is; empty means the error text itself is returned.
	message string
}

// errorMappings is checked in order; the first matching target wins.
var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{
		apperrors.ErrTooManyRequests,
		http.StatusTooManyRequests,
		"rate_limit_exceeded",
		"Too many requests. Please retry after the specified delay.",
	},
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
// Unmapped errors, ErrInvalidConfig included, are internal errors and their text is not returned.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode := http.StatusInternalServerError
	errorResponse := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

	for _, mapping := range errorMappings {
		if !apperrors.Is(err, mapping.target) {
			continue
		}
		statusCode = mapping.statusCode
		errorResponse = ErrorResponse{Error: mapping.code, Message: mapping.message}
		if mapping.message == "" {
			errorResponse.Message = err.Error()
		}
		break
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed forms or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}
