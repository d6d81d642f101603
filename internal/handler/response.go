package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vietscan/internal/domain"
	"vietscan/internal/middleware"
)

// ErrorResponse is the envelope for requests rejected before extraction runs.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "image file is required"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type; allowed: jpg, jpeg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file exceeds maximum allowed size of 5MB"
	case errors.Is(err, domain.ErrInvalidDocumentType):
		return http.StatusBadRequest, "invalid document type"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.RequestIDKey)
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
