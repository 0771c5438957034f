package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"finodex/internal/domain"
)

// APIResponse is the standard success envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a stable machine-readable code and a human message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK writes a success envelope.
func RespondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// RespondError writes an error envelope.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: message}})
}

// HandleError maps a domain error onto an HTTP status and error code.
func HandleError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("handler: internal error: %v", err)
		RespondError(c, status, domain.ErrorKind(err), "an internal error occurred")
		return
	}
	RespondError(c, status, domain.ErrorKind(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDocumentTypeNotFound),
		errors.Is(err, domain.ErrChecklistNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoReadableText):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrModelRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrModelAuth),
		errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrModelEmptyReply),
		errors.Is(err, domain.ErrInvalidResponseFormat),
		errors.Is(err, domain.ErrModel):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPromptNotFound):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
