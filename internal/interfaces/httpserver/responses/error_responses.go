package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/requests"
	"github.com/Cre-XeOnz/XeonzGen/internal/utils/platformerrors"
)

// ErrorResponse is the JSON error envelope. Internal detail never leaves the
// server; Message carries a short generic description.
type ErrorResponse struct {
	Code    string                    `json:"code,omitempty"`
	Message string                    `json:"message"`
	Errors  []requests.FieldViolation `json:"errors,omitempty"`
}

// HandleError maps domain errors to HTTP responses.
func HandleError(c *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		status := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		msg := domainErr.Message
		if msg == "" {
			msg = message
		}

		c.AbortWithStatusJSON(status, ErrorResponse{
			Code:    domainErr.GetUUID(),
			Message: msg,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}

// HandleValidationError returns a 400 with per-field violations.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message: "Invalid request data",
		Errors:  requests.Violations(err),
	})
}
