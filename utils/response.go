package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
)

// Envelope is the uniform response wrapper. Success responses omit Error;
// failure responses omit Data.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// Error classifies err and writes the matching failure envelope. Anything
// that is not an application error is treated as an internal fault and its
// detail is logged rather than returned.
func Error(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}

	if appErr.Kind == apperrors.KindInternalFault && appErr.Err != nil {
		log.Printf("internal fault on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.JSON(StatusFor(appErr.Kind), Envelope{Success: false, Error: appErr.Message})
}

// AbortWithError is Error plus request abortion, for middleware.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// StatusFor maps every error kind to exactly one HTTP status. The switch is
// total over the Kind enum; a new kind without a case here is a defect.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindMalformedToken,
		apperrors.KindExpiredToken,
		apperrors.KindRevokedToken,
		apperrors.KindServiceUnavailable:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnregisteredIdentity,
		apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindMissingField,
		apperrors.KindInvalidReference,
		apperrors.KindSelfReference:
		return http.StatusBadRequest
	case apperrors.KindInvalidTransition,
		apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindInternalFault:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
