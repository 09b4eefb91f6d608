// Package response is the single boundary between service errors and the
// wire. Success bodies are {"data": ...}; failures are {"message": ...} with
// the HTTP status derived from the error kind. No other package writes
// statuses or client messages.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards-api/pkg/apperr"
)

// Data writes a success envelope.
func Data(c *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"data": data})
}

// Fail maps an error to a status and client message. Internal errors are
// normalized so no internal detail leaks.
func Fail(c *gin.Context, err error) {
	status, msg := statusAndMessage(err)
	c.JSON(status, gin.H{"message": msg})
}

// AbortFail is Fail for middleware: it also stops the handler chain.
func AbortFail(c *gin.Context, err error) {
	status, msg := statusAndMessage(err)
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

func statusAndMessage(err error) (int, string) {
	kind := apperr.KindOf(err)
	status := StatusOf(kind)
	if kind == apperr.KindInternal {
		return status, "Internal Server Error"
	}
	return status, apperr.MessageOf(err)
}

// StatusOf maps an error kind to its HTTP status code.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
