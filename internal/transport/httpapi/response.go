package httpapi

import (
	"errors"
	"net/http"

	"inventory-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform result shape rendered for every operation: a
// success flag, a human-readable message and, when relevant, the payload.
type Envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Record  any    `json:"record,omitempty"`
	Records any    `json:"records,omitempty"`
}

func RespondOK(c *gin.Context, message string, record any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Message: message, Record: record})
}

func RespondRecords(c *gin.Context, message string, records any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Message: message, Records: records})
}

func RespondError(c *gin.Context, err error) {
	c.JSON(statusOf(err), Envelope{OK: false, Message: err.Error()})
}

func statusOf(err error) int {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrStorageConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
