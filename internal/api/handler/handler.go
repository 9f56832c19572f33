// Package handler exposes the HTTP surface: complaints, escalations and
// in-app notifications.
package handler

import (
	"errors"
	"net/http"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/complaint"
	"resolveit/backend/internal/escalation"
	"resolveit/backend/internal/notification"
	"resolveit/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the services behind the HTTP routes.
type Handler struct {
	Complaints    *complaint.Service
	Escalations   *escalation.Service
	Notifications *notification.Service
	Storage       storage.Storage
	Logger        *zap.Logger
}

func NewHandler(
	complaints *complaint.Service,
	escalations *escalation.Service,
	notifications *notification.Service,
	s storage.Storage,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Complaints:    complaints,
		Escalations:   escalations,
		Notifications: notifications,
		Storage:       s,
		Logger:        log,
	}
}

// fail writes an error response with a status derived from the error
// taxonomy: NotFound → 404, InvalidInput → 400, anything else → 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, apperr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		h.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal error"})
	}
}
