package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserNotifications lists the acting user's notifications, newest first.
func (h *Handler) UserNotifications(c *gin.Context) {
	user := currentUser(c)
	notifications, err := h.Notifications.ListFor(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "notifications": notifications})
}

// UnreadNotifications lists the acting user's unread notifications.
func (h *Handler) UnreadNotifications(c *gin.Context) {
	user := currentUser(c)
	notifications, err := h.Notifications.ListUnreadFor(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "notifications": notifications})
}

// UnreadCount returns the acting user's unread count for the bell badge.
func (h *Handler) UnreadCount(c *gin.Context) {
	user := currentUser(c)
	count, err := h.Notifications.CountUnreadFor(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": count})
}

// MarkNotificationRead flips the read flag on one notification.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseUintParam(c, "notificationId")
	if !ok {
		return
	}
	if err := h.Notifications.MarkRead(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Notification marked as read"})
}

// MarkAllNotificationsRead flips every unread notification of the actor.
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	user := currentUser(c)
	if err := h.Notifications.MarkAllRead(user.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "All notifications marked as read"})
}

// DeleteNotification removes a notification.
func (h *Handler) DeleteNotification(c *gin.Context) {
	id, ok := parseUintParam(c, "notificationId")
	if !ok {
		return
	}
	if err := h.Notifications.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Notification deleted"})
}
