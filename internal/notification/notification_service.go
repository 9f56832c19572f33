// Package notification manages the in-app notification records that
// clients poll: creation, listing, unread counts and the read flag.
package notification

import (
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage"
)

// Service handles the business logic for in-app notifications.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new notification service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Create appends a notification for the recipient. Read is false by
// construction.
func (s *Service) Create(userID, title, message string, complaintID *uint) (*models.Notification, error) {
	n := &models.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		ComplaintID: complaintID,
	}
	if err := s.Storage.CreateNotification(n); err != nil {
		return nil, err
	}
	return n, nil
}

// ListFor returns all notifications for the user, newest first.
func (s *Service) ListFor(userID string) ([]models.Notification, error) {
	return s.Storage.FindNotificationsForUser(userID)
}

// ListUnreadFor returns the user's unread notifications, newest first.
func (s *Service) ListUnreadFor(userID string) ([]models.Notification, error) {
	return s.Storage.FindUnreadNotificationsForUser(userID)
}

// CountUnreadFor returns the unread count shown on the notification bell.
func (s *Service) CountUnreadFor(userID string) (int64, error) {
	return s.Storage.CountUnreadNotifications(userID)
}

// MarkRead flips the read flag. Fails with NotFound for an unknown id.
func (s *Service) MarkRead(id uint) error {
	return s.Storage.MarkNotificationRead(id)
}

// MarkAllRead flips every unread notification for the user; a no-op when
// none are unread.
func (s *Service) MarkAllRead(userID string) error {
	return s.Storage.MarkAllNotificationsRead(userID)
}

// Delete removes a notification. Fails with NotFound for an unknown id.
func (s *Service) Delete(id uint) error {
	return s.Storage.DeleteNotification(id)
}
