package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/config"
	"resolveit/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage is the persistence surface consumed by the services. The
// escalation engine only depends on this interface, so tests swap in a
// mock without a database.
type Storage interface {
	// Complaints
	SaveComplaint(complaint *models.Complaint) error
	FindComplaintByID(id uint) (*models.Complaint, error)
	FindStaleComplaints(before time.Time, excludeStatusCode string) ([]models.Complaint, error)
	FindComplaintsByUser(userID string) ([]models.Complaint, error)
	FindComplaintsByOfficer(officerID string) ([]models.Complaint, error)
	FindUnassignedComplaints() ([]models.Complaint, error)

	// Status reference data
	FindStatusByCode(code string) (*models.ComplaintStatus, error)

	// Users
	SaveUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	FindUsersByRole(role string) ([]models.User, error)

	// Comments
	SaveComment(comment *models.Comment) error
	FindComments(complaintID uint, includePrivate bool) ([]models.Comment, error)

	// Escalations
	SaveEscalation(escalation *models.Escalation) error
	FindEscalationByID(id uint) (*models.Escalation, error)
	FindEscalationsByComplaintID(complaintID uint) ([]models.Escalation, error)
	FindUnresolvedEscalations() ([]models.Escalation, error)

	// In-app notifications
	CreateNotification(n *models.Notification) error
	FindNotificationsForUser(userID string) ([]models.Notification, error)
	FindUnreadNotificationsForUser(userID string) ([]models.Notification, error)
	CountUnreadNotifications(userID string) (int64, error)
	MarkNotificationRead(id uint) error
	MarkAllNotificationsRead(userID string) error
	DeleteNotification(id uint) error

	// Transaction runs fn against a Storage bound to a single database
	// transaction.
	Transaction(fn func(tx Storage) error) error
}

// Service is the PostgreSQL/Redis-backed implementation of Storage.
type Service struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Ctx    context.Context
	Logger *zap.Logger
}

// NewStorageService Constructor. Redis may be nil for callers that do not
// need the unread-count cache (e.g. the admin CLI).
func NewStorageService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Service {
	return &Service{
		DB:     db,
		Redis:  rdb,
		Ctx:    context.Background(),
		Logger: log,
	}
}

// Transaction runs fn inside a database transaction. The Redis client and
// logger are shared with the derived Storage.
func (s *Service) Transaction(fn func(tx Storage) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&Service{DB: tx, Redis: s.Redis, Ctx: s.Ctx, Logger: s.Logger})
	})
}

// ---- Complaints ----

// SaveComplaint creates or updates a complaint. GORM refreshes UpdatedAt
// on every save.
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	if err := s.DB.Save(complaint).Error; err != nil {
		s.Logger.Error("failed to save complaint", zap.Uint("complaint_id", complaint.ID), zap.Error(err))
		return err
	}
	return nil
}

// FindComplaintByID loads a complaint with its status, owner and assigned
// officer.
func (s *Service) FindComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Preload("Status").Preload("User").Preload("AssignedOfficer").
		First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("complaint %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// FindStaleComplaints returns complaints created before the given cutoff
// whose status code differs from excludeStatusCode. This is the sweep's
// candidate query.
func (s *Service) FindStaleComplaints(before time.Time, excludeStatusCode string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Status").Preload("User").
		Joins("JOIN complaint_status ON complaint_status.id = complaints.status_id").
		Where("complaints.created_at < ?", before).
		Where("complaint_status.code != ?", excludeStatusCode).
		Find(&complaints).Error
	if err != nil {
		s.Logger.Error("failed to query stale complaints", zap.Error(err))
		return nil, err
	}
	return complaints, nil
}

func (s *Service) FindComplaintsByUser(userID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Status").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&complaints).Error
	return complaints, err
}

func (s *Service) FindComplaintsByOfficer(officerID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Status").Preload("User").
		Where("assigned_officer_id = ?", officerID).
		Order("created_at desc").
		Find(&complaints).Error
	return complaints, err
}

func (s *Service) FindUnassignedComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Status").Preload("User").
		Where("assigned_officer_id IS NULL").
		Order("created_at desc").
		Find(&complaints).Error
	return complaints, err
}

// ---- Status reference data ----

func (s *Service) FindStatusByCode(code string) (*models.ComplaintStatus, error) {
	var status models.ComplaintStatus
	err := s.DB.Where("code = ?", code).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("status %s: %w", code, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ---- Users ----

func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUsersByRole returns every user holding the given role. Roles are a
// PostgreSQL text[] column, so membership is tested with ANY.
func (s *Service) FindUsersByRole(role string) ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("? = ANY(roles)", role).Find(&users).Error
	if err != nil {
		s.Logger.Error("failed to query users by role", zap.String("role", role), zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ---- Comments ----

func (s *Service) SaveComment(comment *models.Comment) error {
	return s.DB.Create(comment).Error
}

func (s *Service) FindComments(complaintID uint, includePrivate bool) ([]models.Comment, error) {
	q := s.DB.Preload("Author").
		Where("complaint_id = ?", complaintID).
		Order("created_at asc")
	if !includePrivate {
		q = q.Where("is_private = ?", false)
	}
	var comments []models.Comment
	err := q.Find(&comments).Error
	return comments, err
}

// ---- Escalations ----

func (s *Service) SaveEscalation(escalation *models.Escalation) error {
	return s.DB.Save(escalation).Error
}

func (s *Service) FindEscalationByID(id uint) (*models.Escalation, error) {
	var escalation models.Escalation
	err := s.DB.First(&escalation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("escalation %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &escalation, nil
}

func (s *Service) FindEscalationsByComplaintID(complaintID uint) ([]models.Escalation, error) {
	var escalations []models.Escalation
	err := s.DB.Where("complaint_id = ?", complaintID).
		Order("escalated_at desc").
		Find(&escalations).Error
	return escalations, err
}

func (s *Service) FindUnresolvedEscalations() ([]models.Escalation, error) {
	var escalations []models.Escalation
	err := s.DB.Preload("Complaint").Preload("Complaint.Status").
		Where("resolved = ?", false).
		Order("escalated_at desc").
		Find(&escalations).Error
	return escalations, err
}

// ---- In-app notifications ----

func (s *Service) CreateNotification(n *models.Notification) error {
	if err := s.DB.Create(n).Error; err != nil {
		s.Logger.Error("failed to create notification", zap.String("user_id", n.UserID), zap.Error(err))
		return err
	}
	s.invalidateUnreadCount(n.UserID)
	return nil
}

func (s *Service) FindNotificationsForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

func (s *Service) FindUnreadNotificationsForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ? AND read = ?", userID, false).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

// CountUnreadNotifications returns the unread count for a user. The count
// is cached in Redis because the notification bell polls it frequently.
func (s *Service) CountUnreadNotifications(userID string) (int64, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(s.Ctx, unreadCountKey(userID)).Result()
		if err == nil {
			if count, convErr := strconv.ParseInt(cached, 10, 64); convErr == nil {
				return count, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("unread count cache read failed", zap.Error(err))
		}
	}

	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(s.Ctx, unreadCountKey(userID), count, config.UnreadCountCacheTTL).Err(); err != nil {
			s.Logger.Warn("unread count cache write failed", zap.Error(err))
		}
	}
	return count, nil
}

func (s *Service) MarkNotificationRead(id uint) error {
	var notification models.Notification
	err := s.DB.First(&notification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("notification %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if notification.Read {
		return nil
	}
	if err := s.DB.Model(&notification).Update("read", true).Error; err != nil {
		return err
	}
	s.invalidateUnreadCount(notification.UserID)
	return nil
}

// MarkAllNotificationsRead flips every unread notification for the user.
// A user with no unread notifications is a no-op, not an error.
func (s *Service) MarkAllNotificationsRead(userID string) error {
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		return err
	}
	s.invalidateUnreadCount(userID)
	return nil
}

func (s *Service) DeleteNotification(id uint) error {
	var notification models.Notification
	err := s.DB.First(&notification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("notification %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&notification).Error; err != nil {
		return err
	}
	s.invalidateUnreadCount(notification.UserID)
	return nil
}

func (s *Service) invalidateUnreadCount(userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(s.Ctx, unreadCountKey(userID)).Err(); err != nil {
		s.Logger.Warn("unread count cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func unreadCountKey(userID string) string {
	return "notif:unread:" + userID
}
