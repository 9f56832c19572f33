// Package storagetest provides a testify mock of the Storage interface
// shared by the service test packages.
package storagetest

import (
	"time"

	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a hand-written testify mock of storage.Storage.
type MockStorage struct {
	mock.Mock
}

var _ storage.Storage = (*MockStorage)(nil)

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) FindComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) FindStaleComplaints(before time.Time, excludeStatusCode string) ([]models.Complaint, error) {
	args := m.Called(before, excludeStatusCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) FindComplaintsByUser(userID string) ([]models.Complaint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) FindComplaintsByOfficer(officerID string) ([]models.Complaint, error) {
	args := m.Called(officerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) FindUnassignedComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) FindStatusByCode(code string) (*models.ComplaintStatus, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComplaintStatus), args.Error(1)
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) FindUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) FindUsersByRole(role string) ([]models.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) SaveComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockStorage) FindComments(complaintID uint, includePrivate bool) ([]models.Comment, error) {
	args := m.Called(complaintID, includePrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockStorage) SaveEscalation(escalation *models.Escalation) error {
	args := m.Called(escalation)
	return args.Error(0)
}

func (m *MockStorage) FindEscalationByID(id uint) (*models.Escalation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Escalation), args.Error(1)
}

func (m *MockStorage) FindEscalationsByComplaintID(complaintID uint) ([]models.Escalation, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Escalation), args.Error(1)
}

func (m *MockStorage) FindUnresolvedEscalations() ([]models.Escalation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Escalation), args.Error(1)
}

func (m *MockStorage) CreateNotification(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStorage) FindNotificationsForUser(userID string) ([]models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockStorage) FindUnreadNotificationsForUser(userID string) ([]models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockStorage) CountUnreadNotifications(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) MarkNotificationRead(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) MarkAllNotificationsRead(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockStorage) DeleteNotification(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Transaction executes fn directly against the mock itself, so calls made
// inside a transaction are recorded like any other call.
func (m *MockStorage) Transaction(fn func(tx storage.Storage) error) error {
	return fn(m)
}
