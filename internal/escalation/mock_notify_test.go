package escalation_test

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEscalationToOwner(toEmail, ownerName, complaintTitle string, complaintID uint,
	reason, escalatedByName, escalatedByEmail string, escalatedAt time.Time) error {
	args := m.Called(toEmail, ownerName, complaintTitle, complaintID, reason, escalatedByName, escalatedByEmail, escalatedAt)
	return args.Error(0)
}

func (m *MockMailer) SendEscalationToAdmin(toEmail, adminName, complaintTitle string, complaintID uint, reason string) error {
	args := m.Called(toEmail, adminName, complaintTitle, complaintID, reason)
	return args.Error(0)
}

type MockOpsNotifier struct {
	mock.Mock
}

func (m *MockOpsNotifier) EscalationRaised(complaintID uint, complaintTitle, escalatedBy, reason string, escalatedAt time.Time) error {
	args := m.Called(complaintID, complaintTitle, escalatedBy, reason, escalatedAt)
	return args.Error(0)
}
