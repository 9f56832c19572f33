package complaint_test

import (
	"fmt"
	"testing"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/complaint"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var newStatus = models.ComplaintStatus{ID: 1, Code: models.StatusNew, Display: "New"}

// TestSubmit verifies a valid submission is saved with status NEW and a
// linked owner.
func TestSubmit(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	userID := "user-1"

	storageMock.On("FindStatusByCode", models.StatusNew).Return(&newStatus, nil)
	storageMock.On("FindUserByID", userID).Return(&models.User{ID: userID}, nil)
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)

	// Act
	c, err := svc.Submit(complaint.SubmitRequest{
		Title:       "Streetlight broken",
		Description: "The light on Elm St has been out for a week.",
		Category:    "INFRASTRUCTURE",
		Priority:    "high",
		UserID:      &userID,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusNew, c.Status.Code)
	assert.Equal(t, models.PriorityHigh, c.Priority)
	if assert.NotNil(t, c.UserID) {
		assert.Equal(t, userID, *c.UserID)
	}
}

// TestSubmit_BlankTitle verifies validation happens before any storage call.
func TestSubmit_BlankTitle(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	// Act
	c, err := svc.Submit(complaint.SubmitRequest{Title: " ", Description: "something"})

	// Assert
	assert.Nil(t, c)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	storageMock.AssertNotCalled(t, "SaveComplaint", mock.Anything)
}

// TestSubmit_UnknownPriority verifies the priority whitelist.
func TestSubmit_UnknownPriority(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	// Act
	_, err := svc.Submit(complaint.SubmitRequest{
		Title:       "t",
		Description: "d",
		Priority:    "URGENT",
	})

	// Assert
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

// TestSubmit_Anonymous verifies anonymous complaints never link an owner,
// even when a user id is supplied.
func TestSubmit_Anonymous(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	userID := "user-1"

	storageMock.On("FindStatusByCode", models.StatusNew).Return(&newStatus, nil)
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)

	// Act
	c, err := svc.Submit(complaint.SubmitRequest{
		Title:       "t",
		Description: "d",
		Anonymous:   true,
		UserID:      &userID,
	})

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, c.UserID)
	storageMock.AssertNotCalled(t, "FindUserByID", mock.Anything)
}

// TestUpdateStatus verifies the status write, officer assignment and the
// public audit comment.
func TestUpdateStatus(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	c := &models.Complaint{Status: newStatus, StatusID: newStatus.ID}
	c.ID = 42
	officerID := "officer-7"
	officer := &models.User{ID: officerID, Roles: []string{models.RoleOfficer}}
	assigned := models.ComplaintStatus{ID: 2, Code: models.StatusAssigned, Display: "Assigned"}
	actor := &models.User{ID: "admin-1", Roles: []string{models.RoleAdmin}}

	var savedComment *models.Comment
	storageMock.On("FindComplaintByID", uint(42)).Return(c, nil)
	storageMock.On("FindStatusByCode", models.StatusAssigned).Return(&assigned, nil)
	storageMock.On("FindUserByID", officerID).Return(officer, nil)
	storageMock.On("SaveComplaint", c).Return(nil)
	storageMock.On("SaveComment", mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			savedComment = args.Get(0).(*models.Comment)
		}).Return(nil)

	// Act
	err := svc.UpdateStatus(42, complaint.StatusUpdateRequest{
		StatusCode:        models.StatusAssigned,
		AssignedOfficerID: &officerID,
		Comment:           "Assigned to field team",
	}, actor)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, c.Status.Code)
	if assert.NotNil(t, c.AssignedOfficerID) {
		assert.Equal(t, officerID, *c.AssignedOfficerID)
	}
	if assert.NotNil(t, savedComment) {
		assert.Equal(t, "Assigned to field team", savedComment.Message)
		assert.False(t, savedComment.IsPrivate)
	}
}

// TestUpdateStatus_NotAnOfficer verifies assignment to a plain citizen is
// rejected.
func TestUpdateStatus_NotAnOfficer(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	c := &models.Complaint{Status: newStatus, StatusID: newStatus.ID}
	c.ID = 42
	citizenID := "user-2"
	assigned := models.ComplaintStatus{ID: 2, Code: models.StatusAssigned}

	storageMock.On("FindComplaintByID", uint(42)).Return(c, nil)
	storageMock.On("FindStatusByCode", models.StatusAssigned).Return(&assigned, nil)
	storageMock.On("FindUserByID", citizenID).
		Return(&models.User{ID: citizenID, Roles: []string{models.RoleUser}}, nil)

	// Act
	err := svc.UpdateStatus(42, complaint.StatusUpdateRequest{
		StatusCode:        models.StatusAssigned,
		AssignedOfficerID: &citizenID,
	}, nil)

	// Assert
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	storageMock.AssertNotCalled(t, "SaveComplaint", mock.Anything)
}

// TestAddComment_UnknownComplaint verifies commenting checks existence.
func TestAddComment_UnknownComplaint(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	author := &models.User{ID: "user-1"}

	storageMock.On("FindComplaintByID", uint(99)).
		Return(nil, fmt.Errorf("complaint 99: %w", apperr.ErrNotFound))

	// Act + Assert
	err := svc.AddComment(99, author, "hello", false)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	storageMock.AssertNotCalled(t, "SaveComment", mock.Anything)
}

// TestComments_PrivateFiltering verifies the includePrivate flag reaches
// storage unchanged.
func TestComments_PrivateFiltering(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	c := &models.Complaint{}
	c.ID = 42
	storageMock.On("FindComplaintByID", uint(42)).Return(c, nil)
	storageMock.On("FindComments", uint(42), false).
		Return([]models.Comment{{ComplaintID: 42, Message: "public"}}, nil)

	// Act
	comments, err := svc.Comments(42, false)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	storageMock.AssertCalled(t, "FindComments", uint(42), false)
}
