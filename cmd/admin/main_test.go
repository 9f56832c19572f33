package main

import (
	"errors"
	"fmt"
	"testing"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage/storagetest"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSeedAdmin_CreatesWhenAbsent verifies a missing user is created with
// both roles.
func TestSeedAdmin_CreatesWhenAbsent(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	storageMock.On("FindUserByEmail", "new@example.com").
		Return(nil, fmt.Errorf("user new@example.com: %w", apperr.ErrNotFound))

	var saved *models.User
	storageMock.On("SaveUser", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*models.User)
		}).Return(nil)

	// Act
	err := seedAdmin(storageMock, "new@example.com", "New Admin")

	// Assert
	assert.NoError(t, err)
	if assert.NotNil(t, saved) {
		assert.Equal(t, "new@example.com", saved.Email)
		assert.True(t, saved.HasRole(models.RoleAdmin))
	}
}

// TestSeedAdmin_PromotesExistingUser verifies an existing non-admin gains
// the admin role.
func TestSeedAdmin_PromotesExistingUser(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	existing := &models.User{ID: "user-1", Email: "jane@example.com", Roles: pq.StringArray{models.RoleUser}}
	storageMock.On("FindUserByEmail", "jane@example.com").Return(existing, nil)
	storageMock.On("SaveUser", existing).Return(nil)

	// Act
	err := seedAdmin(storageMock, "jane@example.com", "Jane Citizen")

	// Assert
	assert.NoError(t, err)
	assert.True(t, existing.HasRole(models.RoleAdmin))
}

// TestSeedAdmin_AlreadyAdmin verifies an existing admin is left untouched.
func TestSeedAdmin_AlreadyAdmin(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	existing := &models.User{ID: "admin-1", Email: "admin@example.com", Roles: pq.StringArray{models.RoleAdmin}}
	storageMock.On("FindUserByEmail", "admin@example.com").Return(existing, nil)

	// Act + Assert
	assert.NoError(t, seedAdmin(storageMock, "admin@example.com", "Existing Admin"))
	storageMock.AssertNotCalled(t, "SaveUser", mock.Anything)
}

// TestSeedAdmin_LookupFailure verifies a lookup failure other than
// NotFound aborts instead of inserting a duplicate.
func TestSeedAdmin_LookupFailure(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	storageMock.On("FindUserByEmail", "new@example.com").
		Return(nil, errors.New("connection refused"))

	// Act + Assert
	assert.Error(t, seedAdmin(storageMock, "new@example.com", "New Admin"))
	storageMock.AssertNotCalled(t, "SaveUser", mock.Anything)
}
