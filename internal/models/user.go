package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq" // Required for pq.StringArray
	"gorm.io/gorm"
)

// Role names used for authority checks across the system.
const (
	RoleUser    = "ROLE_USER"
	RoleOfficer = "ROLE_OFFICER"
	RoleAdmin   = "ROLE_ADMIN"
)

// User represents a registered account: a citizen, an officer or an admin.
// Authority is carried as a set of role names rather than a join table.
type User struct {
	ID       string         `gorm:"primaryKey" json:"id"`
	FullName string         `json:"full_name"`
	Email    string         `gorm:"uniqueIndex" json:"email"`
	Roles    pq.StringArray `gorm:"type:text[]" json:"roles"`
}

// BeforeCreate is a GORM hook that generates a new UUID for the user
// if the ID has not been set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
