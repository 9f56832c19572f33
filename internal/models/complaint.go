package models

import "gorm.io/gorm"

// Complaint priorities as submitted by the citizen.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Complaint is a citizen-submitted issue tracked through statuses until
// resolution. The embedded gorm.Model provides ID, CreatedAt and UpdatedAt;
// UpdatedAt advances on every save.
type Complaint struct {
	gorm.Model

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `json:"category"`
	Priority    string `gorm:"default:LOW" json:"priority"`
	// Anonymous complaints carry no owning user and receive no
	// escalation notifications.
	Anonymous bool `gorm:"not null;default:false" json:"anonymous"`

	UserID *string `gorm:"index" json:"user_id"`
	User   *User   `json:"user,omitempty"`

	AssignedOfficerID *string `gorm:"index" json:"assigned_officer_id"`
	AssignedOfficer   *User   `gorm:"foreignKey:AssignedOfficerID" json:"assigned_officer,omitempty"`

	StatusID uint            `json:"status_id"`
	Status   ComplaintStatus `json:"status"`
}
