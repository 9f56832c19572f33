package models

import "time"

// Escalation marks that a complaint was promoted to higher-authority
// attention. A row is created exactly once per escalation event and is
// never updated afterwards except for the Resolved flag, which is
// independent of the complaint's own status.
type Escalation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ComplaintID uint       `gorm:"not null;index" json:"complaint_id"`
	Complaint   *Complaint `json:"complaint,omitempty"`

	// EscalatedToRole is the authority tier the complaint was promoted
	// to, currently always ROLE_ADMIN.
	EscalatedToRole string    `gorm:"not null" json:"escalated_to_role"`
	Reason          string    `gorm:"type:text;not null" json:"reason"`
	EscalatedAt     time.Time `json:"escalated_at"`
	Resolved        bool      `gorm:"default:false" json:"resolved"`
}
