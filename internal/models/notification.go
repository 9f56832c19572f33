package models

import "time"

// Notification is an in-app message for exactly one recipient. Delivery
// is pull-based: clients poll their list and unread count.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"not null;index" json:"user_id"`

	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	// ComplaintID links the notification back to the complaint that
	// produced it, when there is one.
	ComplaintID *uint `json:"complaint_id"`

	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
