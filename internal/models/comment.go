package models

import "time"

// Comment is a note attached to a complaint. System-generated escalation
// comments have a nil author.
type Comment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ComplaintID uint    `gorm:"not null;index" json:"complaint_id"`
	AuthorID    *string `json:"author_id"`
	Author      *User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	Message   string    `gorm:"type:text;not null" json:"message"`
	IsPrivate bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}
