package models

import "time"

type SessionReport struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID      string  `gorm:"size:36;index;not null" json:"client_id"`
	AppointmentID *string `gorm:"size:36" json:"appointment_id,omitempty"`

	Date    string `gorm:"size:10" json:"date"`
	Content string `gorm:"type:text" json:"content"`

	AttachmentKey         string `gorm:"size:255" json:"attachment_key,omitempty"`
	AttachmentContentType string `gorm:"size:100" json:"attachment_content_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
