package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Date YYYY-MM-DD and Time HH:MM in the practice timezone.
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Type   string `gorm:"size:20;default:'Clinical'" json:"type"`
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Source string `gorm:"size:10" json:"source"`

	MeetLink string  `gorm:"size:255" json:"meet_link"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Notes    string  `gorm:"size:255" json:"notes"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
