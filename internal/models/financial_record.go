package models

import "time"

type FinancialRecord struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `gorm:"size:10;not null" json:"type"` // income | expense
	Date        string  `gorm:"size:10;index" json:"date"`
	Category    string  `gorm:"size:50" json:"category"`

	AppointmentID *string `gorm:"size:36;uniqueIndex" json:"appointment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
