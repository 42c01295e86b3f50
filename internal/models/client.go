package models

import "time"

// Cliente da clínica. Criado no primeiro agendamento público ou pelo painel.
type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100;index" json:"email"`

	Status          string  `gorm:"size:20;default:'pending'" json:"status"`
	TreatmentStage  string  `gorm:"size:50" json:"treatment_stage"`
	LastSessionDate *string `gorm:"size:10" json:"last_session_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
