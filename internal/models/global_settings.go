package models

import "time"

// Configuração única da clínica (sempre ID 1).
type GlobalSettings struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	DefaultPrice    float64 `gorm:"not null" json:"default_price"`
	DefaultDuration int     `gorm:"not null" json:"default_duration"`

	UpdatedAt time.Time `json:"updated_at"`
}
