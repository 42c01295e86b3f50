package models

import "time"

type KanbanTask struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Title  string `gorm:"size:255;not null" json:"title"`
	Status string `gorm:"size:10;default:'todo'" json:"status"` // todo | doing | done

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
