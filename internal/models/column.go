package models

import (
	"time"

	"github.com/google/uuid"
)

// Column represents the database model
type Column struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Order       int       `gorm:"column:position;not null;default:0" json:"order"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index" json:"boardId"`
	Cards       []Card    `gorm:"constraint:OnDelete:CASCADE" json:"cards,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
