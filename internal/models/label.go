package models

import "github.com/google/uuid"

type Label struct {
	ID    uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name  string    `json:"name"`
	Color string    `gorm:"not null" json:"color"`
}
