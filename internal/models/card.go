package models

import (
	"time"

	"github.com/google/uuid"
)

// Card represents the database model
type Card struct {
	ID          uuid.UUID    `gorm:"type:uuid;primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"dueDate"`
	Order       int          `gorm:"column:position;not null;default:0" json:"order"`
	ColumnID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"columnId"`
	Labels      []Label      `gorm:"many2many:card_labels;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	Members     []User       `gorm:"many2many:card_members;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
