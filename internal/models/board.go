package models

import (
	"time"

	"github.com/google/uuid"
)

// Board represents the database model
type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members     []User    `gorm:"many2many:board_members;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Columns     []Column  `gorm:"constraint:OnDelete:CASCADE" json:"columns,omitempty"`
	TotalTasks  int       `gorm:"not null;default:0" json:"totalTasks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// populated by list/get queries, not a real column
	ColumnCount int64 `gorm:"->;-:migration" json:"columnCount"`
}
