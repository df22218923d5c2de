package models

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CardID    uuid.UUID `gorm:"type:uuid;not null;index" json:"cardId"`
	FileName  string    `gorm:"not null" json:"fileName"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
