package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityType string

const (
	ActivityTypeBoard   ActivityType = "board"
	ActivityTypeColumn  ActivityType = "column"
	ActivityTypeCard    ActivityType = "card"
	ActivityTypeComment ActivityType = "comment"
	ActivityTypeMember  ActivityType = "member"
)

// Activity records a user action for the dashboard feed and stats.
type Activity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Type      ActivityType   `gorm:"default:'board'" json:"type"`
	Action    string         `gorm:"not null" json:"action"`
	BoardID   *uuid.UUID     `gorm:"type:uuid;index" json:"boardId,omitempty"`
	CardID    *uuid.UUID     `gorm:"type:uuid" json:"cardId,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	Timestamp time.Time      `gorm:"index" json:"timestamp"`
}
