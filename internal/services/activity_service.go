package services

import (
	"encoding/json"
	"log"
	"time"

	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Broadcaster pushes an event to connected activity-feed clients.
type Broadcaster interface {
	Broadcast(v any)
}

// ActivityService records user actions. Recording is best-effort: a failed
// insert is logged and never fails the operation that triggered it.
type ActivityService struct {
	db  *gorm.DB
	hub Broadcaster
}

func NewActivityService(db *gorm.DB, hub Broadcaster) *ActivityService {
	return &ActivityService{db: db, hub: hub}
}

func (s *ActivityService) Record(userID uuid.UUID, typ models.ActivityType, action string, boardID, cardID *uuid.UUID, metadata map[string]any) {
	activity := &models.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Action:    action,
		BoardID:   boardID,
		CardID:    cardID,
		Timestamp: time.Now(),
	}

	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			log.Println(err, "Error encoding activity metadata")
			return
		}
		activity.Metadata = datatypes.JSON(bytes)
	}

	if err := s.db.Create(activity).Error; err != nil {
		log.Println(err, "Error recording activity")
		return
	}

	if s.hub != nil {
		s.hub.Broadcast(activity)
	}
}
