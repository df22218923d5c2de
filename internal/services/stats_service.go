package services

import (
	"log"
	"time"

	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentActivityWindow = 7 * 24 * time.Hour

type DashboardStats struct {
	TotalBoards      int64 `json:"totalBoards"`
	TeamMembers      int64 `json:"teamMembers"`
	Collections      int64 `json:"collections"`
	RecentActivities int64 `json:"recentActivities"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetDashboardStats aggregates the dashboard counters. Zero is a valid
// count; a failed query is reported as a failure, not papered over.
func (s *StatsService) GetDashboardStats(userID uuid.UUID) *Response {
	var stats DashboardStats

	err := s.db.Model(&models.Board{}).
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Distinct("boards.id").
		Count(&stats.TotalBoards).Error
	if err != nil {
		log.Println(err, "Error counting boards")
		return internal("Failed to load dashboard stats")
	}

	if err := s.db.Model(&models.User{}).Count(&stats.TeamMembers).Error; err != nil {
		log.Println(err, "Error counting users")
		return internal("Failed to load dashboard stats")
	}

	if err := s.db.Model(&models.Collection{}).Count(&stats.Collections).Error; err != nil {
		log.Println(err, "Error counting collections")
		return internal("Failed to load dashboard stats")
	}

	since := time.Now().Add(-recentActivityWindow)
	err = s.db.Model(&models.Activity{}).
		Where("timestamp >= ?", since).
		Count(&stats.RecentActivities).Error
	if err != nil {
		log.Println(err, "Error counting activities")
		return internal("Failed to load dashboard stats")
	}

	return ok(stats)
}
