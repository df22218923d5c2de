package services

import (
	"log"
	"time"

	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardService struct {
	db         *gorm.DB
	boards     *BoardService
	activities *ActivityService
}

func NewCardService(db *gorm.DB, boards *BoardService, activities *ActivityService) *CardService {
	return &CardService{db: db, boards: boards, activities: activities}
}

// GetCards lists the cards of a column in display order, after confirming
// that the column belongs to the addressed board.
func (s *CardService) GetCards(boardID, columnID uuid.UUID) *Response {
	board, errResp := s.boards.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}
	if findColumn(board, columnID) == nil {
		return notFound("Column not found")
	}

	var cards []models.Card
	err := s.db.Where("column_id = ?", columnID).Order("position").Find(&cards).Error
	if err != nil {
		log.Println(err, "Error getting cards")
		return internal("Failed to fetch cards")
	}
	return ok(cards)
}

type CardInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Order       int        `json:"order"`
}

func (s *CardService) AddCard(userID, boardID, columnID uuid.UUID, in CardInput) *Response {
	if in.Title == "" {
		return badRequest("Card title is required")
	}

	board, errResp := s.boards.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}
	if findColumn(board, columnID) == nil {
		return notFound("Column not found")
	}

	card := &models.Card{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Order:       in.Order,
		ColumnID:    columnID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.Create(card).Error; err != nil {
		log.Println(err, "Error adding card")
		return internal("Failed to add card")
	}

	err := s.db.Model(&models.Board{}).Where("id = ?", boardID).
		Update("total_tasks", gorm.Expr("total_tasks + 1")).Error
	if err != nil {
		log.Println(err, "Error updating board task counter")
	}

	s.activities.Record(userID, models.ActivityTypeCard, "added card", &board.ID, &card.ID, map[string]any{
		"cardTitle": card.Title,
	})
	return created(card, "Card added successfully")
}
