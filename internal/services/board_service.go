package services

import (
	"errors"
	"log"
	"time"

	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardService covers board CRUD and the column operations scoped under a
// board. Column operations re-fetch the parent board and check that the
// target column actually belongs to it; a column id from another board is
// indistinguishable from a missing one.
type BoardService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewBoardService(db *gorm.DB, activities *ActivityService) *BoardService {
	return &BoardService{db: db, activities: activities}
}

func (s *BoardService) columnCountSubquery() *gorm.DB {
	return s.db.Model(&models.Column{}).
		Select("count(*)").
		Where("columns.board_id = boards.id")
}

// GetUserBoards lists boards where the user is owner or member, most
// recently updated first.
func (s *BoardService) GetUserBoards(userID uuid.UUID) *Response {
	var boards []models.Board
	err := s.db.Model(&models.Board{}).
		Select("boards.*, (?) AS column_count", s.columnCountSubquery()).
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Group("boards.id").
		Preload("Owner").
		Preload("Members").
		Order("boards.updated_at DESC").
		Find(&boards).Error
	if err != nil {
		log.Println(err, "Error getting user boards")
		return internal("Failed to get user boards")
	}
	return ok(boards)
}

func (s *BoardService) GetBoard(id uuid.UUID) *Response {
	var board models.Board
	err := s.db.Model(&models.Board{}).
		Select("boards.*, (?) AS column_count", s.columnCountSubquery()).
		Preload("Owner").
		Preload("Members").
		First(&board, "boards.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("Board not found")
	}
	if err != nil {
		log.Println(err, "Error getting board")
		return internal("Failed to fetch board")
	}
	return ok(&board)
}

type CreateBoardInput struct {
	Name        string
	Description string
	Color       string
}

func (s *BoardService) CreateBoard(owner *models.User, in CreateBoardInput) *Response {
	board := &models.Board{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		OwnerID:     owner.ID,
		TotalTasks:  0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.Create(board).Error; err != nil {
		log.Println(err, "Error creating board")
		return internal("Failed to create board")
	}
	board.Owner = owner

	s.activities.Record(owner.ID, models.ActivityTypeBoard, "created board", &board.ID, nil, map[string]any{
		"boardName": board.Name,
	})
	return created(board, "Board created successfully")
}

// DeleteBoard removes the board; the store's cascade takes the columns and
// cards with it.
func (s *BoardService) DeleteBoard(userID, id uuid.UUID) *Response {
	res := s.db.Delete(&models.Board{}, "id = ?", id)
	if res.Error != nil {
		log.Println(res.Error, "Error deleting board")
		return internal("Failed to delete board")
	}
	if res.RowsAffected == 0 {
		return notFound("Board not found")
	}

	s.activities.Record(userID, models.ActivityTypeBoard, "deleted board", &id, nil, nil)
	return okMessage(nil, "Board deleted successfully")
}

// fetchBoardWithColumns is the shared existence check for column and card
// operations.
func (s *BoardService) fetchBoardWithColumns(boardID uuid.UUID) (*models.Board, *Response) {
	var board models.Board
	err := s.db.Preload("Columns", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).First(&board, "id = ?", boardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Board not found")
	}
	if err != nil {
		log.Println(err, "Error fetching board")
		return nil, internal("Failed to fetch board")
	}
	return &board, nil
}

func findColumn(board *models.Board, columnID uuid.UUID) *models.Column {
	for i := range board.Columns {
		if board.Columns[i].ID == columnID {
			return &board.Columns[i]
		}
	}
	return nil
}

func (s *BoardService) GetColumns(boardID uuid.UUID) *Response {
	board, errResp := s.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}
	return ok(board.Columns)
}

type ColumnInput struct {
	Name        string
	Description string
	Color       string
	Order       int
}

func (s *BoardService) AddColumn(userID, boardID uuid.UUID, in ColumnInput) *Response {
	board, errResp := s.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}

	column := &models.Column{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Order:       in.Order,
		BoardID:     board.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.Create(column).Error; err != nil {
		log.Println(err, "Error adding column")
		return internal("Failed to add column")
	}

	s.activities.Record(userID, models.ActivityTypeColumn, "added column", &board.ID, nil, map[string]any{
		"columnName": column.Name,
	})
	return created(column, "Column added successfully")
}

// ColumnPatch enumerates the updatable column fields; only fields present
// in the request are applied.
type ColumnPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Order       *int    `json:"order"`
}

func (s *BoardService) UpdateColumn(boardID, columnID uuid.UUID, patch ColumnPatch) *Response {
	board, errResp := s.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}
	column := findColumn(board, columnID)
	if column == nil {
		return notFound("Column not found")
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Color != nil {
		updates["color"] = *patch.Color
	}
	if patch.Order != nil {
		updates["position"] = *patch.Order
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		err := s.db.Model(&models.Column{}).Where("id = ?", columnID).Updates(updates).Error
		if err != nil {
			log.Println(err, "Error updating column")
			return internal("Failed to update column")
		}
	}

	var updated models.Column
	if err := s.db.First(&updated, "id = ?", columnID).Error; err != nil {
		log.Println(err, "Error reloading column")
		return internal("Failed to update column")
	}
	return okMessage(&updated, "Column updated successfully")
}

func (s *BoardService) DeleteColumn(boardID, columnID uuid.UUID) *Response {
	board, errResp := s.fetchBoardWithColumns(boardID)
	if errResp != nil {
		return errResp
	}
	column := findColumn(board, columnID)
	if column == nil {
		return notFound("Column not found")
	}

	if err := s.db.Delete(&models.Column{}, "id = ?", columnID).Error; err != nil {
		log.Println(err, "Error deleting column")
		return internal("Failed to delete column")
	}
	return okMessage(column, "Column deleted successfully")
}
