package services

import (
	"testing"
	"time"

	"taskboard-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCardService(db *gorm.DB) *CardService {
	activities := NewActivityService(db, nil)
	return NewCardService(db, NewBoardService(db, activities), activities)
}

func TestAddCardIncrementsTaskCounter(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(db)

	alice := seedUser(t, db, "alice@example.com")
	board := seedBoard(t, db, alice, "board", time.Now())
	column := seedColumn(t, db, board, "todo", 0)

	resp := svc.AddCard(alice.ID, board.ID, column.ID, CardInput{Title: "write tests"})
	require.Equal(t, fiber.StatusCreated, resp.Status)
	assert.Equal(t, "Card added successfully", resp.Message)

	card := resp.Data.(*models.Card)
	assert.Equal(t, column.ID, card.ColumnID)

	var reloaded models.Board
	require.NoError(t, db.First(&reloaded, "id = ?", board.ID).Error)
	assert.Equal(t, 1, reloaded.TotalTasks)
}

func TestAddCardTitleRequired(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(db)

	alice := seedUser(t, db, "alice@example.com")
	board := seedBoard(t, db, alice, "board", time.Now())
	column := seedColumn(t, db, board, "todo", 0)

	resp := svc.AddCard(alice.ID, board.ID, column.ID, CardInput{})
	assert.Equal(t, fiber.StatusBadRequest, resp.Status)
	assert.Equal(t, "Card title is required", resp.Error)
}

func TestAddCardWrongColumn(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(db)

	alice := seedUser(t, db, "alice@example.com")
	boardA := seedBoard(t, db, alice, "board a", time.Now())
	boardB := seedBoard(t, db, alice, "board b", time.Now())
	column := seedColumn(t, db, boardA, "todo", 0)

	resp := svc.AddCard(alice.ID, boardB.ID, column.ID, CardInput{Title: "misfiled"})
	assert.Equal(t, fiber.StatusNotFound, resp.Status)
	assert.Equal(t, "Column not found", resp.Error)

	missing := svc.AddCard(alice.ID, uuid.New(), column.ID, CardInput{Title: "lost"})
	assert.Equal(t, fiber.StatusNotFound, missing.Status)
	assert.Equal(t, "Board not found", missing.Error)
}

func TestGetCardsOrderedByPosition(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(db)

	alice := seedUser(t, db, "alice@example.com")
	board := seedBoard(t, db, alice, "board", time.Now())
	column := seedColumn(t, db, board, "todo", 0)
	other := seedColumn(t, db, board, "done", 1)

	second := seedCard(t, db, column, "second", 2)
	first := seedCard(t, db, column, "first", 1)
	seedCard(t, db, other, "elsewhere", 0)

	resp := svc.GetCards(board.ID, column.ID)
	require.Equal(t, fiber.StatusOK, resp.Status)

	cards := resp.Data.([]models.Card)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)
}
