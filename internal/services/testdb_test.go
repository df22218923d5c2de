package services

import (
	"fmt"
	"testing"
	"time"

	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Column{},
		&models.Card{},
		&models.Label{},
		&models.Comment{},
		&models.Attachment{},
		&models.Activity{},
		&models.Collection{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBoard(t *testing.T, db *gorm.DB, owner *models.User, name string, updatedAt time.Time) *models.Board {
	t.Helper()
	board := &models.Board{
		ID:        uuid.New(),
		Name:      name,
		Color:     "blue",
		OwnerID:   owner.ID,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	require.NoError(t, db.Create(board).Error)
	return board
}

func seedColumn(t *testing.T, db *gorm.DB, board *models.Board, name string, order int) *models.Column {
	t.Helper()
	column := &models.Column{
		ID:      uuid.New(),
		Name:    name,
		Order:   order,
		BoardID: board.ID,
	}
	require.NoError(t, db.Create(column).Error)
	return column
}

func seedCard(t *testing.T, db *gorm.DB, column *models.Column, title string, order int) *models.Card {
	t.Helper()
	card := &models.Card{
		ID:       uuid.New(),
		Title:    title,
		Order:    order,
		ColumnID: column.ID,
	}
	require.NoError(t, db.Create(card).Error)
	return card
}
