package handlers

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/services"

	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
)

type BoardHandler struct {
	svc *services.BoardService
}

func NewBoardHandler(svc *services.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// function to list the caller's boards
func (h *BoardHandler) GetBoards(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	return respond(c, h.svc.GetUserBoards(user.ID))
}

// function to create a board
func (h *BoardHandler) CreateBoard(c *fiber.Ctx) error {
	var dto struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if dto.Name == nil || *dto.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Board name is required",
		})
	}
	if dto.Description == nil || dto.Color == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid fields",
		})
	}

	user := auth.CurrentUser(c)
	return respond(c, h.svc.CreateBoard(user, services.CreateBoardInput{
		Name:        *dto.Name,
		Description: *dto.Description,
		Color:       *dto.Color,
	}))
}

// function to get a board by ID
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}
	return respond(c, h.svc.GetBoard(boardID))
}

// function to delete a board
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}
	user := auth.CurrentUser(c)
	return respond(c, h.svc.DeleteBoard(user.ID, boardID))
}

// function to list a board's columns
func (h *BoardHandler) GetColumns(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}
	return respond(c, h.svc.GetColumns(boardID))
}

// function to add a column to a board
func (h *BoardHandler) AddColumn(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	var dto struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Order       int    `json:"order"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Column name is required",
		})
	}

	user := auth.CurrentUser(c)
	return respond(c, h.svc.AddColumn(user.ID, boardID, services.ColumnInput{
		Name:        dto.Name,
		Description: dto.Description,
		Color:       dto.Color,
		Order:       dto.Order,
	}))
}

// function to partially update a column
func (h *BoardHandler) UpdateColumn(c *fiber.Ctx) error {
	boardID, columnID, okParams := parseColumnParams(c)
	if !okParams {
		return nil
	}

	var patch services.ColumnPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request data",
		})
	}
	return respond(c, h.svc.UpdateColumn(boardID, columnID, patch))
}

// function to delete a column
func (h *BoardHandler) DeleteColumn(c *fiber.Ctx) error {
	boardID, columnID, okParams := parseColumnParams(c)
	if !okParams {
		return nil
	}
	return respond(c, h.svc.DeleteColumn(boardID, columnID))
}

// parseColumnParams writes the 400 response itself when an id is malformed.
func parseColumnParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
		return uuid.Nil, uuid.Nil, false
	}
	columnID, err := uuid.Parse(c.Params("columnId"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid column ID",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return boardID, columnID, true
}
