package handlers

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	svc *services.CardService
}

func NewCardHandler(svc *services.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// function to list a column's cards
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	boardID, columnID, okParams := parseColumnParams(c)
	if !okParams {
		return nil
	}
	return respond(c, h.svc.GetCards(boardID, columnID))
}

// function to add a card to a column
func (h *CardHandler) AddCard(c *fiber.Ctx) error {
	boardID, columnID, okParams := parseColumnParams(c)
	if !okParams {
		return nil
	}

	var dto services.CardInput
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request data",
		})
	}

	user := auth.CurrentUser(c)
	return respond(c, h.svc.AddCard(user.ID, boardID, columnID, dto))
}
