package routes

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/handlers"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func registerBoards(r fiber.Router, resolver *auth.SessionResolver, activities *services.ActivityService) {
	// Initialize handlers
	boardService := services.NewBoardService(config.DB, activities)
	cardService := services.NewCardService(config.DB, boardService, activities)
	boardHandler := handlers.NewBoardHandler(boardService)
	cardHandler := handlers.NewCardHandler(cardService)

	// Register routes
	group := r.Group("/boards", resolver.RequireAuth())
	group.Get("/", boardHandler.GetBoards)
	group.Post("/", boardHandler.CreateBoard)
	group.Get("/:id", boardHandler.GetBoard)
	group.Delete("/:id", boardHandler.DeleteBoard)
	group.Get("/:boardId/columns", boardHandler.GetColumns)
	group.Post("/:boardId/columns", boardHandler.AddColumn)
	group.Patch("/:boardId/columns/:columnId", boardHandler.UpdateColumn)
	group.Delete("/:boardId/columns/:columnId", boardHandler.DeleteColumn)
	group.Get("/:boardId/columns/:columnId/cards", cardHandler.GetCards)
	group.Post("/:boardId/columns/:columnId/cards", cardHandler.AddCard)
}
