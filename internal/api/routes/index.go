package routes

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/services"
	"taskboard-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	resolver := auth.NewSessionResolver(config.DB, config.C.JWTSecret)

	hub := ws.NewHub()
	go hub.Run()

	activities := services.NewActivityService(config.DB, hub)

	api := app.Group("/api")

	registerAuth(api, resolver)
	registerBoards(api, resolver, activities)
	registerStats(api, resolver)
	registerActivityFeed(app, resolver, hub)
}
