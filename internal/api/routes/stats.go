package routes

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/handlers"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func registerStats(r fiber.Router, resolver *auth.SessionResolver) {
	statsService := services.NewStatsService(config.DB)
	statsHandler := handlers.NewStatsHandler(statsService)

	r.Get("/stats", resolver.RequireAuth(), statsHandler.GetStats)
}
