package routes

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/handlers"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func registerAuth(r fiber.Router, resolver *auth.SessionResolver) {
	// Initialize handler
	authService := services.NewAuthService(config.DB)
	authHandler := handlers.NewAuthHandler(authService, config.C.JWTSecret)

	// Register routes
	group := r.Group("/auth")
	group.Post("/register", authHandler.Register)
	group.Post("/login", authHandler.Login)
	group.Post("/logout", authHandler.Logout)
	group.Get("/me", resolver.RequireAuth(), authHandler.Me)
}
