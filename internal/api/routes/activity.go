package routes

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/ws"

	"github.com/gofiber/fiber/v2"
)

func registerActivityFeed(app *fiber.App, resolver *auth.SessionResolver, hub *ws.Hub) {
	// session check runs before the upgrade
	app.Get("/ws/activities", resolver.RequireAuth(), ws.Handler(hub))
}
