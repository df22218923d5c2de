package handlers

import (
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// function to get the caller's dashboard stats
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	return respond(c, h.svc.GetDashboardStats(user.ID))
}
