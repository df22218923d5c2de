package handlers

import (
	"log"
	"time"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc    *services.AuthService
	secret []byte
}

func NewAuthHandler(svc *services.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{svc: svc, secret: secret}
}

// function to register a new user
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var dto services.RegisterInput
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp := h.svc.Register(dto)
	if resp.Error != "" {
		return c.Status(resp.Status).JSON(fiber.Map{
			"error": resp.Error,
		})
	}

	return c.Status(resp.Status).JSON(fiber.Map{
		"message": resp.Message,
		"user":    resp.Data,
	})
}

// function to log a user in and issue the session cookie
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var dto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, resp := h.svc.Authenticate(dto.Email, dto.Password)
	if user == nil {
		return c.Status(resp.Status).JSON(fiber.Map{
			"error": resp.Error,
		})
	}

	token, err := auth.SignToken(user.ID, h.secret)
	if err != nil {
		log.Println(err, "Error signing session token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred during login",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(auth.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

// function to log out; idempotent, succeeds with or without a session
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// function to echo the current session's user
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": auth.CurrentUser(c),
	})
}
