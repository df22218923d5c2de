package auth

import (
	"errors"
	"log"

	"taskboard-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const localsUserKey = "currentUser"

// SessionResolver turns a request's session cookie into a user record.
type SessionResolver struct {
	db     *gorm.DB
	secret []byte
}

func NewSessionResolver(db *gorm.DB, secret []byte) *SessionResolver {
	return &SessionResolver{db: db, secret: secret}
}

// Resolve returns the authenticated user or nil. Any failure along the way
// (no cookie, bad token, unknown user) is swallowed: an unauthenticated
// request is a normal outcome, not an error.
func (s *SessionResolver) Resolve(c *fiber.Ctx) *models.User {
	tokenStr := c.Cookies(TokenCookieName)
	if tokenStr == "" {
		return nil
	}

	userID, err := ParseToken(tokenStr, s.secret)
	if err != nil {
		log.Println(err, "Error verifying session token")
		return nil
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println(err, "Error loading session user")
		}
		return nil
	}
	return &user
}

// RequireAuth gates a route on a resolved session.
func (s *SessionResolver) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := s.Resolve(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}
