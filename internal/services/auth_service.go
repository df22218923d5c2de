package services

import (
	"errors"
	"log"
	"regexp"
	"time"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// same wording for unknown email and wrong password, so callers cannot
// probe which accounts exist
const invalidCredentials = "Invalid email or password"

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

// Register validates the input in order (first failing check wins) and
// creates the user. The existence pre-check is advisory only; the unique
// index on email is the authoritative conflict signal.
func (s *AuthService) Register(in RegisterInput) *Response {
	if in.Email == "" || in.Password == "" {
		return badRequest("Email and password are required")
	}
	if !emailPattern.MatchString(in.Email) {
		return badRequest("Invalid email format")
	}
	if len(in.Password) < 8 {
		return badRequest("Password must be at least 8 characters long")
	}

	var existing models.User
	err := s.db.First(&existing, "email = ?", in.Email).Error
	if err == nil {
		return badRequest("Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println(err, "Error checking existing user")
		return internal("An error occurred during registration")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Println(err, "Error hashing password")
		return internal("An error occurred during registration")
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     in.Email,
		Name:      in.Name,
		Password:  hash,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race with a concurrent registration
			return badRequest("Email already registered")
		}
		log.Println(err, "Error creating user")
		return internal("An error occurred during registration")
	}

	return created(user, "User registered successfully")
}

// Authenticate verifies email + password. On any mismatch it returns the
// generic failure envelope and a nil user.
func (s *AuthService) Authenticate(email, password string) (*models.User, *Response) {
	if email == "" || password == "" {
		return nil, badRequest("Email and password are required")
	}

	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println(err, "Error looking up user")
			return nil, internal("An error occurred during login")
		}
		return nil, unauthorized(invalidCredentials)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, unauthorized(invalidCredentials)
	}
	return &user, ok(&user)
}
