package config

import (
	"fmt"
	"os"
)

// Config holds the environment-driven settings read once at startup.
type Config struct {
	DBURL     string
	Port      string
	JWTSecret []byte
}

var C Config

// Load reads configuration from the environment. The JWT secret has no
// fallback: refusing to boot beats signing sessions with a known key.
func Load() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	C = Config{
		DBURL:     os.Getenv("DB_URL"),
		Port:      port,
		JWTSecret: []byte(secret),
	}
	return nil
}
