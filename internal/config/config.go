package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is built once at startup
// and handed to the components that need it; nothing reads the environment
// after Load returns.
type Config struct {
	ServerPort    int
	DatabasePath  string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowedOrigin string
}

// Load reads configuration from the environment (optionally seeded from a
// .env file) and applies defaults. The signing secret has no default.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./workasana.db"),
		JWTSecret:     secret,
		TokenTTL:      ttl,
		AllowedOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
