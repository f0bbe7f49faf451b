package config

import (
	"fmt"
	"os"
)

// DevJWTSecret is the local-development fallback signing key. Deployments
// must set JWT_SECRET; startup logs a loud warning when this value is in use.
const DevJWTSecret = "careerion-dev-secret-do-not-use-in-prod"

// Config holds application configuration
type Config struct {
	Port         string
	DBConn       string
	LogLevel     string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string

	// true when JWTSecret came from the hardcoded dev fallback
	UsingDevSecret bool
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=password dbname=careerion sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
		cfg.UsingDevSecret = true
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
