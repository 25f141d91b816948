package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/joho/godotenv"
)

// Environment utilities
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func GetEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Config holds the settings of the local app
type Config struct {
	DBPath         string
	Addr           string
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		LogDebug("No .env file loaded: %v", err)
	}

	return Config{
		DBPath:         GetEnvOrDefault("MEDSTUDY_DB_PATH", DefaultDBPath()),
		Addr:           GetEnvOrDefault("MEDSTUDY_ADDR", "127.0.0.1:8043"),
		SessionTTL:     time.Duration(GetEnvInt("MEDSTUDY_SESSION_TTL_MINUTES", 720)) * time.Minute,
		AllowedOrigins: GetEnvList("MEDSTUDY_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// DefaultDBPath is ~/.medstudy/medstudy.db, or ./medstudy.db without a home directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./medstudy.db"
	}
	return filepath.Join(home, ".medstudy", "medstudy.db")
}

// Validation utilities
func ValidateSettingsRequest(req *models.SessionSettingsRequest) error {
	if req.Size != nil && (*req.Size < models.MinSessionSize || *req.Size > models.MaxSessionSize) {
		return fmt.Errorf("size must be between %d and %d", models.MinSessionSize, models.MaxSessionSize)
	}

	if req.CategoryFilter != nil && strings.TrimSpace(*req.CategoryFilter) == "" {
		return fmt.Errorf("category_filter must not be empty (use %q for every category)", models.AllCategories)
	}

	return nil
}
