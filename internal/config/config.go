// Package config loads environment-driven configuration for the baccarat server.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads a .env file if present. Missing files are not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
