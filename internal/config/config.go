package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Addr         string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	LogLevel     string
	LogDev       bool
}

func Load() *Config {
	return &Config{
		Addr:         getenv("ADDR", ":8080"),
		DatabasePath: getenv("DATABASE_PATH", "calc.db"),
		JWTSecret:    getenv("JWT_SECRET", "dev-insecure-secret"),
		TokenTTL:     time.Duration(getenvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogDev:       getenv("LOG_DEV", "") == "1",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
