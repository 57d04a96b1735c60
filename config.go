package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings for talking to wttr.in
type Config struct {
	Host      string
	Timeout   time.Duration
	UserAgent string
	Lang      string
}

// LoadConfig reads an optional .env file and then the WTTR_* environment
func LoadConfig(verbose bool) (Config, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := Config{
		Host:      getenvDefault("WTTR_HOST", "wttr.in"),
		UserAgent: getenvDefault("WTTR_USER_AGENT", "waybar-wttr"),
		Lang:      os.Getenv("WTTR_LANG"),
	}

	timeout, err := time.ParseDuration(getenvDefault("WTTR_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid WTTR_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid WTTR_TIMEOUT: must be positive")
	}
	cfg.Timeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
