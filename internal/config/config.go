package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	DatabaseURL    string
	Port           string
	AllowedOrigins []string
	SessionTTL     time.Duration
}

func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	return &Config{
		DatabaseURL:    dsn,
		Port:           port,
		AllowedOrigins: loadAllowedOrigins(),
		SessionTTL:     loadSessionTTL(),
	}, nil
}

func loadAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func loadSessionTTL() time.Duration {
	value := os.Getenv("SESSION_TTL_MINUTES")

	if value == "" {
		return 10 * time.Minute
	}

	minutes, err := strconv.Atoi(value)

	if err != nil || minutes <= 0 {
		log.Printf("Invalid SESSION_TTL_MINUTES %q, defaulting to 10", value)
		return 10 * time.Minute
	}

	return time.Duration(minutes) * time.Minute
}
