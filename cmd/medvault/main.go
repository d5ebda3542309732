package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/medvault-dev/medvault/db"
	"github.com/medvault-dev/medvault/internal/config"
	"github.com/medvault-dev/medvault/internal/handlers"
	"github.com/medvault-dev/medvault/internal/router"
	"github.com/medvault-dev/medvault/internal/session"
	"github.com/medvault-dev/medvault/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.ConnectDatabase(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := store.NewUserStore(database)
	profiles := store.NewProfileStore(database)
	sessions := session.NewManager(database, cfg.SessionTTL)

	h := handlers.New(users, profiles, sessions)
	r := router.NewRouter(h, sessions, cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
