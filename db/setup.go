package db

import (
	"github.com/medvault-dev/medvault/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return database, nil
}

func MigrateDatabase(database *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.MedicalProfile{},
		&models.Session{},
	}

	migrator := database.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := database.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
