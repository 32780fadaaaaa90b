package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/config"
)

// Connect opens the postgres database. Callers run Migrate themselves,
// which keeps it reusable against other drivers in tests.
func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Info("Connected to the database successfully")
	return db, nil
}

// Migrate applies the schema for every model. Also used by tests against
// an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Platform{},
		&models.Rating{},
		&models.Review{},
		&models.Library{},
		&models.LibraryEntry{},
	)
}
