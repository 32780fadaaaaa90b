package main

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"gamehub/internal/api/middleware/auth"
	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
	"gamehub/internal/config"
	"gamehub/internal/database"
	"gamehub/internal/logger"
)

// Seeds the database with an admin account, a demo user and a small
// catalogue so a fresh install has something to browse. Safe to run
// repeatedly; existing rows are left untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	logger.InitLogger(cfg)

	db, err := database.Connect(cfg, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.WithError(err).Fatal("could not run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.NewPlatformRepo(db).EnsureDefaults(ctx); err != nil {
		logger.Log.WithError(err).Fatal("could not seed platforms")
	}

	admin, err := ensureUser(db, "admin", "admin@example.com", "Admin123!", "admin")
	if err != nil {
		logger.Log.WithError(err).Fatal("could not seed admin user")
	}
	demo, err := ensureUser(db, "demo", "user@example.com", "User123!", "user")
	if err != nil {
		logger.Log.WithError(err).Fatal("could not seed demo user")
	}
	logger.Log.WithField("admin", admin.Username).WithField("user", demo.Username).Info("users ready")

	games, err := ensureGames(db)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not seed games")
	}

	if err := ensureDemoActivity(db, demo, games[0]); err != nil {
		logger.Log.WithError(err).Fatal("could not seed demo activity")
	}

	logger.Log.Info("seeding complete")
}

func ensureUser(db *gorm.DB, username, email, password, role string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ensureGames(db *gorm.DB) ([]models.Game, error) {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		var pc, ps, xbox models.Platform
		if err := db.Where("name = ?", models.PlatformPC).First(&pc).Error; err != nil {
			return nil, err
		}
		if err := db.Where("name = ?", models.PlatformPlayStation).First(&ps).Error; err != nil {
			return nil, err
		}
		if err := db.Where("name = ?", models.PlatformXbox).First(&xbox).Error; err != nil {
			return nil, err
		}

		seed := []models.Game{
			{
				Title:       "The Witcher 3: Wild Hunt",
				Tag:         models.TagRPG,
				ReleaseDate: time.Date(2015, 5, 18, 0, 0, 0, 0, time.UTC),
				Developer:   "CD Projekt Red",
				Publisher:   "CD Projekt",
				Description: "Open-world RPG following Geralt of Rivia on his hunt for the Wild Hunt.",
				Platforms:   []models.Platform{pc, ps, xbox},
			},
			{
				Title:       "Hades",
				Tag:         models.TagAction,
				ReleaseDate: time.Date(2020, 9, 17, 0, 0, 0, 0, time.UTC),
				Developer:   "Supergiant Games",
				Publisher:   "Supergiant Games",
				Description: "Rogue-like dungeon crawler where you defy the god of the dead.",
				Platforms:   []models.Platform{pc},
			},
			{
				Title:       "Cities: Skylines",
				Tag:         models.TagSimulation,
				ReleaseDate: time.Date(2015, 3, 10, 0, 0, 0, 0, time.UTC),
				Developer:   "Colossal Order",
				Publisher:   "Paradox Interactive",
				Description: "City-building simulation with deep traffic and zoning systems.",
				Platforms:   []models.Platform{pc, xbox},
			},
		}
		for i := range seed {
			if err := db.Create(&seed[i]).Error; err != nil {
				return nil, err
			}
		}
	}

	var games []models.Game
	if err := db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func ensureDemoActivity(db *gorm.DB, user *models.User, game models.Game) error {
	var ratings int64
	if err := db.Model(&models.Rating{}).Count(&ratings).Error; err != nil {
		return err
	}
	if ratings == 0 {
		rating := models.Rating{
			UserID:       user.ID,
			GameID:       game.ID,
			Gameplay:     9,
			Graphics:     10,
			Optimization: 8,
			Story:        9,
		}
		if err := db.Create(&rating).Error; err != nil {
			return err
		}
	}

	var reviews int64
	if err := db.Model(&models.Review{}).Count(&reviews).Error; err != nil {
		return err
	}
	if reviews == 0 {
		review := models.Review{
			UserID:      user.ID,
			GameID:      game.ID,
			Description: "A fantastic game with an incredible atmosphere!",
		}
		if err := db.Create(&review).Error; err != nil {
			return err
		}
	}

	var library models.Library
	err := db.Where("user_id = ?", user.ID).First(&library).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		library = models.Library{UserID: user.ID}
		if err := db.Create(&library).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var entries int64
	if err := db.Model(&models.LibraryEntry{}).Where("library_id = ?", library.ID).Count(&entries).Error; err != nil {
		return err
	}
	if entries == 0 {
		entry := models.LibraryEntry{
			LibraryID: library.ID,
			GameID:    game.ID,
			Status:    models.StatusCompleted,
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}
