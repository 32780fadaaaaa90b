package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestGame(t *testing.T, db *gorm.DB, title string, tag models.Tag) *models.Game {
	t.Helper()
	game := &models.Game{
		Title:       title,
		Tag:         tag,
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Developer:   "Test Studio",
		Publisher:   "Test Publisher",
		Description: "A game used in tests.",
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func createTestRating(t *testing.T, db *gorm.DB, userID string, gameID int64, gameplay, graphics, optimization, story int) {
	t.Helper()
	rating := &models.Rating{
		UserID:       userID,
		GameID:       gameID,
		Gameplay:     gameplay,
		Graphics:     graphics,
		Optimization: optimization,
		Story:        story,
	}
	require.NoError(t, db.Create(rating).Error)
}

func testCtx() context.Context {
	return context.Background()
}
