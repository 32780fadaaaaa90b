package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
	"gamehub/internal/api/service"
)

func newLibraryService(db *gorm.DB) service.LibraryService {
	return service.NewLibraryService(repository.NewLibraryRepository(db), repository.NewGameRepo(db))
}

func TestCreateLibrary(t *testing.T) {
	db := setupTestDB(t)
	svc := newLibraryService(db)
	user := createTestUser(t, db, "alice")

	library, err := svc.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, library.UserID)

	t.Run("SecondCreateFails", func(t *testing.T) {
		_, err := svc.CreateLibrary(testCtx(), user.ID)
		assert.ErrorIs(t, err, service.ErrLibraryExists)
	})
}

func TestAddGame(t *testing.T) {
	db := setupTestDB(t)
	svc := newLibraryService(db)
	user := createTestUser(t, db, "bob")
	game := createTestGame(t, db, "Some Game", models.TagAction)

	t.Run("WithoutLibraryFails", func(t *testing.T) {
		err := svc.AddGame(testCtx(), user.ID, game.ID, models.StatusInProgress)
		assert.ErrorIs(t, err, service.ErrNoLibrary)
	})

	_, err := svc.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)

	t.Run("UnknownGameFails", func(t *testing.T) {
		err := svc.AddGame(testCtx(), user.ID, 99999, models.StatusInProgress)
		assert.ErrorIs(t, err, service.ErrGameNotFound)
	})

	require.NoError(t, svc.AddGame(testCtx(), user.ID, game.ID, models.StatusInProgress))

	t.Run("DuplicateAddFailsAndLeavesOneEntry", func(t *testing.T) {
		err := svc.AddGame(testCtx(), user.ID, game.ID, models.StatusCompleted)
		assert.ErrorIs(t, err, service.ErrAlreadyInLibrary)

		library, err := svc.GetUserLibrary(testCtx(), user.ID)
		require.NoError(t, err)
		require.Len(t, library.Entries, 1)
		assert.Equal(t, models.StatusInProgress, library.Entries[0].Status)
	})
}

func TestRemoveGame(t *testing.T) {
	db := setupTestDB(t)
	svc := newLibraryService(db)
	user := createTestUser(t, db, "carol")
	game := createTestGame(t, db, "Some Game", models.TagRPG)

	t.Run("WithoutLibraryFails", func(t *testing.T) {
		err := svc.RemoveGame(testCtx(), user.ID, game.ID)
		assert.ErrorIs(t, err, service.ErrNoLibrary)
	})

	_, err := svc.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)

	t.Run("GameNotInLibraryFails", func(t *testing.T) {
		err := svc.RemoveGame(testCtx(), user.ID, game.ID)
		assert.ErrorIs(t, err, service.ErrNotInLibrary)
	})

	require.NoError(t, svc.AddGame(testCtx(), user.ID, game.ID, models.StatusCompleted))
	require.NoError(t, svc.RemoveGame(testCtx(), user.ID, game.ID))

	library, err := svc.GetUserLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, library.Entries)
}

func TestCheckEligibility(t *testing.T) {
	db := setupTestDB(t)
	svc := newLibraryService(db)
	user := createTestUser(t, db, "dave")
	inLib := createTestGame(t, db, "Owned", models.TagAction)
	notInLib := createTestGame(t, db, "Wishlisted", models.TagAction)

	t.Run("NoLibrary", func(t *testing.T) {
		err := svc.CheckEligibility(testCtx(), user.ID, inLib.ID)
		assert.ErrorIs(t, err, service.ErrNoLibrary)
	})

	_, err := svc.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	require.NoError(t, svc.AddGame(testCtx(), user.ID, inLib.ID, models.StatusInProgress))

	t.Run("GameInLibraryPasses", func(t *testing.T) {
		assert.NoError(t, svc.CheckEligibility(testCtx(), user.ID, inLib.ID))
	})

	t.Run("GameNotInLibraryFails", func(t *testing.T) {
		err := svc.CheckEligibility(testCtx(), user.ID, notInLib.ID)
		assert.ErrorIs(t, err, service.ErrNotInLibrary)
	})
}
