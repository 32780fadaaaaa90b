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

func newRatingFixture(t *testing.T) (*gorm.DB, service.RatingService, service.LibraryService) {
	t.Helper()
	db := setupTestDB(t)
	libraryServ := newLibraryService(db)
	ratingServ := service.NewRatingService(
		repository.NewRatingRepository(db), repository.NewGameRepo(db), libraryServ)
	return db, ratingServ, libraryServ
}

func validComponents() service.RatingComponents {
	return service.RatingComponents{Gameplay: 8, Graphics: 9, Optimization: 7, Story: 10}
}

func TestRatingComponentsValidate(t *testing.T) {
	assert.NoError(t, validComponents().Validate())

	for name, rc := range map[string]service.RatingComponents{
		"GameplayTooLow":   {Gameplay: 0, Graphics: 5, Optimization: 5, Story: 5},
		"GraphicsTooHigh":  {Gameplay: 5, Graphics: 11, Optimization: 5, Story: 5},
		"StoryNegative":    {Gameplay: 5, Graphics: 5, Optimization: 5, Story: -1},
		"AllZero":          {},
		"OptimizationHigh": {Gameplay: 5, Graphics: 5, Optimization: 100, Story: 5},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, rc.Validate())
		})
	}
}

func TestSubmitRatingGate(t *testing.T) {
	db, ratingServ, libraryServ := newRatingFixture(t)
	user := createTestUser(t, db, "alice")
	game := createTestGame(t, db, "Gated Game", models.TagAction)

	t.Run("UnknownGame", func(t *testing.T) {
		_, err := ratingServ.SubmitRating(testCtx(), user.ID, 99999, validComponents())
		assert.ErrorIs(t, err, service.ErrGameNotFound)
	})

	t.Run("NoLibrary", func(t *testing.T) {
		_, err := ratingServ.SubmitRating(testCtx(), user.ID, game.ID, validComponents())
		assert.ErrorIs(t, err, service.ErrNoLibrary)
	})

	_, err := libraryServ.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)

	t.Run("GameNotInLibrary", func(t *testing.T) {
		_, err := ratingServ.SubmitRating(testCtx(), user.ID, game.ID, validComponents())
		assert.ErrorIs(t, err, service.ErrNotInLibrary)
	})

	require.NoError(t, libraryServ.AddGame(testCtx(), user.ID, game.ID, models.StatusInProgress))

	t.Run("InLibrarySucceeds", func(t *testing.T) {
		rating, err := ratingServ.SubmitRating(testCtx(), user.ID, game.ID, validComponents())
		require.NoError(t, err)
		assert.Equal(t, 8, rating.Gameplay)
		assert.Equal(t, user.ID, rating.UserID)
	})
}

func TestSubmitRatingEditsInPlace(t *testing.T) {
	db, ratingServ, libraryServ := newRatingFixture(t)
	user := createTestUser(t, db, "bob")
	game := createTestGame(t, db, "Twice Rated", models.TagRPG)

	_, err := libraryServ.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	require.NoError(t, libraryServ.AddGame(testCtx(), user.ID, game.ID, models.StatusCompleted))

	first, err := ratingServ.SubmitRating(testCtx(), user.ID, game.ID, validComponents())
	require.NoError(t, err)

	second, err := ratingServ.SubmitRating(testCtx(), user.ID, game.ID,
		service.RatingComponents{Gameplay: 1, Graphics: 2, Optimization: 3, Story: 4})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := ratingServ.GetGameRatings(testCtx(), game.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].Gameplay)
	assert.Equal(t, 4, all[0].Story)
}

func TestSubmitRatingValidation(t *testing.T) {
	db, ratingServ, libraryServ := newRatingFixture(t)
	user := createTestUser(t, db, "carol")
	game := createTestGame(t, db, "Strict Game", models.TagAction)

	_, err := libraryServ.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	require.NoError(t, libraryServ.AddGame(testCtx(), user.ID, game.ID, models.StatusInProgress))

	_, err = ratingServ.SubmitRating(testCtx(), user.ID, game.ID,
		service.RatingComponents{Gameplay: 11, Graphics: 5, Optimization: 5, Story: 5})
	assert.Error(t, err)

	ratings, err := ratingServ.GetGameRatings(testCtx(), game.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestDeleteRating(t *testing.T) {
	db, ratingServ, libraryServ := newRatingFixture(t)
	user := createTestUser(t, db, "dave")
	game := createTestGame(t, db, "Deletable", models.TagAction)

	t.Run("MissingRating", func(t *testing.T) {
		err := ratingServ.DeleteRating(testCtx(), user.ID, game.ID)
		assert.ErrorIs(t, err, service.ErrRatingNotFound)
	})

	_, err := libraryServ.CreateLibrary(testCtx(), user.ID)
	require.NoError(t, err)
	require.NoError(t, libraryServ.AddGame(testCtx(), user.ID, game.ID, models.StatusInProgress))
	_, err = ratingServ.SubmitRating(testCtx(), user.ID, game.ID, validComponents())
	require.NoError(t, err)

	require.NoError(t, ratingServ.DeleteRating(testCtx(), user.ID, game.ID))
	_, err = ratingServ.GetUserRating(testCtx(), user.ID, game.ID)
	assert.ErrorIs(t, err, service.ErrRatingNotFound)
}
