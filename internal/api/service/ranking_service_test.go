package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
	"gamehub/internal/api/service"
)

func TestGetRankingOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))

	u1 := createTestUser(t, db, "alice")
	u2 := createTestUser(t, db, "bob")

	low := createTestGame(t, db, "Low", models.TagAction)
	high := createTestGame(t, db, "High", models.TagRPG)
	mid := createTestGame(t, db, "Mid", models.TagAction)

	createTestRating(t, db, u1.ID, high.ID, 9, 9, 9, 9)
	createTestRating(t, db, u1.ID, mid.ID, 8, 8, 8, 8)
	createTestRating(t, db, u1.ID, low.ID, 7, 7, 7, 7)

	result, err := svc.GetRanking(testCtx(), nil, 0, "")
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, "High", result.Entries[0].Title)
	assert.Equal(t, "Mid", result.Entries[1].Title)
	assert.Equal(t, "Low", result.Entries[2].Title)
	assert.Equal(t, []service.Metric{service.MetricOverall}, result.MetricsUsed)
	assert.Equal(t, 3, result.TotalGames)

	t.Run("TieBreaksOnRatingsCount", func(t *testing.T) {
		// Give Mid a second identical rating: same score, more ratings.
		createTestRating(t, db, u2.ID, mid.ID, 8, 8, 8, 8)
		createTestRating(t, db, u2.ID, low.ID, 9, 9, 9, 9) // low now averages 8.0 from one+one

		result, err := svc.GetRanking(testCtx(), nil, 0, "")
		require.NoError(t, err)
		require.Len(t, result.Entries, 3)
		// Mid scores 8.0 with 2 ratings, Low scores 8.0 with 2 ratings as
		// well; both tie on count so input order (catalogue order) holds.
		assert.Equal(t, "High", result.Entries[0].Title)
	})
}

func TestGetRankingUnknownMetricsScoreEverythingZero(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))

	u1 := createTestUser(t, db, "frank")
	u2 := createTestUser(t, db, "grace")
	popular := createTestGame(t, db, "Popular", models.TagAction)
	niche := createTestGame(t, db, "Niche", models.TagAction)

	createTestRating(t, db, u1.ID, popular.ID, 9, 9, 9, 9)
	createTestRating(t, db, u2.ID, popular.ID, 10, 10, 10, 10)
	createTestRating(t, db, u1.ID, niche.ID, 10, 10, 10, 10)

	result, err := svc.GetRanking(testCtx(), []string{"bogus"}, 0, "")
	require.NoError(t, err)
	assert.Empty(t, result.MetricsUsed)
	require.Len(t, result.Entries, 2)
	for _, e := range result.Entries {
		assert.Equal(t, 0.0, e.Score)
	}
	// with every score 0 the tie-break on ratings count decides order
	assert.Equal(t, "Popular", result.Entries[0].Title)
	assert.Equal(t, 2, result.Entries[0].RatingsCount)
}

func TestGetRankingLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))

	u := createTestUser(t, db, "carol")
	g1 := createTestGame(t, db, "First", models.TagAction)
	g2 := createTestGame(t, db, "Second", models.TagAction)
	g3 := createTestGame(t, db, "Third", models.TagAction)

	createTestRating(t, db, u.ID, g1.ID, 9, 9, 9, 9)
	createTestRating(t, db, u.ID, g2.ID, 7, 7, 7, 7)
	createTestRating(t, db, u.ID, g3.ID, 8, 8, 8, 8)

	result, err := svc.GetRanking(testCtx(), nil, 1, "")
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "First", result.Entries[0].Title)
	assert.InDelta(t, 9.0, result.Entries[0].Score, 1e-9)
	assert.Equal(t, 3, result.TotalGames)
	assert.Equal(t, 1, result.EffectiveLimit)

	t.Run("LimitAboveTotalReturnsAll", func(t *testing.T) {
		result, err := svc.GetRanking(testCtx(), nil, 50, "")
		require.NoError(t, err)
		assert.Len(t, result.Entries, 3)
		assert.Equal(t, 3, result.EffectiveLimit)
	})
}

func TestGetRankingTagFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))

	u := createTestUser(t, db, "dave")
	rpg := createTestGame(t, db, "RPG Game", models.TagRPG)
	action := createTestGame(t, db, "Action Game", models.TagAction)
	createTestRating(t, db, u.ID, rpg.ID, 8, 8, 8, 8)
	createTestRating(t, db, u.ID, action.ID, 9, 9, 9, 9)

	t.Run("KnownTagFiltersCatalogue", func(t *testing.T) {
		result, err := svc.GetRanking(testCtx(), nil, 0, "rpg")
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "RPG Game", result.Entries[0].Title)
	})

	t.Run("AllAndEmptySkipFiltering", func(t *testing.T) {
		for _, tag := range []string{"", "all", "ALL"} {
			result, err := svc.GetRanking(testCtx(), nil, 0, tag)
			require.NoError(t, err)
			assert.Len(t, result.Entries, 2, "tag %q", tag)
		}
	})

	t.Run("UnknownTagYieldsEmptyLeaderboard", func(t *testing.T) {
		result, err := svc.GetRanking(testCtx(), nil, 0, "not-a-genre")
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, 0, result.TotalGames)
	})
}

func TestGetRankingUnratedGamesScoreZero(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))

	u := createTestUser(t, db, "erin")
	rated := createTestGame(t, db, "Rated", models.TagAction)
	createTestGame(t, db, "Unrated", models.TagAction)
	createTestRating(t, db, u.ID, rated.ID, 5, 5, 5, 5)

	result, err := svc.GetRanking(testCtx(), nil, 0, "")
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Rated", result.Entries[0].Title)
	assert.Equal(t, "Unrated", result.Entries[1].Title)
	assert.Equal(t, 0.0, result.Entries[1].Score)
	assert.Equal(t, 0, result.Entries[1].RatingsCount)
}
