package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gamehub/internal/api/handler"
	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
	"gamehub/internal/api/service"
	"gamehub/internal/database"
)

func setupRankingRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := service.NewRankingService(repository.NewGameRepo(db), repository.NewRatingRepository(db))
	h := handler.NewRankingHandler(svc, time.Minute)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1/rankings"))
	return r, db
}

func seedRankedGame(t *testing.T, db *gorm.DB, title string, tag models.Tag, score int) {
	t.Helper()
	user := &models.User{Username: title + "-rater", Email: title + "@example.com", Password: "x", Role: "user"}
	require.NoError(t, db.Create(user).Error)
	game := &models.Game{
		Title:       title,
		Tag:         tag,
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Developer:   "Dev",
		Publisher:   "Pub",
		Description: "seeded",
	}
	require.NoError(t, db.Create(game).Error)
	rating := &models.Rating{
		UserID: user.ID, GameID: game.ID,
		Gameplay: score, Graphics: score, Optimization: score, Story: score,
	}
	require.NoError(t, db.Create(rating).Error)
}

func getRankings(t *testing.T, r *gin.Engine, url string) *service.RankingResult {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result service.RankingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return &result
}

func TestRankingEndpoint(t *testing.T) {
	r, db := setupRankingRouter(t)
	seedRankedGame(t, db, "Alpha", models.TagAction, 7)
	seedRankedGame(t, db, "Beta", models.TagRPG, 9)
	seedRankedGame(t, db, "Gamma", models.TagAction, 8)

	t.Run("DefaultQuery", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/")
		require.Len(t, result.Entries, 3)
		assert.Equal(t, "Beta", result.Entries[0].Title)
		assert.Equal(t, []service.Metric{service.MetricOverall}, result.MetricsUsed)
	})

	t.Run("LimitApplied", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/?limit=2")
		assert.Len(t, result.Entries, 2)
		assert.Equal(t, 3, result.TotalGames)
	})

	t.Run("TagFilter", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/?tag=action")
		require.Len(t, result.Entries, 2)
		assert.Equal(t, "Gamma", result.Entries[0].Title)
	})

	t.Run("UnknownTagEmpty", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/?tag=visualnovel")
		assert.Empty(t, result.Entries)
	})

	t.Run("CommaSeparatedMetrics", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/?metrics=gameplay,story")
		assert.Equal(t,
			[]service.Metric{service.MetricGameplay, service.MetricStory},
			result.MetricsUsed)
	})

	t.Run("RepeatedMetricsParams", func(t *testing.T) {
		result := getRankings(t, r, "/api/v1/rankings/?metrics=graphics&metrics=story")
		assert.Equal(t,
			[]service.Metric{service.MetricGraphics, service.MetricStory},
			result.MetricsUsed)
	})
}
