package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/internal/api/service"
	"gamehub/internal/cache"
	"gamehub/internal/logger"
)

type RankingHandler struct {
	svc      service.RankingService
	cacheTTL time.Duration
}

func NewRankingHandler(svc service.RankingService, cacheTTL time.Duration) *RankingHandler {
	return &RankingHandler{svc: svc, cacheTTL: cacheTTL}
}

func (h *RankingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Get)
}

// Get serves the leaderboard. Accepts repeated ?metrics= values (or one
// comma-separated value), ?limit= and ?tag=.
func (h *RankingHandler) Get(c *gin.Context) {
	rawMetrics := c.QueryArray("metrics")
	if len(rawMetrics) == 1 && strings.Contains(rawMetrics[0], ",") {
		rawMetrics = strings.Split(rawMetrics[0], ",")
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	tag := c.Query("tag")

	key := rankingCacheKey(rawMetrics, limit, tag)
	if cache.IsRedisAvailable() {
		var cached service.RankingResult
		if err := cache.Get(key, &cached); err == nil {
			logger.Log.WithField("key", key).Debug("ranking cache hit")
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.svc.GetRanking(ctx, rawMetrics, limit, tag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cache.IsRedisAvailable() {
		if err := cache.Set(key, result, h.cacheTTL); err != nil {
			logger.Log.WithError(err).Debug("failed to cache ranking")
		}
	}

	c.JSON(http.StatusOK, result)
}

func rankingCacheKey(rawMetrics []string, limit int, tag string) string {
	metrics := service.ParseMetrics(rawMetrics)
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		parts = append(parts, string(m))
	}
	normTag := strings.ToLower(strings.TrimSpace(tag))
	if normTag == "" {
		normTag = "all"
	}
	return fmt.Sprintf("%s%s:%d:%s", cache.RankingCachePrefix, strings.Join(parts, "+"), limit, normTag)
}
