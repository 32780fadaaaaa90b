package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/internal/api/dto"
	"gamehub/internal/api/service"
	"gamehub/internal/cache"
	"gamehub/internal/logger"
)

type RatingHandler struct {
	svc service.RatingService
}

func NewRatingHandler(svc service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// RegisterRoutes mounts rating routes under /games/:game_id/ratings.
// Reads are public; writes require authentication, which the caller
// wires via the group middleware.
func (h *RatingHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/:game_id/ratings", h.ListForGame)

	authed.POST("/:game_id/ratings", h.Submit)
	authed.GET("/:game_id/ratings/me", h.GetMine)
	authed.DELETE("/:game_id/ratings", h.Delete)
}

// Submit creates the caller's rating for a game or edits it in place.
func (h *RatingHandler) Submit(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	var req dto.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, err := h.svc.SubmitRating(ctx, userID.(string), gameID, service.RatingComponents{
		Gameplay:     req.Gameplay,
		Graphics:     req.Graphics,
		Optimization: req.Optimization,
		Story:        req.Story,
	})
	if err != nil {
		respondRatingError(c, err)
		return
	}

	invalidateRankingsAsync()

	c.JSON(http.StatusOK, dto.RatingResponse{
		ID:           rating.ID,
		GameID:       rating.GameID,
		Gameplay:     rating.Gameplay,
		Graphics:     rating.Graphics,
		Optimization: rating.Optimization,
		Story:        rating.Story,
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
	})
}

func (h *RatingHandler) GetMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, err := h.svc.GetUserRating(ctx, userID.(string), gameID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RatingResponse{
		ID:           rating.ID,
		GameID:       rating.GameID,
		Gameplay:     rating.Gameplay,
		Graphics:     rating.Graphics,
		Optimization: rating.Optimization,
		Story:        rating.Story,
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
	})
}

func (h *RatingHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.DeleteRating(ctx, userID.(string), gameID); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateRankingsAsync()

	c.Status(http.StatusNoContent)
}

func (h *RatingHandler) ListForGame(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ratings, err := h.svc.GetGameRatings(ctx, gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

// respondRatingError maps the service error taxonomy onto statuses. The
// two gate failures stay distinct so the client can suggest the right
// remediation.
func respondRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
	case errors.Is(err, service.ErrNoLibrary):
		c.JSON(http.StatusForbidden, gin.H{"error": "create a library first"})
	case errors.Is(err, service.ErrNotInLibrary):
		c.JSON(http.StatusForbidden, gin.H{"error": "add the game to your library before rating it"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// invalidateRankingsAsync drops cached leaderboards off the request path.
func invalidateRankingsAsync() {
	go func() {
		if cache.IsRedisAvailable() {
			if err := cache.InvalidateRankings(); err != nil {
				logger.Log.WithError(err).Warn("failed to invalidate ranking cache")
			}
		}
	}()
}
