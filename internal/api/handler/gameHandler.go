package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/internal/api/dto"
	"gamehub/internal/api/middleware"
	"gamehub/internal/api/models"
	"gamehub/internal/api/service"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

func (h *GameHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/", h.List)
	public.GET("/:game_id", h.Get)
	public.GET("/platforms", h.Platforms)

	// Admin-only catalogue writes
	admin.POST("/", middleware.RequireAdmin(), h.Create)
	admin.PUT("/:game_id", middleware.RequireAdmin(), h.Update)
}

func (h *GameHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	games, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.GameBasicResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, dto.FromModelToBasicResponse(g))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *GameHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	details, err := h.svc.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toGameDetailResponse(details))
}

func (h *GameHandler) Platforms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	platforms, err := h.svc.GetPlatforms(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": platforms})
}

func (h *GameHandler) Create(c *gin.Context) {
	var in dto.CreateGameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platforms, ok := parsePlatformNames(in.Platforms)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	game := in.ToModel()
	if err := h.svc.Create(ctx, &game, platforms); err != nil {
		if errors.Is(err, service.ErrInvalidTag) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tag"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": game.ID})
}

func (h *GameHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game_id"})
		return
	}

	var in dto.CreateGameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platforms, ok := parsePlatformNames(in.Platforms)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	game := in.ToModel()
	if err := h.svc.Update(ctx, id, &game, platforms); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, service.ErrInvalidTag):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tag"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func parsePlatformNames(raw []string) ([]models.PlatformName, bool) {
	if raw == nil {
		return nil, true
	}
	names := make([]models.PlatformName, 0, len(raw))
	for _, s := range raw {
		name, ok := models.ParsePlatformName(s)
		if !ok {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

func toGameDetailResponse(d *service.GameDetails) dto.GameDetailResponse {
	platforms := make([]models.PlatformName, 0, len(d.Game.Platforms))
	for _, p := range d.Game.Platforms {
		platforms = append(platforms, p.Name)
	}
	reviews := make([]dto.ReviewResponse, 0, len(d.Reviews))
	for i := range d.Reviews {
		reviews = append(reviews, *dto.FromModelToReviewResponse(&d.Reviews[i]))
	}
	return dto.GameDetailResponse{
		ID:              d.Game.ID,
		Title:           d.Game.Title,
		Tag:             d.Game.Tag,
		ReleaseDate:     d.Game.ReleaseDate,
		Developer:       d.Game.Developer,
		Publisher:       d.Game.Publisher,
		Description:     d.Game.Description,
		ImageURL:        d.Game.ImageURL,
		ThumbURL:        d.Game.ThumbURL,
		Platforms:       platforms,
		AvgGameplay:     d.AvgGameplay,
		AvgGraphics:     d.AvgGraphics,
		AvgOptimization: d.AvgOptimization,
		AvgStory:        d.AvgStory,
		RatingsCount:    d.RatingsCount,
		Reviews:         reviews,
	}
}
