package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/internal/api/dto"
	"gamehub/internal/api/models"
	"gamehub/internal/api/service"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.Get)
	rg.POST("/games", h.AddGame)
	rg.DELETE("/games/:game_id", h.RemoveGame)
}

// Create sets up the caller's library. One per user.
func (h *LibraryHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	library, err := h.svc.CreateLibrary(ctx, userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrLibraryExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "library already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": library.ID})
}

func (h *LibraryHandler) Get(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	library, err := h.svc.GetUserLibrary(ctx, userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrNoLibrary) {
			c.JSON(http.StatusNotFound, gin.H{"error": "create a library first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToLibraryResponse(library))
}

func (h *LibraryHandler) AddGame(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddLibraryGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := models.ParseEntryStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.AddGame(ctx, userID.(string), req.GameID, status); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, service.ErrNoLibrary):
			c.JSON(http.StatusNotFound, gin.H{"error": "create a library first"})
		case errors.Is(err, service.ErrAlreadyInLibrary):
			c.JSON(http.StatusConflict, gin.H{"error": "game already in library"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "game added to library"})
}

func (h *LibraryHandler) RemoveGame(c *gin.Context) {
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

	if err := h.svc.RemoveGame(ctx, userID.(string), gameID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoLibrary):
			c.JSON(http.StatusNotFound, gin.H{"error": "create a library first"})
		case errors.Is(err, service.ErrNotInLibrary):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not in library"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
