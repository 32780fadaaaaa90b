package dto

import (
	"time"

	"gamehub/internal/api/models"
)

// CreateGameDTO for admin game creation and editing
type CreateGameDTO struct {
	Title       string    `json:"title" binding:"required"`
	Tag         string    `json:"tag" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Developer   string    `json:"developer" binding:"required"`
	Publisher   string    `json:"publisher" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ThumbURL    *string   `json:"thumb_url,omitempty"`
	Platforms   []string  `json:"platforms,omitempty"`
}

func (d CreateGameDTO) ToModel() models.Game {
	return models.Game{
		Title:       d.Title,
		Tag:         models.Tag(d.Tag),
		ReleaseDate: d.ReleaseDate,
		Developer:   d.Developer,
		Publisher:   d.Publisher,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		ThumbURL:    d.ThumbURL,
	}
}

// GameBasicResponse for list views, without nested collections
type GameBasicResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Tag         models.Tag `json:"tag"`
	ReleaseDate time.Time  `json:"release_date"`
	Developer   string     `json:"developer"`
	Publisher   string     `json:"publisher"`
	ThumbURL    *string    `json:"thumb_url,omitempty"`
}

func FromModelToBasicResponse(g models.Game) GameBasicResponse {
	return GameBasicResponse{
		ID:          g.ID,
		Title:       g.Title,
		Tag:         g.Tag,
		ReleaseDate: g.ReleaseDate,
		Developer:   g.Developer,
		Publisher:   g.Publisher,
		ThumbURL:    g.ThumbURL,
	}
}

// GameDetailResponse for the game page, including per-component average
// ratings and reviews
type GameDetailResponse struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	Tag             models.Tag            `json:"tag"`
	ReleaseDate     time.Time             `json:"release_date"`
	Developer       string                `json:"developer"`
	Publisher       string                `json:"publisher"`
	Description     string                `json:"description"`
	ImageURL        *string               `json:"image_url,omitempty"`
	ThumbURL        *string               `json:"thumb_url,omitempty"`
	Platforms       []models.PlatformName `json:"platforms"`
	AvgGameplay     int                   `json:"avg_gameplay"`
	AvgGraphics     int                   `json:"avg_graphics"`
	AvgOptimization int                   `json:"avg_optimization"`
	AvgStory        int                   `json:"avg_story"`
	RatingsCount    int                   `json:"ratings_count"`
	Reviews         []ReviewResponse      `json:"reviews"`
}
