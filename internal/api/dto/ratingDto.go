package dto

import (
	"time"

	"gamehub/internal/api/models"
)

// SubmitRatingDTO for creating or editing a rating
type SubmitRatingDTO struct {
	Gameplay     int `json:"gameplay" binding:"required,min=1,max=10"`
	Graphics     int `json:"graphics" binding:"required,min=1,max=10"`
	Optimization int `json:"optimization" binding:"required,min=1,max=10"`
	Story        int `json:"story" binding:"required,min=1,max=10"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID           int64     `json:"id"`
	GameID       int64     `json:"game_id"`
	Username     string    `json:"username,omitempty"`
	Gameplay     int       `json:"gameplay"`
	Graphics     int       `json:"graphics"`
	Optimization int       `json:"optimization"`
	Story        int       `json:"story"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:           rating.ID,
		GameID:       rating.GameID,
		Username:     rating.User.Username,
		Gameplay:     rating.Gameplay,
		Graphics:     rating.Graphics,
		Optimization: rating.Optimization,
		Story:        rating.Story,
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
	}
}
