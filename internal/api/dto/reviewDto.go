package dto

import (
	"time"

	"gamehub/internal/api/models"
)

// CreateReviewDTO for writing or editing a review
type CreateReviewDTO struct {
	Description string `json:"description" binding:"required"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	GameID      int64     `json:"game_id"`
	GameTitle   string    `json:"game_title,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          review.ID,
		UserID:      review.UserID,
		Username:    review.User.Username,
		GameID:      review.GameID,
		GameTitle:   review.Game.Title,
		Description: review.Description,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}
}
