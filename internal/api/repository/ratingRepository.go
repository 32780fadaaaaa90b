package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID string, gameID int64) error
	GetByUserAndGame(ctx context.Context, userID string, gameID int64) (*models.Rating, error)
	GetByGame(ctx context.Context, gameID int64) ([]models.Rating, error)
	GetByUser(ctx context.Context, userID string) ([]models.Rating, error)
	GetAll(ctx context.Context) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

// Delete a rating by user and game
func (r *ratingRepository) Delete(ctx context.Context, userID string, gameID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found")
	}
	return nil
}

// GetByUserAndGame retrieves a user's rating for a specific game
func (r *ratingRepository) GetByUserAndGame(ctx context.Context, userID string, gameID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByGame retrieves all ratings for a specific game
func (r *ratingRepository) GetByGame(ctx context.Context, gameID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByUser retrieves all ratings a user has submitted
func (r *ratingRepository) GetByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetAll loads every rating in one query. The ranking service partitions
// them by game in memory instead of issuing one query per game.
func (r *ratingRepository) GetAll(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
