package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

var ErrRatingNotFound = errors.New("rating not found")

// RatingComponents is the four-part score a user submits for a game.
type RatingComponents struct {
	Gameplay     int
	Graphics     int
	Optimization int
	Story        int
}

// Validate rejects any component outside [1,10] before persistence.
func (rc RatingComponents) Validate() error {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"gameplay", rc.Gameplay},
		{"graphics", rc.Graphics},
		{"optimization", rc.Optimization},
		{"story", rc.Story},
	} {
		if c.value < 1 || c.value > 10 {
			return fmt.Errorf("%s must be between 1 and 10, got %d", c.name, c.value)
		}
	}
	return nil
}

type RatingService interface {
	SubmitRating(ctx context.Context, userID string, gameID int64, components RatingComponents) (*models.Rating, error)
	DeleteRating(ctx context.Context, userID string, gameID int64) error
	GetUserRating(ctx context.Context, userID string, gameID int64) (*models.Rating, error)
	GetUserRatings(ctx context.Context, userID string) ([]models.Rating, error)
	GetGameRatings(ctx context.Context, gameID int64) ([]models.Rating, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	gameRepo    *repository.GameRepo
	libraryServ LibraryService
}

func NewRatingService(ratingRepo repository.RatingRepository, gameRepo *repository.GameRepo, libraryServ LibraryService) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		gameRepo:    gameRepo,
		libraryServ: libraryServ,
	}
}

// SubmitRating creates the user's rating for a game, or edits it in
// place on re-submission. The caller must have the game in their
// library. The existence check and the insert are not one transaction;
// the (user_id, game_id) unique index turns the remaining race into a
// storage error instead of a duplicate row.
func (s *ratingService) SubmitRating(ctx context.Context, userID string, gameID int64, components RatingComponents) (*models.Rating, error) {
	if err := components.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	// Membership gate: distinct failures for "no library" and "game not
	// in library" so the caller can suggest the right fix.
	if err := s.libraryServ.CheckEligibility(ctx, userID, gameID); err != nil {
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndGame(ctx, userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Gameplay = components.Gameplay
		existing.Graphics = components.Graphics
		existing.Optimization = components.Optimization
		existing.Story = components.Story
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	rating := &models.Rating{
		UserID:       userID,
		GameID:       gameID,
		Gameplay:     components.Gameplay,
		Graphics:     components.Graphics,
		Optimization: components.Optimization,
		Story:        components.Story,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID string, gameID int64) error {
	if _, err := s.ratingRepo.GetByUserAndGame(ctx, userID, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return s.ratingRepo.Delete(ctx, userID, gameID)
}

func (s *ratingService) GetUserRating(ctx context.Context, userID string, gameID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndGame(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) GetUserRatings(ctx context.Context, userID string) ([]models.Rating, error) {
	return s.ratingRepo.GetByUser(ctx, userID)
}

func (s *ratingService) GetGameRatings(ctx context.Context, gameID int64) ([]models.Rating, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return s.ratingRepo.GetByGame(ctx, gameID)
}
