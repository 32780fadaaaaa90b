package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrEmptyReview    = errors.New("review content cannot be empty")
	ErrNotReviewOwner = errors.New("only the author or an admin may modify this review")
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, gameID int64, content string) (*models.Review, error)
	EditReview(ctx context.Context, userID, role string, reviewID int64, content string) (*models.Review, error)
	DeleteReview(ctx context.Context, userID, role string, reviewID int64) error
	GetReviewByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetGameReviews(ctx context.Context, gameID int64) ([]models.Review, error)
	GetUserReviews(ctx context.Context, userID string) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	gameRepo    *repository.GameRepo
	libraryServ LibraryService
}

func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo *repository.GameRepo, libraryServ LibraryService) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		gameRepo:    gameRepo,
		libraryServ: libraryServ,
	}
}

// CreateReview writes a review for a game the user has in their
// library. Same gate as ratings.
func (s *reviewService) CreateReview(ctx context.Context, userID string, gameID int64, content string) (*models.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyReview
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if err := s.libraryServ.CheckEligibility(ctx, userID, gameID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:      userID,
		GameID:      gameID,
		Description: content,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) EditReview(ctx context.Context, userID, role string, reviewID int64, content string) (*models.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyReview
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID && role != "admin" {
		return nil, ErrNotReviewOwner
	}

	review.Description = content
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, role string, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID && role != "admin" {
		return ErrNotReviewOwner
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}

func (s *reviewService) GetGameReviews(ctx context.Context, gameID int64) ([]models.Review, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return s.reviewRepo.GetByGame(ctx, gameID)
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.GetByUser(ctx, userID)
}
