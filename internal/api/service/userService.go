package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserDetails is the profile view: the user plus their library, reviews
// and ratings. Library is nil when the user never created one.
type UserDetails struct {
	User    models.User
	Library *models.Library
	Reviews []models.Review
	Ratings []models.Rating
}

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserDetails(ctx context.Context, userID string) (*UserDetails, error)
}

type userService struct {
	userRepo    repository.UserRepository
	reviewServ  ReviewService
	ratingServ  RatingService
	libraryServ LibraryService
}

func NewUserService(
	userRepo repository.UserRepository,
	reviewServ ReviewService,
	ratingServ RatingService,
	libraryServ LibraryService,
) UserService {
	return &userService{
		userRepo:    userRepo,
		reviewServ:  reviewServ,
		ratingServ:  ratingServ,
		libraryServ: libraryServ,
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetUserDetails(ctx context.Context, userID string) (*UserDetails, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	details := &UserDetails{User: *user}

	library, err := s.libraryServ.GetUserLibrary(ctx, userID)
	if err != nil && !errors.Is(err, ErrNoLibrary) {
		return nil, err
	}
	details.Library = library

	if details.Reviews, err = s.reviewServ.GetUserReviews(ctx, userID); err != nil {
		return nil, err
	}
	if details.Ratings, err = s.ratingServ.GetUserRatings(ctx, userID); err != nil {
		return nil, err
	}
	return details, nil
}
