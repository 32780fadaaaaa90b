package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

var (
	ErrGameNotFound = errors.New("game not found")

	// ErrNoLibrary and ErrNotInLibrary are deliberately distinct: the
	// first means "create a library first", the second "add the game to
	// your library". Handlers surface different messages for each.
	ErrNoLibrary        = errors.New("library not found for user")
	ErrNotInLibrary     = errors.New("game not in library")
	ErrAlreadyInLibrary = errors.New("game already in library")
	ErrLibraryExists    = errors.New("library already exists")
	ErrInvalidStatus    = errors.New("invalid library entry status")
)

type LibraryService interface {
	CreateLibrary(ctx context.Context, userID string) (*models.Library, error)
	AddGame(ctx context.Context, userID string, gameID int64, status models.EntryStatus) error
	RemoveGame(ctx context.Context, userID string, gameID int64) error
	GetUserLibrary(ctx context.Context, userID string) (*models.Library, error)
	CheckEligibility(ctx context.Context, userID string, gameID int64) error
}

type libraryService struct {
	repo     repository.LibraryRepository
	gameRepo *repository.GameRepo
}

func NewLibraryService(repo repository.LibraryRepository, gameRepo *repository.GameRepo) LibraryService {
	return &libraryService{
		repo:     repo,
		gameRepo: gameRepo,
	}
}

func (s *libraryService) CreateLibrary(ctx context.Context, userID string) (*models.Library, error) {
	if _, err := s.repo.GetByUser(ctx, userID); err == nil {
		return nil, ErrLibraryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.repo.CreateLibrary(ctx, userID)
}

func (s *libraryService) AddGame(ctx context.Context, userID string, gameID int64, status models.EntryStatus) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	library, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLibrary
		}
		return err
	}

	exists, err := s.repo.EntryExists(ctx, library.ID, gameID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInLibrary
	}

	return s.repo.AddEntry(ctx, &models.LibraryEntry{
		LibraryID: library.ID,
		GameID:    gameID,
		Status:    status,
	})
}

func (s *libraryService) RemoveGame(ctx context.Context, userID string, gameID int64) error {
	library, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLibrary
		}
		return err
	}

	if err := s.repo.RemoveEntry(ctx, library.ID, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInLibrary
		}
		return err
	}
	return nil
}

func (s *libraryService) GetUserLibrary(ctx context.Context, userID string) (*models.Library, error) {
	library, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLibrary
		}
		return nil, err
	}
	return library, nil
}

// CheckEligibility is the membership gate consulted before any rating
// or review write: nil when the user's library contains the game,
// ErrNoLibrary when no library exists (fails closed), ErrNotInLibrary
// otherwise. Read-only; callers write afterwards without a wrapping
// transaction, so a concurrent removal can still slip between the check
// and the write.
func (s *libraryService) CheckEligibility(ctx context.Context, userID string, gameID int64) error {
	library, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLibrary
		}
		return err
	}

	exists, err := s.repo.EntryExists(ctx, library.ID, gameID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInLibrary
	}
	return nil
}
