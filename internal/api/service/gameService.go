package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

var ErrInvalidTag = errors.New("unknown game tag")

// GameDetails is the detail view: the game plus its reviews and the
// truncated per-component rating averages shown on the game page.
type GameDetails struct {
	Game            models.Game
	Reviews         []models.Review
	AvgGameplay     int
	AvgGraphics     int
	AvgOptimization int
	AvgStory        int
	RatingsCount    int
}

type GameService interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetDetails(ctx context.Context, id int64) (*GameDetails, error)
	Create(ctx context.Context, game *models.Game, platformNames []models.PlatformName) error
	Update(ctx context.Context, id int64, game *models.Game, platformNames []models.PlatformName) error
	GetPlatforms(ctx context.Context) ([]models.Platform, error)
}

type gameService struct {
	gameRepo     *repository.GameRepo
	platformRepo *repository.PlatformRepo
	ratingRepo   repository.RatingRepository
	reviewRepo   repository.ReviewRepository
}

func NewGameService(
	gameRepo *repository.GameRepo,
	platformRepo *repository.PlatformRepo,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		platformRepo: platformRepo,
		ratingRepo:   ratingRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *gameService) GetAll(ctx context.Context) ([]models.Game, error) {
	return s.gameRepo.GetAll(ctx)
}

func (s *gameService) GetDetails(ctx context.Context, id int64) (*GameDetails, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &GameDetails{
		Game:         *game,
		Reviews:      reviews,
		RatingsCount: len(ratings),
	}
	if len(ratings) > 0 {
		var gp, gr, op, st int
		for _, r := range ratings {
			gp += r.Gameplay
			gr += r.Graphics
			op += r.Optimization
			st += r.Story
		}
		// integer averages, truncated, as shown on the game page
		details.AvgGameplay = gp / len(ratings)
		details.AvgGraphics = gr / len(ratings)
		details.AvgOptimization = op / len(ratings)
		details.AvgStory = st / len(ratings)
	}
	return details, nil
}

func (s *gameService) Create(ctx context.Context, game *models.Game, platformNames []models.PlatformName) error {
	// store the normalized tag, not the raw client casing
	tag, ok := models.ParseTag(string(game.Tag))
	if !ok {
		return ErrInvalidTag
	}
	game.Tag = tag
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return err
	}
	return s.assignPlatforms(ctx, game.ID, platformNames)
}

func (s *gameService) Update(ctx context.Context, id int64, game *models.Game, platformNames []models.PlatformName) error {
	tag, ok := models.ParseTag(string(game.Tag))
	if !ok {
		return ErrInvalidTag
	}
	game.Tag = tag
	if _, err := s.gameRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	if err := s.gameRepo.Update(ctx, id, game); err != nil {
		return err
	}
	return s.assignPlatforms(ctx, id, platformNames)
}

func (s *gameService) GetPlatforms(ctx context.Context) ([]models.Platform, error) {
	return s.platformRepo.GetAll(ctx)
}

func (s *gameService) assignPlatforms(ctx context.Context, gameID int64, names []models.PlatformName) error {
	if names == nil {
		return nil
	}
	platforms, err := s.platformRepo.GetByNames(ctx, names)
	if err != nil {
		return err
	}
	return s.gameRepo.ReplacePlatforms(ctx, gameID, platforms)
}
