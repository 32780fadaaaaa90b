package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// GetAll returns every game. The catalogue is admin-curated and small;
// the ranking service deliberately loads it in one query.
func (r *GameRepo) GetAll(ctx context.Context) ([]models.Game, error) {
	var list []models.Game
	if err := r.db.WithContext(ctx).
		Preload("Platforms").
		Order("title asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get games: %w", err)
	}
	return list, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).Preload("Platforms").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) Create(ctx context.Context, g *models.Game) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

// Update overwrites the editable columns only, leaving CreatedAt and
// the platform association untouched.
func (r *GameRepo) Update(ctx context.Context, id int64, g *models.Game) error {
	g.ID = id
	if err := r.db.WithContext(ctx).
		Model(&models.Game{ID: id}).
		Select("Title", "Tag", "ReleaseDate", "Developer", "Publisher", "Description", "ImageURL", "ThumbURL").
		Updates(g).Error; err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

// ReplacePlatforms swaps the game's platform association set.
func (r *GameRepo) ReplacePlatforms(ctx context.Context, gameID int64, platforms []models.Platform) error {
	var g models.Game
	if err := r.db.WithContext(ctx).First(&g, gameID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(&g).Association("Platforms").Replace(platforms); err != nil {
		return fmt.Errorf("replace platforms: %w", err)
	}
	return nil
}
