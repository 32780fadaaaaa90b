package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
)

type PlatformRepo struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) *PlatformRepo {
	return &PlatformRepo{db: db}
}

func (r *PlatformRepo) GetAll(ctx context.Context) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms: %w", err)
	}
	return list, nil
}

func (r *PlatformRepo) GetByNames(ctx context.Context, names []models.PlatformName) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms by name: %w", err)
	}
	return list, nil
}

// EnsureDefaults creates a row for every name in the fixed platform
// vocabulary that is missing. Idempotent; run at startup.
func (r *PlatformRepo) EnsureDefaults(ctx context.Context) error {
	for _, name := range models.AllPlatformNames() {
		var p models.Platform
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.WithContext(ctx).Create(&models.Platform{Name: name}).Error; err != nil {
				return fmt.Errorf("seed platform %s: %w", name, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("check platform %s: %w", name, err)
		}
	}
	return nil
}
