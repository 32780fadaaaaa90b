package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamehub/internal/api/models"
)

type LibraryRepository interface {
	CreateLibrary(ctx context.Context, userID string) (*models.Library, error)
	GetByUser(ctx context.Context, userID string) (*models.Library, error)
	AddEntry(ctx context.Context, entry *models.LibraryEntry) error
	RemoveEntry(ctx context.Context, libraryID, gameID int64) error
	EntryExists(ctx context.Context, libraryID, gameID int64) (bool, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) CreateLibrary(ctx context.Context, userID string) (*models.Library, error) {
	library := &models.Library{UserID: userID}
	if err := r.db.WithContext(ctx).Create(library).Error; err != nil {
		return nil, fmt.Errorf("create library: %w", err)
	}
	return library, nil
}

// GetByUser returns the user's library with its entries, or
// gorm.ErrRecordNotFound when the user never created one. The caller
// distinguishes that case from an empty library.
func (r *libraryRepository) GetByUser(ctx context.Context, userID string) (*models.Library, error) {
	var library models.Library
	if err := r.db.WithContext(ctx).
		Preload("Entries").
		Preload("Entries.Game").
		Where("user_id = ?", userID).
		First(&library).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *libraryRepository) AddEntry(ctx context.Context, entry *models.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add library entry: %w", err)
	}
	return nil
}

func (r *libraryRepository) RemoveEntry(ctx context.Context, libraryID, gameID int64) error {
	result := r.db.WithContext(ctx).
		Where("library_id = ? AND game_id = ?", libraryID, gameID).
		Delete(&models.LibraryEntry{})
	if result.Error != nil {
		return fmt.Errorf("remove library entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *libraryRepository) EntryExists(ctx context.Context, libraryID, gameID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Where("library_id = ? AND game_id = ?", libraryID, gameID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
