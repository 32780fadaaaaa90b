package models

import "time"

type Rating struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_game"`
	GameID       int64     `json:"game_id" gorm:"not null;uniqueIndex:idx_ratings_user_game;index"`
	Gameplay     int       `json:"gameplay" gorm:"not null;check:gameplay >= 1 AND gameplay <= 10"`
	Graphics     int       `json:"graphics" gorm:"not null;check:graphics >= 1 AND graphics <= 10"`
	Optimization int       `json:"optimization" gorm:"not null;check:optimization >= 1 AND optimization <= 10"`
	Story        int       `json:"story" gorm:"not null;check:story >= 1 AND story <= 10"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
