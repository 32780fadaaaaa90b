package models

import "time"

type Game struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Tag         Tag       `json:"tag" gorm:"type:varchar(32);not null;index"`
	ReleaseDate time.Time `json:"release_date" gorm:"not null"`
	Developer   string    `json:"developer" gorm:"not null"`
	Publisher   string    `json:"publisher" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ThumbURL    *string   `json:"thumb_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Platforms []Platform `json:"platforms,omitempty" gorm:"many2many:game_platforms;constraint:OnDelete:CASCADE;"`
}

func (Game) TableName() string {
	return "games"
}
