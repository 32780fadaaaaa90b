package models

import (
	"strings"
	"time"
)

// Library is a user's personal game collection. One per user, created
// explicitly; entries hang off it rather than off the user directly.
type Library struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Entries []LibraryEntry `json:"entries,omitempty" gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE;"`
}

func (Library) TableName() string {
	return "libraries"
}

type LibraryEntry struct {
	ID        int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	LibraryID int64       `json:"library_id" gorm:"not null;uniqueIndex:idx_library_entries_library_game"`
	GameID    int64       `json:"game_id" gorm:"not null;uniqueIndex:idx_library_entries_library_game;index"`
	Status    EntryStatus `json:"status" gorm:"type:varchar(16);not null"`
	AddedAt   time.Time   `json:"added_at" gorm:"autoCreateTime"`

	// Associations
	Game *Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}

// EntryStatus tracks how far the user is with a game in their library.
type EntryStatus string

const (
	StatusInProgress EntryStatus = "in_progress"
	StatusCompleted  EntryStatus = "completed"
	StatusDropped    EntryStatus = "dropped"
)

func ParseEntryStatus(s string) (EntryStatus, bool) {
	st := EntryStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusInProgress, StatusCompleted, StatusDropped:
		return st, true
	}
	return "", false
}
