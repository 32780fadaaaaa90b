package dto

import (
	"time"

	"gamehub/internal/api/models"
)

// AddLibraryGameRequest for adding a game to the user's library
type AddLibraryGameRequest struct {
	GameID int64  `json:"game_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// LibraryEntryResponse is one game in the library view
type LibraryEntryResponse struct {
	ID      int64              `json:"id"`
	GameID  int64              `json:"game_id"`
	Status  models.EntryStatus `json:"status"`
	AddedAt time.Time          `json:"added_at"`
	Game    *GameBasicResponse `json:"game,omitempty"`
}

// LibraryResponse for returning a user's library
type LibraryResponse struct {
	ID      int64                  `json:"id"`
	UserID  string                 `json:"user_id"`
	Entries []LibraryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// FromModelToLibraryResponse converts a Library with entries to its DTO
func FromModelToLibraryResponse(library *models.Library) LibraryResponse {
	entries := make([]LibraryEntryResponse, 0, len(library.Entries))
	for _, e := range library.Entries {
		resp := LibraryEntryResponse{
			ID:      e.ID,
			GameID:  e.GameID,
			Status:  e.Status,
			AddedAt: e.AddedAt,
		}
		if e.Game != nil {
			g := FromModelToBasicResponse(*e.Game)
			resp.Game = &g
		}
		entries = append(entries, resp)
	}
	return LibraryResponse{
		ID:      library.ID,
		UserID:  library.UserID,
		Entries: entries,
		Total:   len(entries),
	}
}
