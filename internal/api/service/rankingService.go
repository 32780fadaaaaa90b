package service

import (
	"context"
	"sort"
	"strings"

	"gamehub/internal/api/models"
	"gamehub/internal/api/repository"
)

const defaultRankingLimit = 100

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	GameID       int64   `json:"game_id"`
	Title        string  `json:"title"`
	Score        float64 `json:"score"`
	RatingsCount int     `json:"ratings_count"`
}

// RankingResult carries the ordered entries plus the query metadata the
// view needs to render the filter state back.
type RankingResult struct {
	Entries        []RankingEntry `json:"entries"`
	MetricsUsed    []Metric       `json:"metrics_used"`
	TotalGames     int            `json:"total_games"`
	EffectiveLimit int            `json:"effective_limit"`
	Tag            string         `json:"tag,omitempty"`
}

type RankingService interface {
	GetRanking(ctx context.Context, rawMetrics []string, limit int, tag string) (*RankingResult, error)
}

type rankingService struct {
	gameRepo   *repository.GameRepo
	ratingRepo repository.RatingRepository
}

func NewRankingService(gameRepo *repository.GameRepo, ratingRepo repository.RatingRepository) RankingService {
	return &rankingService{
		gameRepo:   gameRepo,
		ratingRepo: ratingRepo,
	}
}

// GetRanking builds the leaderboard: filter games by tag, score each
// against the selected metrics, order by score then ratings count,
// truncate to the limit.
func (s *rankingService) GetRanking(ctx context.Context, rawMetrics []string, limit int, tag string) (*RankingResult, error) {
	metrics := ParseMetrics(rawMetrics)

	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Tag filter. "" and "all" mean no filtering; an unknown tag empties
	// the working set rather than erroring, matching the established
	// behavior of the leaderboard page.
	selectedTag := strings.TrimSpace(tag)
	if selectedTag != "" && !strings.EqualFold(selectedTag, "all") {
		if parsed, ok := models.ParseTag(selectedTag); ok {
			filtered := games[:0]
			for _, g := range games {
				if g.Tag == parsed {
					filtered = append(filtered, g)
				}
			}
			games = filtered
		} else {
			games = nil
		}
	}

	// One query for all ratings, partitioned in memory.
	ratings, err := s.ratingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byGame := make(map[int64][]models.Rating, len(games))
	for _, r := range ratings {
		byGame[r.GameID] = append(byGame[r.GameID], r)
	}

	entries := make([]RankingEntry, 0, len(games))
	for _, g := range games {
		score, count := ComputeGameScore(metrics, byGame[g.ID])
		entries = append(entries, RankingEntry{
			GameID:       g.ID,
			Title:        g.Title,
			Score:        score,
			RatingsCount: count,
		})
	}

	// Score desc, ties by ratings count desc; stable beyond that so a
	// fixed input ordering gives a deterministic leaderboard.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].RatingsCount > entries[j].RatingsCount
	})

	totalGames := len(entries)
	take := defaultRankingLimit
	if limit > 0 {
		take = limit
		if totalGames > 0 && totalGames < take {
			take = totalGames
		}
	}
	if take < len(entries) {
		entries = entries[:take]
	}

	return &RankingResult{
		Entries:        entries,
		MetricsUsed:    metrics,
		TotalGames:     totalGames,
		EffectiveLimit: take,
		Tag:            selectedTag,
	}, nil
}
