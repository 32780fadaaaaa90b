package service

import (
	"strings"

	"gamehub/internal/api/models"
)

// Metric selects which rating components feed a game's score. "overall"
// is the synthetic mean of all four components.
type Metric string

const (
	MetricOverall      Metric = "overall"
	MetricGameplay     Metric = "gameplay"
	MetricGraphics     Metric = "graphics"
	MetricOptimization Metric = "optimization"
	MetricStory        Metric = "story"
)

// ParseMetrics normalizes raw metric names: trims, case-folds, drops
// empties, drops anything outside the vocabulary, deduplicates. Only a
// request with no metric names at all defaults to {overall}; a request
// that named metrics but none of them known keeps the empty set, so
// every rating contributes 0.
func ParseMetrics(raw []string) []Metric {
	seen := make(map[Metric]bool, len(raw))
	metrics := make([]Metric, 0, len(raw))
	named := false
	for _, s := range raw {
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" {
			continue
		}
		named = true
		m := Metric(name)
		switch m {
		case MetricOverall, MetricGameplay, MetricGraphics, MetricOptimization, MetricStory:
			if !seen[m] {
				seen[m] = true
				metrics = append(metrics, m)
			}
		}
	}
	if len(metrics) == 0 && !named {
		return []Metric{MetricOverall}
	}
	return metrics
}

// ComputeGameScore reduces one game's ratings to a single score under
// the selected metrics, plus the number of contributing ratings.
//
// Each rating contributes the mean of its selected components; when
// "overall" is among the metrics it wins outright and the contribution
// is the mean of all four components. With no selected metrics every
// contribution is 0. The game's score is the equal-weighted mean of
// the per-rating contributions, 0.0 when the game has no ratings.
func ComputeGameScore(metrics []Metric, ratings []models.Rating) (float64, int) {
	if len(ratings) == 0 {
		return 0.0, 0
	}

	selected := make(map[Metric]bool, len(metrics))
	for _, m := range metrics {
		selected[m] = true
	}

	var sum float64
	for _, r := range ratings {
		sum += ratingContribution(selected, r)
	}
	return sum / float64(len(ratings)), len(ratings)
}

func ratingContribution(selected map[Metric]bool, r models.Rating) float64 {
	if selected[MetricOverall] {
		return float64(r.Gameplay+r.Graphics+r.Optimization+r.Story) / 4.0
	}

	var sum float64
	var n int
	if selected[MetricGameplay] {
		sum += float64(r.Gameplay)
		n++
	}
	if selected[MetricGraphics] {
		sum += float64(r.Graphics)
		n++
	}
	if selected[MetricOptimization] {
		sum += float64(r.Optimization)
		n++
	}
	if selected[MetricStory] {
		sum += float64(r.Story)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
