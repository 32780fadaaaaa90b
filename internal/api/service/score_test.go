package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gamehub/internal/api/models"
	"gamehub/internal/api/service"
)

func rating(gameplay, graphics, optimization, story int) models.Rating {
	return models.Rating{
		Gameplay:     gameplay,
		Graphics:     graphics,
		Optimization: optimization,
		Story:        story,
	}
}

func TestParseMetrics(t *testing.T) {
	t.Run("DefaultsToOverall", func(t *testing.T) {
		assert.Equal(t, []service.Metric{service.MetricOverall}, service.ParseMetrics(nil))
		assert.Equal(t, []service.Metric{service.MetricOverall}, service.ParseMetrics([]string{}))
	})

	t.Run("UnknownNamesDropped", func(t *testing.T) {
		got := service.ParseMetrics([]string{"gameplay", "bogus", "speed"})
		assert.Equal(t, []service.Metric{service.MetricGameplay}, got)
	})

	t.Run("AllUnknownYieldsEmptySet", func(t *testing.T) {
		// Named-but-unknown metrics stay filtered out rather than
		// falling back to overall; scoring then yields 0 everywhere.
		got := service.ParseMetrics([]string{"bogus", "nope"})
		assert.Empty(t, got)
	})

	t.Run("WhitespaceOnlyDefaultsToOverall", func(t *testing.T) {
		got := service.ParseMetrics([]string{"  ", ""})
		assert.Equal(t, []service.Metric{service.MetricOverall}, got)
	})

	t.Run("NormalizesAndDeduplicates", func(t *testing.T) {
		got := service.ParseMetrics([]string{" Story ", "STORY", "graphics", "story"})
		assert.Equal(t, []service.Metric{service.MetricStory, service.MetricGraphics}, got)
	})
}

func TestComputeGameScore(t *testing.T) {
	t.Run("NoRatingsScoresZero", func(t *testing.T) {
		score, count := service.ComputeGameScore([]service.Metric{service.MetricOverall}, nil)
		assert.Equal(t, 0.0, score)
		assert.Equal(t, 0, count)
	})

	t.Run("OverallIsMeanOfComponentMeans", func(t *testing.T) {
		// (10+9+8+7)/4 = 8.5 and (8+8+7+7)/4 = 7.5, mean 8.0
		ratings := []models.Rating{
			rating(10, 9, 8, 7),
			rating(8, 8, 7, 7),
		}
		score, count := service.ComputeGameScore([]service.Metric{service.MetricOverall}, ratings)
		assert.InDelta(t, 8.0, score, 1e-9)
		assert.Equal(t, 2, count)
	})

	t.Run("SingleComponentMetric", func(t *testing.T) {
		ratings := []models.Rating{
			rating(6, 10, 10, 10),
			rating(8, 1, 1, 1),
		}
		score, _ := service.ComputeGameScore([]service.Metric{service.MetricGameplay}, ratings)
		assert.InDelta(t, 7.0, score, 1e-9)
	})

	t.Run("MultipleComponentsAverageWithinEachRating", func(t *testing.T) {
		ratings := []models.Rating{
			rating(10, 2, 5, 5), // mean of gameplay+graphics = 6
			rating(4, 8, 5, 5),  // mean of gameplay+graphics = 6
		}
		score, _ := service.ComputeGameScore(
			[]service.Metric{service.MetricGameplay, service.MetricGraphics}, ratings)
		assert.InDelta(t, 6.0, score, 1e-9)
	})

	t.Run("OverallWinsWhenMixedWithComponents", func(t *testing.T) {
		ratings := []models.Rating{rating(10, 2, 2, 2)}
		mixed, _ := service.ComputeGameScore(
			[]service.Metric{service.MetricGameplay, service.MetricOverall}, ratings)
		overallOnly, _ := service.ComputeGameScore(
			[]service.Metric{service.MetricOverall}, ratings)
		assert.Equal(t, overallOnly, mixed)
		assert.InDelta(t, 4.0, mixed, 1e-9)
	})

	t.Run("NoSelectedMetricsScoresZero", func(t *testing.T) {
		ratings := []models.Rating{rating(8, 8, 8, 8), rating(10, 10, 10, 10)}
		score, count := service.ComputeGameScore(nil, ratings)
		assert.Equal(t, 0.0, score)
		assert.Equal(t, 2, count)
	})

	t.Run("ScoreStaysInRatingRange", func(t *testing.T) {
		ratings := []models.Rating{
			rating(1, 1, 1, 1),
			rating(10, 10, 10, 10),
			rating(3, 7, 5, 9),
		}
		for _, metrics := range [][]service.Metric{
			{service.MetricOverall},
			{service.MetricGameplay},
			{service.MetricGraphics, service.MetricStory},
		} {
			score, _ := service.ComputeGameScore(metrics, ratings)
			assert.GreaterOrEqual(t, score, 1.0)
			assert.LessOrEqual(t, score, 10.0)
		}
	})
}
