package twin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

func skillHistory(scores ...float64) []types.SkillPoint {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	history := make([]types.SkillPoint, len(scores))
	for i, score := range scores {
		history[i] = types.SkillPoint{Timestamp: at.AddDate(0, 0, i), Score: score}
	}
	return history
}

func TestTrends_DecliningAndStagnant(t *testing.T) {
	profile := &types.BehavioralProfile{
		SkillEvolution: map[string][]types.SkillPoint{
			"dsa":    skillHistory(80, 70, 60),
			"python": skillHistory(50, 52, 53),
			"sql":    skillHistory(40, 55, 70),
			"java":   skillHistory(60, 50),
		},
	}

	trends := Trends(profile)
	require.Len(t, trends, 2)

	// Declining skills come before stagnant ones.
	assert.Equal(t, "dsa", trends[0].Skill)
	assert.Equal(t, "declining", trends[0].Trend)
	assert.Equal(t, []float64{80, 70, 60}, trends[0].RecentScores)

	assert.Equal(t, "python", trends[1].Skill)
	assert.Equal(t, "stagnant", trends[1].Trend)
}

func TestTrends_UsesTrailingWindow(t *testing.T) {
	profile := &types.BehavioralProfile{
		SkillEvolution: map[string][]types.SkillPoint{
			"dsa": skillHistory(10, 20, 90, 80, 70),
		},
	}

	trends := Trends(profile)
	require.Len(t, trends, 1)
	assert.Equal(t, "declining", trends[0].Trend)
	assert.Equal(t, []float64{90, 80, 70}, trends[0].RecentScores)
}

func TestTrends_ShortHistorySkipped(t *testing.T) {
	profile := &types.BehavioralProfile{
		SkillEvolution: map[string][]types.SkillPoint{
			"dsa": skillHistory(60, 50),
		},
	}
	assert.Empty(t, Trends(profile))
}

func TestPredictWeakness_FallbackPrediction(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)
	ctx := context.Background()

	for _, score := range []float64{80, 70, 60} {
		_, err := aggregator.RecordEvent(ctx, "s", types.AssessmentCompleted{
			Category:    "dsa",
			Score:       score,
			SkillScores: map[string]float64{"dsa": score},
		})
		require.NoError(t, err)
	}

	forecast, err := aggregator.PredictWeakness(ctx, "s", "Google")
	require.NoError(t, err)

	assert.Equal(t, "s", forecast.StudentID)
	assert.Equal(t, "Google", forecast.TargetCompany)
	assert.True(t, forecast.Fallback)
	assert.Equal(t, 0.5, forecast.SuccessProbability)
	assert.Equal(t, "Unknown", forecast.TimelineToReadiness)
	assert.Equal(t, clock, forecast.AnalyzedAt)

	require.Len(t, forecast.PredictedWeaknesses, 1)
	assert.Equal(t, "dsa", forecast.PredictedWeaknesses[0].Skill)
	assert.Equal(t, "declining", forecast.PredictedWeaknesses[0].Trend)
}

func TestPredictWeakness_NoTwin(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)

	_, err := aggregator.PredictWeakness(context.Background(), "stranger", "")
	assert.ErrorIs(t, err, ErrTwinNotFound)
}
