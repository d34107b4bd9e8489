package twin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

func TestRefreshPredictions_BaseFormula(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)

	profile := aggregator.newProfile("s")
	profile.Learning.ConsistencyScore = 0.5
	profile.Behavior.InterviewAnxiety = 2.0
	profile.Behavior.ProcrastinationTendency = 0.2
	profile.Performance = []types.PerformanceEntry{
		{Type: "assessment", Score: 80},
		{Type: "assessment", Score: 60},
	}

	aggregator.refreshPredictions(profile)

	// 0.5*0.2 + 0.8*0.15 + 0.8*0.15 + 0.7*0.5 = 0.69, no risks, no bonus.
	assert.Empty(t, profile.Predictions.RiskFactors)
	for _, employer := range employerOrder {
		assert.Equal(t, 0.69, profile.Predictions.SuccessProbability[employer], employer)
	}
}

func TestRefreshPredictions_EmployerBonuses(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)

	profile := aggregator.newProfile("s")
	profile.Learning.ConsistencyScore = 0.5
	profile.Behavior.StrengthAreas = []string{"dsa"}
	profile.Performance = []types.PerformanceEntry{
		{Type: "assessment", Score: 70},
	}

	aggregator.refreshPredictions(profile)

	// Base = 0.5*0.2 + 0.15 + 0.15 + 0.35 = 0.75.
	// Google grants 0.4 for dsa, clamped at 0.95; Startups has no dsa
	// weight and falls back to the 0.2 default.
	assert.Equal(t, 0.95, profile.Predictions.SuccessProbability["Google"])
	assert.Equal(t, 0.95, profile.Predictions.SuccessProbability["Meta"])
	assert.Equal(t, 0.95, profile.Predictions.SuccessProbability["Startups"])

	// Without assessment history the base drops to 0.40.
	profile.Performance = nil
	aggregator.refreshPredictions(profile)
	assert.Equal(t, 0.8, profile.Predictions.SuccessProbability["Google"])
	assert.Equal(t, 0.6, profile.Predictions.SuccessProbability["Startups"])
}

func TestRefreshPredictions_ClampCeiling(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)

	profile := aggregator.newProfile("s")
	profile.Learning.ConsistencyScore = 1.0
	profile.Behavior.InterviewAnxiety = 0.0
	profile.Behavior.ProcrastinationTendency = 0.0
	profile.Performance = []types.PerformanceEntry{
		{Type: "assessment", Score: 100},
	}

	aggregator.refreshPredictions(profile)

	// Base hits 1.0 with zero risk factors; every estimate clamps to 0.95.
	require.Empty(t, profile.Predictions.RiskFactors)
	for _, employer := range employerOrder {
		assert.Equal(t, 0.95, profile.Predictions.SuccessProbability[employer], employer)
	}
}

func TestRefreshPredictions_ClampFloor(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregator, _, _ := newTestAggregator(clock)

	profile := aggregator.newProfile("s")
	profile.Learning.ConsistencyScore = 0.0
	profile.Behavior.InterviewAnxiety = 10.0
	profile.Behavior.ProcrastinationTendency = 1.0
	profile.Behavior.TopicAvoidance = []string{"python", "sql", "java", "css"}

	aggregator.refreshPredictions(profile)

	require.Len(t, profile.Predictions.RiskFactors, 4)
	for _, employer := range employerOrder {
		assert.Equal(t, 0.10, profile.Predictions.SuccessProbability[employer], employer)
	}
}

func TestDeriveRiskFactors_AllTriggered(t *testing.T) {
	profile := &types.BehavioralProfile{}
	profile.Learning.ConsistencyScore = 0.2
	profile.Behavior.InterviewAnxiety = 8.0
	profile.Behavior.ProcrastinationTendency = 0.7
	profile.Behavior.TopicAvoidance = []string{"python", "sql", "java", "css"}

	risks := deriveRiskFactors(profile)
	require.Len(t, risks, 4)
	assert.Equal(t, "Low consistency in learning", risks[0].Factor)
	assert.Equal(t, "High interview anxiety", risks[1].Factor)
	assert.Equal(t, "Tendency to skip tasks", risks[2].Factor)
	assert.Equal(t, "Multiple weak areas: python, sql, java", risks[3].Factor)
	assert.Equal(t, "Focus on improving: python", risks[3].Recommendation)
}

func TestDeriveRiskFactors_ThresholdsAreExclusive(t *testing.T) {
	profile := &types.BehavioralProfile{}
	profile.Learning.ConsistencyScore = 0.5
	profile.Behavior.InterviewAnxiety = 7.0
	profile.Behavior.ProcrastinationTendency = 0.6
	profile.Behavior.TopicAvoidance = []string{"python", "sql", "java"}

	assert.Empty(t, deriveRiskFactors(profile))
}

func TestAverageAssessmentScore_WindowsLastFive(t *testing.T) {
	profile := &types.BehavioralProfile{}
	for _, score := range []float64{10, 20, 30, 40, 50, 60, 70} {
		profile.Performance = append(profile.Performance, types.PerformanceEntry{
			Type:  "assessment",
			Score: score,
		})
	}
	// Interview entries are ignored.
	profile.Performance = append(profile.Performance, types.PerformanceEntry{
		Type:  "interview",
		Score: 100,
	})

	// Last five assessments: 30..70.
	assert.InDelta(t, 50.0, averageAssessmentScore(profile), 1e-9)
}

func TestEmployerBonus_AlgorithmsAlias(t *testing.T) {
	bonus := employerBonus(employerBonuses["Google"], []string{"algorithms"})
	assert.InDelta(t, 0.4, bonus, 1e-9)

	bonus = employerBonus(employerBonuses["Google"], []string{"dsa", "system design"})
	assert.InDelta(t, 0.7, bonus, 1e-9)

	bonus = employerBonus(employerBonuses["Amazon"], []string{"system design"})
	assert.InDelta(t, 0.2, bonus, 1e-9)
}
