package twin

import (
	"context"
	"math"
	"time"

	"github.com/velionx/placement-engine/internal/llm"
	"github.com/velionx/placement-engine/internal/types"
)

const (
	// trendWindow is how many trailing points a skill needs before its
	// trajectory is judged.
	trendWindow = 3
	// stagnantDelta is the score band within which a skill counts as
	// stagnant rather than improving.
	stagnantDelta = 5.0
	// predictionHistoryWindow is how many performance entries feed the
	// model prompt.
	predictionHistoryWindow = 10
)

// WeaknessForecast combines trend analysis of a student's tracked skills
// with a model-backed success estimate.
type WeaknessForecast struct {
	StudentID           string                  `json:"student_id"`
	TargetCompany       string                  `json:"target_company,omitempty"`
	PredictedWeaknesses []types.SkillTrend      `json:"predicted_weaknesses"`
	SuccessProbability  float64                 `json:"success_probability"`
	ConfidenceLevel     float64                 `json:"confidence_level"`
	RiskFactors         []types.RiskFactor      `json:"risk_factors,omitempty"`
	RecommendedActions  []llm.RecommendedAction `json:"recommended_actions,omitempty"`
	TimelineToReadiness string                  `json:"timeline_to_readiness"`
	Fallback            bool                    `json:"fallback"`
	AnalyzedAt          time.Time               `json:"analysis_timestamp"`
}

// Trends judges the trajectory of every tracked skill with enough history.
// A skill whose latest score fell below the window's first is declining;
// one that moved less than stagnantDelta either way is stagnant. Declining
// skills come first, each group sorted by skill name.
func Trends(profile *types.BehavioralProfile) []types.SkillTrend {
	var declining, stagnant []types.SkillTrend
	for _, skill := range trackedSkills(profile) {
		history := profile.SkillEvolution[skill]
		if len(history) < trendWindow {
			continue
		}
		scores := recentScores(history, trendWindow)
		first, last := scores[0], scores[len(scores)-1]
		switch {
		case last < first:
			declining = append(declining, types.SkillTrend{
				Skill:        skill,
				Trend:        "declining",
				RecentScores: scores,
			})
		case math.Abs(last-first) < stagnantDelta:
			stagnant = append(stagnant, types.SkillTrend{
				Skill:        skill,
				Trend:        "stagnant",
				RecentScores: scores,
			})
		}
	}
	return append(declining, stagnant...)
}

// PredictWeakness analyzes skill trends for a student and augments them
// with a model-backed success prediction. Without a model the prediction
// falls back to a neutral estimate and the forecast says so.
func (a *Aggregator) PredictWeakness(ctx context.Context, studentID, targetCompany string) (*WeaknessForecast, error) {
	profile, err := a.Profile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history := profile.Performance
	if len(history) > predictionHistoryWindow {
		history = history[len(history)-predictionHistoryWindow:]
	}
	scores := make([]float64, len(history))
	for i, entry := range history {
		scores[i] = entry.Score
	}

	prediction, usedFallback := a.augmenter.PredictSuccess(ctx, llm.PredictionRequest{
		StudentSkills:  profile.Behavior.StrengthAreas,
		ReadinessScore: averageAssessmentScore(profile),
		RequiredSkills: []string{"dsa", "system design"},
		Role:           targetCompany,
		RecentScores:   scores,
	})

	return &WeaknessForecast{
		StudentID:           studentID,
		TargetCompany:       targetCompany,
		PredictedWeaknesses: Trends(profile),
		SuccessProbability:  prediction.SuccessProbability,
		ConfidenceLevel:     prediction.ConfidenceLevel,
		RiskFactors:         profile.Predictions.RiskFactors,
		RecommendedActions:  prediction.RecommendedActions,
		TimelineToReadiness: prediction.TimelineToReadiness,
		Fallback:            usedFallback,
		AnalyzedAt:          a.now(),
	}, nil
}
