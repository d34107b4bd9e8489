package twin

import (
	"fmt"
	"math"
	"strings"

	"github.com/velionx/placement-engine/internal/types"
)

// Success probability weights. Consistency, composure, and follow-through
// cover half the estimate; recent assessment performance covers the rest.
const (
	consistencyWeight     = 0.2
	composureWeight       = 0.15
	followThroughWeight   = 0.15
	assessmentWeight      = 0.5
	riskPenalty           = 0.05
	minSuccessProbability = 0.10
	maxSuccessProbability = 0.95

	// recentAssessmentWindow is how many assessment entries feed the
	// average score.
	recentAssessmentWindow = 5

	// defaultEmployerBonus applies when an employer profile does not
	// weight a strength explicitly.
	defaultEmployerBonus = 0.2
)

// Risk factor thresholds.
const (
	lowConsistencyThreshold      = 0.5
	highAnxietyThreshold         = 7.0
	highProcrastinationThreshold = 0.6
	avoidedTopicsThreshold       = 3
)

// employerBonuses maps employer names to skill-specific probability
// bonuses. Absent keys fall back to defaultEmployerBonus.
var employerBonuses = map[string]map[string]float64{
	"Google":    {"dsa": 0.4, "system design": 0.3},
	"Amazon":    {"dsa": 0.35, "leadership": 0.25},
	"Microsoft": {"dsa": 0.35, "system design": 0.25},
	"Meta":      {"dsa": 0.4, "system design": 0.3},
	"Startups":  {"versatility": 0.4, "communication": 0.3},
}

// employerOrder fixes the iteration order over employerBonuses.
var employerOrder = []string{"Google", "Amazon", "Microsoft", "Meta", "Startups"}

// refreshPredictions recomputes risk factors and per-employer success
// probabilities from the profile's current state.
func (a *Aggregator) refreshPredictions(profile *types.BehavioralProfile) {
	consistency := profile.Learning.ConsistencyScore
	anxiety := profile.Behavior.InterviewAnxiety
	procrastination := profile.Behavior.ProcrastinationTendency

	base := consistency*consistencyWeight +
		(1-anxiety/10)*composureWeight +
		(1-procrastination)*followThroughWeight +
		(averageAssessmentScore(profile)/100)*assessmentWeight

	risks := deriveRiskFactors(profile)
	profile.Predictions.RiskFactors = risks

	if profile.Predictions.SuccessProbability == nil {
		profile.Predictions.SuccessProbability = make(map[string]float64)
	}
	for _, employer := range employerOrder {
		bonus := employerBonus(employerBonuses[employer], profile.Behavior.StrengthAreas)
		probability := base + bonus - float64(len(risks))*riskPenalty
		if probability > maxSuccessProbability {
			probability = maxSuccessProbability
		}
		if probability < minSuccessProbability {
			probability = minSuccessProbability
		}
		profile.Predictions.SuccessProbability[employer] = round2(probability)
	}
}

// averageAssessmentScore averages the most recent assessment entries in the
// performance history.
func averageAssessmentScore(profile *types.BehavioralProfile) float64 {
	var scores []float64
	for _, entry := range profile.Performance {
		if entry.Type == "assessment" {
			scores = append(scores, entry.Score)
		}
	}
	if len(scores) > recentAssessmentWindow {
		scores = scores[len(scores)-recentAssessmentWindow:]
	}
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores))
}

// deriveRiskFactors checks each behavioral signal independently; every
// triggered check adds one factor.
func deriveRiskFactors(profile *types.BehavioralProfile) []types.RiskFactor {
	var risks []types.RiskFactor

	if profile.Learning.ConsistencyScore < lowConsistencyThreshold {
		risks = append(risks, types.RiskFactor{
			Factor:         "Low consistency in learning",
			Impact:         "high",
			Recommendation: "Try to study at least 5 days a week",
		})
	}
	if profile.Behavior.InterviewAnxiety > highAnxietyThreshold {
		risks = append(risks, types.RiskFactor{
			Factor:         "High interview anxiety",
			Impact:         "high",
			Recommendation: "Practice more mock interviews to build confidence",
		})
	}
	if profile.Behavior.ProcrastinationTendency > highProcrastinationThreshold {
		risks = append(risks, types.RiskFactor{
			Factor:         "Tendency to skip tasks",
			Impact:         "medium",
			Recommendation: "Break tasks into smaller chunks and use the Pomodoro technique",
		})
	}
	if avoided := profile.Behavior.TopicAvoidance; len(avoided) > avoidedTopicsThreshold {
		risks = append(risks, types.RiskFactor{
			Factor:         fmt.Sprintf("Multiple weak areas: %s", strings.Join(avoided[:3], ", ")),
			Impact:         "high",
			Recommendation: fmt.Sprintf("Focus on improving: %s", avoided[0]),
		})
	}
	return risks
}

// employerBonus sums the bonuses an employer grants for the student's
// strength areas. Only dsa (or algorithms) and system design earn bonuses.
func employerBonus(weights map[string]float64, strengths []string) float64 {
	has := make(map[string]bool, len(strengths))
	for _, strength := range strengths {
		has[strength] = true
	}

	var bonus float64
	if has["dsa"] || has["algorithms"] {
		bonus += weightOr(weights, "dsa", defaultEmployerBonus)
	}
	if has["system design"] {
		bonus += weightOr(weights, "system design", defaultEmployerBonus)
	}
	return bonus
}

func weightOr(weights map[string]float64, key string, fallback float64) float64 {
	if w, ok := weights[key]; ok {
		return w
	}
	return fallback
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
