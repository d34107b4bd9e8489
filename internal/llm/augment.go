package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/velionx/placement-engine/internal/types"
)

// Augmenter wraps a Client with the engine's generation calls. Every call
// is fail-soft: when the client is nil or the model output cannot be
// parsed, a deterministic fallback payload is returned and the second
// return value reports it, so callers never block on model availability.
type Augmenter struct {
	client Client
}

// NewAugmenter creates an Augmenter. A nil client is valid and makes every
// call return its fallback payload.
func NewAugmenter(client Client) *Augmenter {
	return &Augmenter{client: client}
}

// InterviewQuestionRequest describes the context for a generated interview
// question.
type InterviewQuestionRequest struct {
	InterviewType     string
	SkillFocus        []string
	Difficulty        string
	PreviousQuestions []string
	StudentSkills     []string
	TargetRole        string
}

// InterviewQuestion is a single generated interview question.
type InterviewQuestion struct {
	Question       string   `json:"question"`
	ExpectedPoints []string `json:"expected_points"`
	Difficulty     string   `json:"difficulty"`
	SkillTested    string   `json:"skill_tested"`
}

// maxPreviousQuestions limits how much interview history is replayed into
// the prompt.
const maxPreviousQuestions = 5

// GenerateInterviewQuestion generates one interview question for the given
// context. The boolean reports whether the fallback question was used.
func (a *Augmenter) GenerateInterviewQuestion(ctx context.Context, req InterviewQuestionRequest) (*InterviewQuestion, bool) {
	fallback := &InterviewQuestion{
		Question:       "Tell me about a challenging project you worked on.",
		ExpectedPoints: []string{"Problem description", "Solution approach", "Outcome"},
		Difficulty:     req.Difficulty,
		SkillTested:    "general",
	}
	if a.client == nil {
		return fallback, true
	}

	previous := req.PreviousQuestions
	if len(previous) > maxPreviousQuestions {
		previous = previous[len(previous)-maxPreviousQuestions:]
	}
	history := "None"
	if len(previous) > 0 {
		history = strings.Join(previous, "\n")
	}

	role := req.TargetRole
	if role == "" {
		role = "Software Engineer"
	}

	prompt := fmt.Sprintf(`You are an expert interviewer. Generate ONE interview question.

Interview Type: %s
Skills to focus on: %s
Difficulty: %s
Student's skills: %s
Target role: %s

Previous questions asked (avoid repetition):
%s

Return a JSON object:
{
    "question": "Your interview question here",
    "expected_points": ["key point 1", "key point 2"],
    "difficulty": "%s",
    "skill_tested": "primary skill being tested"
}

Return ONLY the JSON object.`,
		req.InterviewType,
		strings.Join(req.SkillFocus, ", "),
		req.Difficulty,
		strings.Join(req.StudentSkills, ", "),
		role,
		history,
		req.Difficulty,
	)

	raw, err := a.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return fallback, true
	}

	var question InterviewQuestion
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &question); err != nil || question.Question == "" {
		return fallback, true
	}
	return &question, false
}

// GenerateAssessmentFeedback produces feedback text for a completed
// assessment. The boolean reports whether the fallback text was used.
func (a *Augmenter) GenerateAssessmentFeedback(ctx context.Context, category string, score float64, answers []types.AnswerRecord) (string, bool) {
	if a.client == nil {
		return fallbackFeedback(category, score), true
	}

	var summary strings.Builder
	for i, answer := range answers {
		if i >= 5 {
			break
		}
		outcome := "incorrect"
		if answer.IsCorrect {
			outcome = "correct"
		}
		fmt.Fprintf(&summary, "- %s (%s, %s): %s\n", answer.QuestionID, answer.Skill, answer.Difficulty, outcome)
	}

	prompt := fmt.Sprintf(`Generate constructive feedback for a student's assessment.

Skill Assessed: %s
Score: %.1f%%

Question-Answer Summary:
%s
Provide:
1. What they did well
2. Areas for improvement
3. Specific resources or topics to study
4. Practice recommendations

Keep feedback encouraging but honest. Maximum 200 words.`,
		category, score, summary.String())

	feedback, err := a.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil || strings.TrimSpace(feedback) == "" {
		return fallbackFeedback(category, score), true
	}
	return feedback, false
}

// fallbackFeedback is the deterministic feedback used when no model is
// available.
func fallbackFeedback(category string, score float64) string {
	switch {
	case score >= 70:
		return fmt.Sprintf("Strong performance in %s at %.1f%%. Keep practicing harder problems to stay sharp.", category, score)
	case score >= 50:
		return fmt.Sprintf("Decent showing in %s at %.1f%%. Review the questions you missed and focus on the weaker topics.", category, score)
	default:
		return fmt.Sprintf("You scored %.1f%% in %s. Revisit the fundamentals and retake the assessment to track improvement.", score, category)
	}
}

// PredictionRequest describes the inputs for a success prediction.
type PredictionRequest struct {
	StudentSkills  []string
	ReadinessScore float64
	RequiredSkills []string
	Role           string
	RecentScores   []float64
}

// RecommendedAction is a single prioritized action in a prediction.
type RecommendedAction struct {
	Action         string `json:"action"`
	Priority       string `json:"priority"`
	ExpectedImpact string `json:"expected_impact"`
}

// SuccessPrediction is the model's assessment of placement readiness.
type SuccessPrediction struct {
	SuccessProbability  float64             `json:"success_probability"`
	ConfidenceLevel     float64             `json:"confidence_level"`
	RiskFactors         []string            `json:"risk_factors"`
	StrengthsForRole    []string            `json:"strengths_for_role"`
	CriticalGaps        []string            `json:"critical_gaps"`
	RecommendedActions  []RecommendedAction `json:"recommended_actions"`
	TimelineToReadiness string              `json:"timeline_to_readiness"`
}

// PredictSuccess estimates a student's chance of success for a role. The
// boolean reports whether the fallback payload was used.
func (a *Augmenter) PredictSuccess(ctx context.Context, req PredictionRequest) (*SuccessPrediction, bool) {
	fallback := &SuccessPrediction{
		SuccessProbability:  0.5,
		ConfidenceLevel:     0.3,
		RiskFactors:         []string{"Insufficient data"},
		StrengthsForRole:    []string{},
		CriticalGaps:        []string{},
		RecommendedActions:  []RecommendedAction{},
		TimelineToReadiness: "Unknown",
	}
	if a.client == nil {
		return fallback, true
	}

	role := req.Role
	if role == "" {
		role = "Software Engineer"
	}

	history := "No history"
	if len(req.RecentScores) > 0 {
		recent := req.RecentScores
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		parts := make([]string, len(recent))
		for i, score := range recent {
			parts[i] = fmt.Sprintf("%.1f", score)
		}
		history = strings.Join(parts, ", ")
	}

	prompt := fmt.Sprintf(`Analyze this student's chance of success:

Student Profile:
- Skills: %s
- Readiness Score: %.1f

Company Requirements:
- Required Skills: %s
- Role: %s

Recent Performance History:
%s

Return JSON:
{
    "success_probability": 0.0-1.0,
    "confidence_level": 0.0-1.0,
    "risk_factors": ["risk1", "risk2"],
    "strengths_for_role": ["strength1", "strength2"],
    "critical_gaps": ["gap1", "gap2"],
    "recommended_actions": [
        {"action": "description", "priority": "high/medium/low", "expected_impact": "description"}
    ],
    "timeline_to_readiness": "X weeks"
}

Return ONLY the JSON object.`,
		strings.Join(req.StudentSkills, ", "),
		req.ReadinessScore,
		strings.Join(req.RequiredSkills, ", "),
		role,
		history,
	)

	raw, err := a.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return fallback, true
	}

	var prediction SuccessPrediction
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &prediction); err != nil {
		return fallback, true
	}
	if prediction.SuccessProbability < 0 || prediction.SuccessProbability > 1 {
		return fallback, true
	}
	return &prediction, false
}
