package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

// stubClient returns canned responses for testing the augmentation calls.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(_ ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func TestGenerateInterviewQuestion_ParsesResponse(t *testing.T) {
	client := &stubClient{response: `{
		"question": "Explain how a hash map handles collisions.",
		"expected_points": ["Chaining", "Open addressing"],
		"difficulty": "medium",
		"skill_tested": "dsa"
	}`}
	augmenter := NewAugmenter(client)

	question, usedFallback := augmenter.GenerateInterviewQuestion(context.Background(), InterviewQuestionRequest{
		InterviewType: "technical",
		SkillFocus:    []string{"dsa"},
		Difficulty:    "medium",
	})

	assert.False(t, usedFallback)
	assert.Equal(t, "Explain how a hash map handles collisions.", question.Question)
	assert.Equal(t, "dsa", question.SkillTested)
	assert.Len(t, question.ExpectedPoints, 2)
}

func TestGenerateInterviewQuestion_FallbackOnBadJSON(t *testing.T) {
	augmenter := NewAugmenter(&stubClient{response: "not json at all"})

	question, usedFallback := augmenter.GenerateInterviewQuestion(context.Background(), InterviewQuestionRequest{
		Difficulty: "hard",
	})

	assert.True(t, usedFallback)
	assert.Equal(t, "Tell me about a challenging project you worked on.", question.Question)
	assert.Equal(t, "hard", question.Difficulty)
	assert.Equal(t, "general", question.SkillTested)
}

func TestGenerateInterviewQuestion_FallbackOnError(t *testing.T) {
	augmenter := NewAugmenter(&stubClient{err: errors.New("quota exceeded")})

	question, usedFallback := augmenter.GenerateInterviewQuestion(context.Background(), InterviewQuestionRequest{})

	assert.True(t, usedFallback)
	require.NotNil(t, question)
}

func TestGenerateInterviewQuestion_NilClient(t *testing.T) {
	augmenter := NewAugmenter(nil)

	question, usedFallback := augmenter.GenerateInterviewQuestion(context.Background(), InterviewQuestionRequest{})

	assert.True(t, usedFallback)
	assert.Equal(t, "Tell me about a challenging project you worked on.", question.Question)
}

func TestGenerateAssessmentFeedback_UsesModelText(t *testing.T) {
	augmenter := NewAugmenter(&stubClient{response: "Solid grasp of recursion; practice graph problems next."})

	feedback, usedFallback := augmenter.GenerateAssessmentFeedback(context.Background(), "dsa", 80.0, []types.AnswerRecord{
		{QuestionID: "dsa_m1", Skill: "dsa", Difficulty: types.DifficultyMedium, IsCorrect: true},
	})

	assert.False(t, usedFallback)
	assert.Equal(t, "Solid grasp of recursion; practice graph problems next.", feedback)
}

func TestGenerateAssessmentFeedback_FallbackBands(t *testing.T) {
	augmenter := NewAugmenter(nil)

	high, usedFallback := augmenter.GenerateAssessmentFeedback(context.Background(), "dsa", 85.0, nil)
	assert.True(t, usedFallback)
	assert.Contains(t, high, "Strong performance")

	mid, _ := augmenter.GenerateAssessmentFeedback(context.Background(), "dsa", 60.0, nil)
	assert.Contains(t, mid, "Decent showing")

	low, _ := augmenter.GenerateAssessmentFeedback(context.Background(), "dsa", 30.0, nil)
	assert.Contains(t, low, "fundamentals")
}

func TestPredictSuccess_ParsesResponse(t *testing.T) {
	client := &stubClient{response: `{
		"success_probability": 0.72,
		"confidence_level": 0.8,
		"risk_factors": ["limited system design exposure"],
		"strengths_for_role": ["dsa"],
		"critical_gaps": ["system design"],
		"recommended_actions": [
			{"action": "Mock interviews", "priority": "high", "expected_impact": "reduced anxiety"}
		],
		"timeline_to_readiness": "6 weeks"
	}`}
	augmenter := NewAugmenter(client)

	prediction, usedFallback := augmenter.PredictSuccess(context.Background(), PredictionRequest{
		StudentSkills:  []string{"python", "dsa"},
		RequiredSkills: []string{"dsa", "system design"},
		Role:           "SDE-1",
	})

	assert.False(t, usedFallback)
	assert.Equal(t, 0.72, prediction.SuccessProbability)
	assert.Equal(t, "6 weeks", prediction.TimelineToReadiness)
	require.Len(t, prediction.RecommendedActions, 1)
	assert.Equal(t, "high", prediction.RecommendedActions[0].Priority)
}

func TestPredictSuccess_FallbackPayload(t *testing.T) {
	augmenter := NewAugmenter(&stubClient{response: `{"success_probability": 7.5}`})

	prediction, usedFallback := augmenter.PredictSuccess(context.Background(), PredictionRequest{})

	assert.True(t, usedFallback)
	assert.Equal(t, 0.5, prediction.SuccessProbability)
	assert.Equal(t, 0.3, prediction.ConfidenceLevel)
	assert.Equal(t, []string{"Insufficient data"}, prediction.RiskFactors)
	assert.Equal(t, "Unknown", prediction.TimelineToReadiness)
}
