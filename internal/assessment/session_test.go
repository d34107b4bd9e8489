package assessment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

func newTestSession(t *testing.T, skills []string, perSkill int) *types.AssessmentSession {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	session := NewSession("student-1", "technical", skills, perSkill, DefaultBank(), rng)
	require.NotEmpty(t, session.Questions)
	return session
}

// answerAt submits the answer for the question at the session cursor,
// either the correct option or a guaranteed-wrong one.
func answerAt(t *testing.T, session *types.AssessmentSession, correct bool) *types.SubmitResult {
	t.Helper()
	question := session.Questions[session.CurrentIndex]
	answer := question.Correct
	if !correct {
		answer = "definitely not the answer"
	}
	result, err := SubmitAnswer(session, question.ID, answer, 30)
	require.NoError(t, err)
	return result
}

func TestNewSession_InitialState(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)

	assert.Equal(t, types.DifficultyMedium, session.Adaptive.CurrentDifficulty)
	assert.Zero(t, session.Adaptive.ConsecutiveCorrect)
	assert.Zero(t, session.Adaptive.ConsecutiveWrong)
	assert.Zero(t, session.CurrentIndex)
	assert.Equal(t, types.SessionInProgress, session.Status)
}

func TestNewSession_DeterministicWithSeed(t *testing.T) {
	a := NewSession("s", "technical", []string{"dsa", "python"}, 3, DefaultBank(), rand.New(rand.NewSource(7)))
	b := NewSession("s", "technical", []string{"dsa", "python"}, 3, DefaultBank(), rand.New(rand.NewSource(7)))

	require.Equal(t, len(a.Questions), len(b.Questions))
	for i := range a.Questions {
		assert.Equal(t, a.Questions[i].ID, b.Questions[i].ID)
	}
}

func TestNewSession_TopsUpFromOtherDifficulties(t *testing.T) {
	// dsa has 3 medium questions; asking for 5 pulls from easy/hard too.
	session := newTestSession(t, []string{"dsa"}, 5)
	assert.Len(t, session.Questions, 5)
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)

	_, err := SubmitAnswer(session, "no_such_id", "whatever", 10)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSubmitAnswer_CaseSensitiveComparison(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)
	question := session.Questions[0]

	result, err := SubmitAnswer(session, question.ID, question.Correct+" ", 10)
	require.NoError(t, err)
	assert.False(t, result.IsCorrect, "answer comparison is exact string equality")
	assert.Equal(t, question.Correct, result.CorrectAnswer)
}

func TestSubmitAnswer_UpdatesStateAndLog(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)

	result := answerAt(t, session, true)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, 1, session.Adaptive.ConsecutiveCorrect)
	assert.Equal(t, 0, session.Adaptive.ConsecutiveWrong)
	assert.Equal(t, 1, session.CurrentIndex)
	assert.Len(t, session.Answers, 1)
	assert.Equal(t, 2, result.QuestionsRemaining)

	tally := session.Adaptive.SkillPerformance["dsa"]
	assert.Equal(t, types.SkillTally{Correct: 1, Total: 1}, tally)
}

func TestAdaptiveDifficulty_EscalationLadder(t *testing.T) {
	session := newTestSession(t, []string{"dsa", "python"}, 5)
	// Force the ladder from the bottom.
	session.Adaptive.CurrentDifficulty = types.DifficultyEasy

	answerAt(t, session, true)
	assert.Equal(t, types.DifficultyEasy, session.Adaptive.CurrentDifficulty)

	answerAt(t, session, true)
	assert.Equal(t, types.DifficultyMedium, session.Adaptive.CurrentDifficulty)

	// Streak keeps growing; two more correct answers reach hard.
	answerAt(t, session, true)
	answerAt(t, session, true)
	assert.Equal(t, types.DifficultyHard, session.Adaptive.CurrentDifficulty)

	// Difficulty never exceeds hard regardless of further correct streaks.
	answerAt(t, session, true)
	answerAt(t, session, true)
	assert.Equal(t, types.DifficultyHard, session.Adaptive.CurrentDifficulty)
}

func TestAdaptiveDifficulty_DeescalationLadder(t *testing.T) {
	session := newTestSession(t, []string{"dsa", "python"}, 5)
	session.Adaptive.CurrentDifficulty = types.DifficultyHard

	answerAt(t, session, false)
	assert.Equal(t, types.DifficultyHard, session.Adaptive.CurrentDifficulty)

	answerAt(t, session, false)
	assert.Equal(t, types.DifficultyMedium, session.Adaptive.CurrentDifficulty)

	answerAt(t, session, false)
	assert.Equal(t, types.DifficultyEasy, session.Adaptive.CurrentDifficulty)

	// Never drops below easy.
	answerAt(t, session, false)
	answerAt(t, session, false)
	assert.Equal(t, types.DifficultyEasy, session.Adaptive.CurrentDifficulty)
}

func TestAdaptiveDifficulty_CorrectResetsWrongStreak(t *testing.T) {
	session := newTestSession(t, []string{"dsa", "python"}, 5)

	answerAt(t, session, false)
	answerAt(t, session, true)
	assert.Equal(t, 0, session.Adaptive.ConsecutiveWrong)
	assert.Equal(t, 1, session.Adaptive.ConsecutiveCorrect)
	assert.Equal(t, types.DifficultyMedium, session.Adaptive.CurrentDifficulty)
}

func TestComplete_SingleSkillMiddleBand(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 5)

	// correct, correct, wrong, wrong, correct -> 3/5 = 60%.
	for _, correct := range []bool{true, true, false, false, true} {
		answerAt(t, session, correct)
	}

	result, err := Complete(session)
	require.NoError(t, err)

	assert.Equal(t, 60.0, result.SkillScores["dsa"])
	// The 50-70% band is neither a strength nor a weakness.
	assert.NotContains(t, result.Strengths, "dsa")
	assert.NotContains(t, result.Weaknesses, "dsa")
	assert.Equal(t, 0.0, result.SkillGapScore)
	assert.Equal(t, 60.0, result.Score)
	assert.Equal(t, types.SessionCompleted, session.Status)
}

func TestComplete_StrengthsAndWeaknesses(t *testing.T) {
	session := newTestSession(t, []string{"dsa", "python"}, 3)

	for range session.Questions {
		question := session.Questions[session.CurrentIndex]
		// All dsa answers correct, all python answers wrong.
		correct := question.Skill == "dsa"
		answerAt(t, session, correct)
	}

	result, err := Complete(session)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.SkillScores["dsa"])
	assert.Equal(t, 0.0, result.SkillScores["python"])
	assert.Equal(t, []string{"dsa"}, result.Strengths)
	assert.Equal(t, []string{"python"}, result.Weaknesses)
	// 1 weak skill of 2 assessed.
	assert.Equal(t, 50.0, result.SkillGapScore)
}

func TestComplete_ZeroAnswers(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)

	result, err := Complete(session)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0.0, result.SkillGapScore)
	assert.Empty(t, result.SkillScores)
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	session := newTestSession(t, []string{"dsa"}, 3)

	_, err := Complete(session)
	require.NoError(t, err)

	_, err = Complete(session)
	assert.ErrorIs(t, err, ErrSessionCompleted)

	_, err = SubmitAnswer(session, session.Questions[0].ID, "x", 1)
	assert.ErrorIs(t, err, ErrSessionCompleted)
}
