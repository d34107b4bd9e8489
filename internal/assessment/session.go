package assessment

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/velionx/placement-engine/internal/types"
)

// Errors surfaced to callers. Neither is retried by the controller.
var (
	// ErrQuestionNotFound means the question id is absent from the
	// session's fixed pool.
	ErrQuestionNotFound = errors.New("question not found in session")
	// ErrSessionCompleted means the session is terminal and accepts no
	// further operations.
	ErrSessionCompleted = errors.New("assessment session already completed")
)

const (
	// startingDifficulty is the difficulty every session opens at.
	startingDifficulty = types.DifficultyMedium
	// streakThreshold is the consecutive-answer count that triggers a
	// difficulty transition.
	streakThreshold = 2

	strengthCutoff = 70.0
	weaknessCutoff = 50.0
)

// NewSession creates an adaptive assessment session. Questions are sampled
// per skill at the starting difficulty, topping up from the other
// difficulties when the pool is thin, then shuffled. The question list is
// fixed for the session's lifetime. A nil rng uses a time-seeded source.
func NewSession(studentID, category string, skills []string, questionsPerSkill int, bank *Bank, rng *rand.Rand) *types.AssessmentSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := make([]types.Question, 0, len(skills)*questionsPerSkill)
	for _, skill := range skills {
		sampled := bank.Questions(category, skill, startingDifficulty, questionsPerSkill, rng)
		if len(sampled) < questionsPerSkill {
			for _, difficulty := range []types.Difficulty{types.DifficultyEasy, types.DifficultyHard} {
				more := bank.Questions(category, skill, difficulty, questionsPerSkill-len(sampled), rng)
				sampled = append(sampled, more...)
			}
		}
		questions = append(questions, sampled...)
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return &types.AssessmentSession{
		ID:        uuid.New(),
		StudentID: studentID,
		Category:  category,
		Questions: questions,
		Answers:   make([]types.AnswerRecord, 0, len(questions)),
		Adaptive: types.AdaptiveState{
			CurrentDifficulty: startingDifficulty,
			SkillPerformance:  make(map[string]types.SkillTally),
		},
		StartedAt: time.Now().UTC(),
		Status:    types.SessionInProgress,
	}
}

// SubmitAnswer checks an answer against the session's fixed question pool,
// updates streak counters and per-skill tallies, recomputes difficulty,
// appends an immutable answer record, and advances the cursor. Answer
// comparison is exact string equality, case-sensitive by design.
func SubmitAnswer(session *types.AssessmentSession, questionID, answer string, timeTakenSeconds int) (*types.SubmitResult, error) {
	if session.Status == types.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	var question *types.Question
	for i := range session.Questions {
		if session.Questions[i].ID == questionID {
			question = &session.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	isCorrect := answer == question.Correct

	state := &session.Adaptive
	if isCorrect {
		state.ConsecutiveCorrect++
		state.ConsecutiveWrong = 0
	} else {
		state.ConsecutiveWrong++
		state.ConsecutiveCorrect = 0
	}

	tally := state.SkillPerformance[question.Skill]
	tally.Total++
	if isCorrect {
		tally.Correct++
	}
	state.SkillPerformance[question.Skill] = tally

	state.CurrentDifficulty = nextDifficulty(state.CurrentDifficulty, state.ConsecutiveCorrect, state.ConsecutiveWrong)

	session.Answers = append(session.Answers, types.AnswerRecord{
		QuestionID:       questionID,
		GivenAnswer:      answer,
		CorrectAnswer:    question.Correct,
		IsCorrect:        isCorrect,
		TimeTakenSeconds: timeTakenSeconds,
		Skill:            question.Skill,
		Difficulty:       question.Difficulty,
	})
	session.CurrentIndex++

	return &types.SubmitResult{
		IsCorrect:          isCorrect,
		CorrectAnswer:      question.Correct,
		Explanation:        question.Explanation,
		NewDifficulty:      state.CurrentDifficulty,
		QuestionsRemaining: session.Remaining(),
	}, nil
}

// nextDifficulty applies the adaptive transition rule. Escalation and
// de-escalation are mutually exclusive per step: an answer resets the
// opposing streak, so only one threshold can hold at a time.
func nextDifficulty(current types.Difficulty, consecutiveCorrect, consecutiveWrong int) types.Difficulty {
	if consecutiveCorrect >= streakThreshold && current != types.DifficultyHard {
		return current.Escalate()
	}
	if consecutiveWrong >= streakThreshold && current != types.DifficultyEasy {
		return current.Deescalate()
	}
	return current
}

// Complete finalizes a session and derives its result: per-skill percentage
// scores, strengths (>= 70%), weaknesses (< 50%; the 50-70 band is
// neither), and the skill gap score. A session with zero answered questions
// yields a 0 overall score, not an error.
func Complete(session *types.AssessmentSession) (*types.AssessmentResult, error) {
	if session.Status == types.SessionCompleted {
		return nil, ErrSessionCompleted
	}
	session.Status = types.SessionCompleted

	total := len(session.Answers)
	correct := 0
	for _, a := range session.Answers {
		if a.IsCorrect {
			correct++
		}
	}

	skillScores := make(map[string]float64, len(session.Adaptive.SkillPerformance))
	strengths := make([]string, 0)
	weaknesses := make([]string, 0)
	for skill, tally := range session.Adaptive.SkillPerformance {
		if tally.Total == 0 {
			continue
		}
		score := round2(float64(tally.Correct) / float64(tally.Total) * 100)
		skillScores[skill] = score
		if score >= strengthCutoff {
			strengths = append(strengths, skill)
		} else if score < weaknessCutoff {
			weaknesses = append(weaknesses, skill)
		}
	}

	sort.Strings(strengths)
	sort.Strings(weaknesses)

	overall := 0.0
	if total > 0 {
		overall = round2(float64(correct) / float64(total) * 100)
	}

	skillGapScore := 0.0
	if len(skillScores) > 0 {
		skillGapScore = round2(float64(len(weaknesses)) / float64(len(skillScores)) * 100)
	}

	return &types.AssessmentResult{
		AssessmentID:   session.ID,
		StudentID:      session.StudentID,
		Category:       session.Category,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Score:          overall,
		SkillScores:    skillScores,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		SkillGapScore:  skillGapScore,
		CompletedAt:    time.Now().UTC(),
	}, nil
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
