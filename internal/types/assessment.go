package types

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is an adaptive question difficulty level.
// Levels form a total order: easy < medium < hard.
type Difficulty string

// Supported difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Escalate returns the next harder difficulty, saturating at hard.
func (d Difficulty) Escalate() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// Deescalate returns the next easier difficulty, saturating at easy.
func (d Difficulty) Deescalate() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return DifficultyEasy
	}
}

// Question is a single multiple-choice entry in the question bank.
type Question struct {
	ID          string     `json:"id"`
	Text        string     `json:"question"`
	Options     []string   `json:"options"`
	Correct     string     `json:"correct"`
	Explanation string     `json:"explanation"`
	Skill       string     `json:"skill"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
}

// SessionStatus is the lifecycle state of an assessment session.
type SessionStatus string

// Session lifecycle states.
const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// SkillTally tracks per-skill answer counts within a session.
type SkillTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AdaptiveState holds the difficulty controller state for a session.
// Correct answers reset the wrong streak and vice versa, so at most one
// streak can reach the escalation threshold in any given step.
type AdaptiveState struct {
	CurrentDifficulty  Difficulty            `json:"current_difficulty"`
	ConsecutiveCorrect int                   `json:"consecutive_correct"`
	ConsecutiveWrong   int                   `json:"consecutive_wrong"`
	SkillPerformance   map[string]SkillTally `json:"skill_performance"`
}

// AnswerRecord is one immutable entry in a session's answer log.
type AnswerRecord struct {
	QuestionID       string     `json:"question_id"`
	GivenAnswer      string     `json:"given_answer"`
	CorrectAnswer    string     `json:"correct_answer"`
	IsCorrect        bool       `json:"is_correct"`
	TimeTakenSeconds int        `json:"time_taken"`
	Skill            string     `json:"skill"`
	Difficulty       Difficulty `json:"difficulty"`
}

// AssessmentSession is a mutable adaptive assessment in progress.
// The question list is fixed at creation; each submitted answer appends to
// the answer log, updates the adaptive state, and advances the cursor.
type AssessmentSession struct {
	ID           uuid.UUID      `json:"assessment_id"`
	StudentID    string         `json:"student_id"`
	Category     string         `json:"category"`
	Questions    []Question     `json:"questions"`
	CurrentIndex int            `json:"current_index"`
	Answers      []AnswerRecord `json:"answers"`
	Adaptive     AdaptiveState  `json:"adaptive_state"`
	StartedAt    time.Time      `json:"started_at"`
	Status       SessionStatus  `json:"status"`
}

// Remaining returns the number of questions not yet answered.
func (s *AssessmentSession) Remaining() int {
	return len(s.Questions) - s.CurrentIndex
}

// SubmitResult is the immediate feedback returned for a submitted answer.
type SubmitResult struct {
	IsCorrect          bool       `json:"is_correct"`
	CorrectAnswer      string     `json:"correct_answer"`
	Explanation        string     `json:"explanation"`
	NewDifficulty      Difficulty `json:"new_difficulty"`
	QuestionsRemaining int        `json:"questions_remaining"`
}

// AssessmentResult is the read-only outcome of a completed session.
type AssessmentResult struct {
	AssessmentID   uuid.UUID          `json:"assessment_id"`
	StudentID      string             `json:"student_id"`
	Category       string             `json:"category"`
	TotalQuestions int                `json:"total_questions"`
	CorrectAnswers int                `json:"correct_answers"`
	Score          float64            `json:"score"`
	SkillScores    map[string]float64 `json:"skill_scores"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	SkillGapScore  float64            `json:"skill_gap_score"`
	Feedback       string             `json:"feedback,omitempty"`
	// FeedbackFallback is true when Feedback is the deterministic default
	// rather than generated prose.
	FeedbackFallback bool      `json:"feedback_fallback,omitempty"`
	CompletedAt      time.Time `json:"completed_at"`
}
