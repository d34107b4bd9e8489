package types

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of learning event fed into the behavioral
// aggregator.
type EventType string

// Event types accepted by the aggregator.
const (
	EventAssessmentCompleted EventType = "assessment_completed"
	EventInterviewCompleted  EventType = "interview_completed"
	EventCodingSubmission    EventType = "coding_submission"
	EventResourceCompleted   EventType = "resource_completed"
	EventRoadmapProgress     EventType = "roadmap_progress"
	EventGitHubActivity      EventType = "github_activity"
)

// Event is a typed learning event. Each concrete event mutates its own slice
// of the behavioral profile when recorded.
type Event interface {
	EventType() EventType
}

// AssessmentCompleted reports the outcome of a finished assessment session.
type AssessmentCompleted struct {
	Category    string             `json:"category"`
	Score       float64            `json:"score"`
	SkillScores map[string]float64 `json:"skill_scores"`
	Strengths   []string           `json:"strengths"`
	Weaknesses  []string           `json:"weaknesses"`
}

// EventType implements Event.
func (AssessmentCompleted) EventType() EventType { return EventAssessmentCompleted }

// InterviewCompleted reports the feedback from a finished mock interview.
type InterviewCompleted struct {
	InterviewType      string   `json:"interview_type"`
	OverallScore       float64  `json:"overall_score"`
	ConfidenceScore    float64  `json:"confidence_score"`
	CommunicationScore float64  `json:"communication_score"`
	Improvements       []string `json:"improvements"`
}

// EventType implements Event.
func (InterviewCompleted) EventType() EventType { return EventInterviewCompleted }

// CodingSubmission reports an attempted coding problem.
type CodingSubmission struct {
	ProblemType string     `json:"problem_type"`
	Difficulty  Difficulty `json:"difficulty"`
	Solved      bool       `json:"solved"`
	TimeMinutes float64    `json:"time_minutes"`
}

// EventType implements Event.
func (CodingSubmission) EventType() EventType { return EventCodingSubmission }

// ResourceCompleted reports a finished (or abandoned) learning resource.
type ResourceCompleted struct {
	Skill            string `json:"skill"`
	DurationMinutes  int    `json:"duration_minutes"`
	CompletionStatus string `json:"completion_status"`
}

// EventType implements Event.
func (ResourceCompleted) EventType() EventType { return EventResourceCompleted }

// RoadmapProgress reports progress on a learning roadmap.
type RoadmapProgress struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	TasksCompleted     int     `json:"tasks_completed"`
	TasksSkipped       int     `json:"tasks_skipped"`
}

// EventType implements Event.
func (RoadmapProgress) EventType() EventType { return EventRoadmapProgress }

// GitHubActivityEvent reports recent GitHub activity.
type GitHubActivityEvent struct {
	Commits   int      `json:"commits"`
	Languages []string `json:"languages"`
}

// EventType implements Event.
func (GitHubActivityEvent) EventType() EventType { return EventGitHubActivity }

// EventRecord is an entry in a profile's append-only event log.
type EventRecord struct {
	ID        uuid.UUID `json:"event_id"`
	Type      EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}
