package types

import "time"

// VelocityStats tracks how quickly a student works through a skill.
// Resource sessions and coding submissions feed different fields.
type VelocityStats struct {
	Sessions          int     `json:"sessions,omitempty"`
	TotalMinutes      int     `json:"total_minutes,omitempty"`
	Completions       int     `json:"completions,omitempty"`
	ProblemsAttempted int     `json:"problems_attempted,omitempty"`
	ProblemsSolved    int     `json:"problems_solved,omitempty"`
	AvgMinutes        float64 `json:"avg_minutes,omitempty"`
}

// LearningPatterns aggregates study-habit signals for a student.
type LearningPatterns struct {
	// PreferredTime is the time-of-day bucket with the most recent activity:
	// morning, afternoon, evening, or night.
	PreferredTime    string                   `json:"preferred_time,omitempty"`
	SessionDurations []int                    `json:"session_durations,omitempty"`
	ConsistencyScore float64                  `json:"consistency_score"`
	LearningVelocity map[string]VelocityStats `json:"learning_velocity,omitempty"`
}

// PerformanceEntry is one entry in a profile's performance history.
type PerformanceEntry struct {
	Type          string    `json:"type"`
	Category      string    `json:"category,omitempty"`
	InterviewType string    `json:"interview_type,omitempty"`
	Score         float64   `json:"score"`
	Confidence    float64   `json:"confidence,omitempty"`
	Communication float64   `json:"communication,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Strengths     []string  `json:"strengths,omitempty"`
	Weaknesses    []string  `json:"weaknesses,omitempty"`
	Improvements  []string  `json:"improvements,omitempty"`
}

// BehaviorPatterns aggregates behavioral signals. TopicAvoidance and
// StrengthAreas are deduplicated and capped at 10 entries each.
type BehaviorPatterns struct {
	ProcrastinationTendency float64  `json:"procrastination_tendency"`
	InterviewAnxiety        float64  `json:"interview_anxiety"`
	TopicAvoidance          []string `json:"topic_avoidance,omitempty"`
	StrengthAreas           []string `json:"strength_areas,omitempty"`
}

// RiskFactor is one derived risk with a remediation hint.
type RiskFactor struct {
	Factor         string `json:"factor"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// Predictions holds the aggregator's current outcome estimates.
type Predictions struct {
	// SuccessProbability maps employer name to a clamped [0.10, 0.95]
	// probability estimate.
	SuccessProbability map[string]float64 `json:"success_probability,omitempty"`
	RiskFactors        []RiskFactor       `json:"risk_factors,omitempty"`
	Opportunities      []string           `json:"opportunities,omitempty"`
}

// SkillPoint is one observation in a skill's score time series.
type SkillPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Score     float64   `json:"score"`
}

// GitHubStats accumulates GitHub activity signals.
type GitHubStats struct {
	TotalCommits int            `json:"total_commits"`
	Languages    map[string]int `json:"languages,omitempty"`
}

// BehavioralProfile is a student's digital twin: a long-lived rolling
// aggregate of engagement and performance signals. It is owned exclusively
// by the aggregator and mutated only through recorded events.
type BehavioralProfile struct {
	TwinID      string    `json:"twin_id"`
	StudentID   string    `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`

	Learning    LearningPatterns   `json:"learning_patterns"`
	Performance []PerformanceEntry `json:"performance_history,omitempty"`
	// SkillEvolution keeps the most recent 50 points per skill.
	SkillEvolution map[string][]SkillPoint `json:"skill_evolution,omitempty"`
	Behavior       BehaviorPatterns        `json:"behavior_patterns"`
	Predictions    Predictions             `json:"predictions"`
	GitHub         GitHubStats             `json:"github_activity"`

	// Events keeps the most recent 500 event records.
	Events []EventRecord `json:"events,omitempty"`
}

// TwinSummary is a read-only projection of a digital twin's state.
type TwinSummary struct {
	StudentID        string             `json:"student_id"`
	TwinID           string             `json:"twin_id"`
	EventsRecorded   int                `json:"events_recorded"`
	Learning         LearningPatterns   `json:"learning_patterns"`
	Behavior         BehaviorPatterns   `json:"behavior_patterns"`
	SuccessEstimates map[string]float64 `json:"success_predictions,omitempty"`
	RiskFactorCount  int                `json:"risk_factors_count"`
	SkillsTracked    []string           `json:"skills_tracked,omitempty"`
	LastUpdated      time.Time          `json:"last_updated"`
}

// SkillTrend describes the recent trajectory of one tracked skill.
type SkillTrend struct {
	Skill        string    `json:"skill"`
	Trend        string    `json:"trend"`
	RecentScores []float64 `json:"recent_scores"`
}
