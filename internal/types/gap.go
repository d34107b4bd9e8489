package types

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies how unprepared a student is for a missing skill,
// based on how many related skills they already hold.
type Severity string

// Severity levels, ordered critical > moderate > minor.
const (
	SeverityCritical Severity = "critical"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Rank returns the priority rank for a severity (lower sorts first).
// Unknown severities rank as moderate.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 1
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 3
	default:
		return 2
	}
}

// GapAnalysisResult is the output of a single gap analysis invocation.
// It is created once and never mutated afterwards.
type GapAnalysisResult struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	StudentID  string    `json:"student_id"`
	CompanyID  string    `json:"company_id,omitempty"`

	CompanyName string `json:"company_name"`
	TargetRole  string `json:"target_role"`

	MatchingSkills       []string `json:"matching_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`

	PreferredMatching        []string `json:"preferred_matching"`
	PreferredMissing         []string `json:"preferred_missing"`
	PreferredMatchPercentage float64  `json:"preferred_match_percentage"`

	GapSeverity    map[string]Severity `json:"gap_severity"`
	PrioritySkills []string            `json:"priority_skills"`

	Recommendations []string `json:"recommendations"`
	// EstimatedPreparationTime is a human-readable total, e.g. "14 weeks",
	// or "Ready!" when there are no missing skills.
	EstimatedPreparationTime string `json:"estimated_preparation_time"`

	CGPARequirement float64   `json:"cgpa_requirement,omitempty"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}
