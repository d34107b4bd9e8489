// Package twin maintains behavioral profiles ("digital twins") of students.
// Each profile is a rolling aggregate of learning events; recording an event
// folds it into the profile's patterns and refreshes the derived predictions.
package twin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velionx/placement-engine/internal/llm"
	"github.com/velionx/placement-engine/internal/store"
	"github.com/velionx/placement-engine/internal/types"
)

// ErrTwinNotFound is returned when a student has no profile yet. Recording
// any event creates one.
var ErrTwinNotFound = errors.New("digital twin not found")

const (
	// maxEvents caps the append-only event log per profile.
	maxEvents = 500
	// maxSkillHistory caps the score time series kept per skill.
	maxSkillHistory = 50
	// maxBehaviorAreas caps topic avoidance and strength area lists.
	maxBehaviorAreas = 10
	// maxSessionDurations caps the rolling study-session window.
	maxSessionDurations = 30

	// anxietyDecay and anxietyWeight define the rolling average for
	// interview anxiety: new = old*decay + indicator*weight.
	anxietyDecay  = 0.7
	anxietyWeight = 0.3

	// procrastinationStep and procrastinationRecovery move the tendency
	// up when tasks are skipped and down otherwise, clamped to [0, 1].
	procrastinationStep     = 0.1
	procrastinationRecovery = 0.05
)

// Aggregator folds learning events into behavioral profiles and derives
// predictions from them. Profiles are loaded from and saved to the store on
// every recorded event; the aggregator itself is stateless.
type Aggregator struct {
	store     store.TwinStore
	augmenter *llm.Augmenter
	logger    *zap.Logger
	now       func() time.Time
}

// NewAggregator creates an Aggregator. The augmenter may be nil-backed; all
// of its calls degrade to deterministic fallbacks. A nil logger disables
// logging.
func NewAggregator(twinStore store.TwinStore, augmenter *llm.Augmenter, logger *zap.Logger) *Aggregator {
	if augmenter == nil {
		augmenter = llm.NewAugmenter(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		store:     twinStore,
		augmenter: augmenter,
		logger:    logger,
		now:       time.Now,
	}
}

// newProfile creates an empty profile for a student.
func (a *Aggregator) newProfile(studentID string) *types.BehavioralProfile {
	now := a.now()
	return &types.BehavioralProfile{
		TwinID:      "twin_" + studentID,
		StudentID:   studentID,
		CreatedAt:   now,
		LastUpdated: now,
		Learning: types.LearningPatterns{
			LearningVelocity: make(map[string]types.VelocityStats),
		},
		SkillEvolution: make(map[string][]types.SkillPoint),
		Predictions: types.Predictions{
			SuccessProbability: make(map[string]float64),
		},
		GitHub: types.GitHubStats{
			Languages: make(map[string]int),
		},
	}
}

// RecordEvent folds one learning event into the student's profile, creating
// the profile if it does not exist, and persists the updated state.
func (a *Aggregator) RecordEvent(ctx context.Context, studentID string, event types.Event) (*types.EventRecord, error) {
	profile, err := a.store.GetTwin(ctx, studentID)
	if errors.Is(err, store.ErrNotFound) {
		profile = a.newProfile(studentID)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load twin: %w", err)
	}

	record := types.EventRecord{
		ID:        uuid.New(),
		Type:      event.EventType(),
		Timestamp: a.now(),
	}
	profile.Events = append(profile.Events, record)
	if len(profile.Events) > maxEvents {
		profile.Events = profile.Events[len(profile.Events)-maxEvents:]
	}

	a.applyEvent(profile, event)
	a.refreshPatterns(profile)
	a.refreshPredictions(profile)
	profile.LastUpdated = a.now()

	if err := a.store.SaveTwin(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save twin: %w", err)
	}

	a.logger.Debug("recorded twin event",
		zap.String("student_id", studentID),
		zap.String("event_type", string(event.EventType())),
		zap.Int("events_total", len(profile.Events)),
	)
	return &record, nil
}

// applyEvent dispatches an event to its processor.
func (a *Aggregator) applyEvent(profile *types.BehavioralProfile, event types.Event) {
	switch e := event.(type) {
	case types.AssessmentCompleted:
		a.applyAssessment(profile, e)
	case *types.AssessmentCompleted:
		a.applyAssessment(profile, *e)
	case types.InterviewCompleted:
		a.applyInterview(profile, e)
	case *types.InterviewCompleted:
		a.applyInterview(profile, *e)
	case types.CodingSubmission:
		a.applyCoding(profile, e)
	case *types.CodingSubmission:
		a.applyCoding(profile, *e)
	case types.ResourceCompleted:
		a.applyResource(profile, e)
	case *types.ResourceCompleted:
		a.applyResource(profile, *e)
	case types.RoadmapProgress:
		a.applyRoadmap(profile, e)
	case *types.RoadmapProgress:
		a.applyRoadmap(profile, *e)
	case types.GitHubActivityEvent:
		a.applyGitHub(profile, e)
	case *types.GitHubActivityEvent:
		a.applyGitHub(profile, *e)
	}
}

// applyAssessment updates skill evolution, performance history, and the
// avoidance and strength lists from a completed assessment.
func (a *Aggregator) applyAssessment(profile *types.BehavioralProfile, event types.AssessmentCompleted) {
	now := a.now()
	if profile.SkillEvolution == nil {
		profile.SkillEvolution = make(map[string][]types.SkillPoint)
	}
	for skill, score := range event.SkillScores {
		history := append(profile.SkillEvolution[skill], types.SkillPoint{
			Timestamp: now,
			Score:     score,
		})
		if len(history) > maxSkillHistory {
			history = history[len(history)-maxSkillHistory:]
		}
		profile.SkillEvolution[skill] = history
	}

	profile.Performance = append(profile.Performance, types.PerformanceEntry{
		Type:       "assessment",
		Category:   event.Category,
		Score:      event.Score,
		Timestamp:  now,
		Strengths:  event.Strengths,
		Weaknesses: event.Weaknesses,
	})

	profile.Behavior.TopicAvoidance = mergeCapped(profile.Behavior.TopicAvoidance, event.Weaknesses, maxBehaviorAreas)
	profile.Behavior.StrengthAreas = mergeCapped(profile.Behavior.StrengthAreas, event.Strengths, maxBehaviorAreas)
}

// applyInterview folds interview feedback into the anxiety rolling average
// and the performance history. Low confidence reads as high anxiety.
func (a *Aggregator) applyInterview(profile *types.BehavioralProfile, event types.InterviewCompleted) {
	anxietyIndicator := 10 - event.ConfidenceScore
	profile.Behavior.InterviewAnxiety = profile.Behavior.InterviewAnxiety*anxietyDecay + anxietyIndicator*anxietyWeight

	profile.Performance = append(profile.Performance, types.PerformanceEntry{
		Type:          "interview",
		InterviewType: event.InterviewType,
		Score:         event.OverallScore,
		Confidence:    event.ConfidenceScore,
		Communication: event.CommunicationScore,
		Timestamp:     a.now(),
		Improvements:  event.Improvements,
	})
}

// applyCoding updates the dsa velocity stats from a coding submission.
func (a *Aggregator) applyCoding(profile *types.BehavioralProfile, event types.CodingSubmission) {
	if profile.Learning.LearningVelocity == nil {
		profile.Learning.LearningVelocity = make(map[string]types.VelocityStats)
	}
	stats := profile.Learning.LearningVelocity["dsa"]
	stats.ProblemsAttempted++
	if event.Solved {
		stats.ProblemsSolved++
	}
	if event.TimeMinutes > 0 {
		total := stats.AvgMinutes * float64(stats.ProblemsAttempted-1)
		stats.AvgMinutes = (total + event.TimeMinutes) / float64(stats.ProblemsAttempted)
	}
	profile.Learning.LearningVelocity["dsa"] = stats
}

// applyResource updates session durations and per-skill velocity from a
// finished learning resource.
func (a *Aggregator) applyResource(profile *types.BehavioralProfile, event types.ResourceCompleted) {
	profile.Learning.SessionDurations = append(profile.Learning.SessionDurations, event.DurationMinutes)
	if len(profile.Learning.SessionDurations) > maxSessionDurations {
		profile.Learning.SessionDurations = profile.Learning.SessionDurations[len(profile.Learning.SessionDurations)-maxSessionDurations:]
	}

	if profile.Learning.LearningVelocity == nil {
		profile.Learning.LearningVelocity = make(map[string]types.VelocityStats)
	}
	stats := profile.Learning.LearningVelocity[event.Skill]
	stats.Sessions++
	stats.TotalMinutes += event.DurationMinutes
	if event.CompletionStatus == "completed" {
		stats.Completions++
	}
	profile.Learning.LearningVelocity[event.Skill] = stats
}

// applyRoadmap nudges the procrastination tendency up when more tasks were
// skipped than completed, down otherwise.
func (a *Aggregator) applyRoadmap(profile *types.BehavioralProfile, event types.RoadmapProgress) {
	tendency := profile.Behavior.ProcrastinationTendency
	if event.TasksSkipped > event.TasksCompleted {
		tendency += procrastinationStep
		if tendency > 1.0 {
			tendency = 1.0
		}
	} else {
		tendency -= procrastinationRecovery
		if tendency < 0.0 {
			tendency = 0.0
		}
	}
	profile.Behavior.ProcrastinationTendency = tendency
}

// applyGitHub accumulates commit and language counts.
func (a *Aggregator) applyGitHub(profile *types.BehavioralProfile, event types.GitHubActivityEvent) {
	profile.GitHub.TotalCommits += event.Commits
	if profile.GitHub.Languages == nil {
		profile.GitHub.Languages = make(map[string]int)
	}
	for _, lang := range event.Languages {
		profile.GitHub.Languages[lang]++
	}
}

// Profile returns the full behavioral profile for a student.
func (a *Aggregator) Profile(ctx context.Context, studentID string) (*types.BehavioralProfile, error) {
	profile, err := a.store.GetTwin(ctx, studentID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTwinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load twin: %w", err)
	}
	return profile, nil
}

// Summary returns a read-only projection of the twin's state.
func (a *Aggregator) Summary(ctx context.Context, studentID string) (*types.TwinSummary, error) {
	profile, err := a.Profile(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &types.TwinSummary{
		StudentID:        profile.StudentID,
		TwinID:           profile.TwinID,
		EventsRecorded:   len(profile.Events),
		Learning:         profile.Learning,
		Behavior:         profile.Behavior,
		SuccessEstimates: profile.Predictions.SuccessProbability,
		RiskFactorCount:  len(profile.Predictions.RiskFactors),
		SkillsTracked:    trackedSkills(profile),
		LastUpdated:      profile.LastUpdated,
	}, nil
}

// mergeCapped appends new entries not already present, preserving insertion
// order, and keeps at most limit entries.
func mergeCapped(existing, additions []string, limit int) []string {
	seen := make(map[string]bool, len(existing))
	for _, entry := range existing {
		seen[entry] = true
	}
	for _, entry := range additions {
		if seen[entry] {
			continue
		}
		seen[entry] = true
		existing = append(existing, entry)
	}
	if len(existing) > limit {
		existing = existing[:limit]
	}
	return existing
}
