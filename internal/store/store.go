// Package store provides repository abstractions for the engine's
// entities, with in-memory and PostgreSQL implementations.
//
// Stores guard their own tables, but per-entity mutual exclusion is the
// caller's responsibility: each assessment session and behavioral profile
// must have exactly one logical owner mutating it at a time.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/velionx/placement-engine/internal/types"
)

// ErrNotFound is returned when an entity is absent. Surfaced to the
// caller, never retried.
var ErrNotFound = errors.New("entity not found")

// GapStore persists gap analysis results.
type GapStore interface {
	SaveAnalysis(ctx context.Context, result *types.GapAnalysisResult) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.GapAnalysisResult, error)
}

// AssessmentStore persists assessment sessions and their results.
type AssessmentStore interface {
	SaveSession(ctx context.Context, session *types.AssessmentSession) error
	GetSession(ctx context.Context, id uuid.UUID) (*types.AssessmentSession, error)
	SaveResult(ctx context.Context, result *types.AssessmentResult) error
	GetResult(ctx context.Context, id uuid.UUID) (*types.AssessmentResult, error)
}

// TwinStore persists behavioral profiles keyed by student id.
type TwinStore interface {
	SaveTwin(ctx context.Context, profile *types.BehavioralProfile) error
	GetTwin(ctx context.Context, studentID string) (*types.BehavioralProfile, error)
}

// Store is the full repository surface.
type Store interface {
	GapStore
	AssessmentStore
	TwinStore
}
