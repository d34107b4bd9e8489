package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/velionx/placement-engine/internal/types"
)

// Memory is an in-process Store backed by maps. The mutex makes the tables
// themselves safe for concurrent access; entity-level ownership still
// follows the single-writer-per-key discipline documented on Store.
type Memory struct {
	mu       sync.Mutex
	analyses map[uuid.UUID]*types.GapAnalysisResult
	sessions map[uuid.UUID]*types.AssessmentSession
	results  map[uuid.UUID]*types.AssessmentResult
	twins    map[string]*types.BehavioralProfile
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		analyses: make(map[uuid.UUID]*types.GapAnalysisResult),
		sessions: make(map[uuid.UUID]*types.AssessmentSession),
		results:  make(map[uuid.UUID]*types.AssessmentResult),
		twins:    make(map[string]*types.BehavioralProfile),
	}
}

// SaveAnalysis stores a gap analysis result keyed by its analysis id.
func (m *Memory) SaveAnalysis(_ context.Context, result *types.GapAnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[result.AnalysisID] = result
	return nil
}

// GetAnalysis retrieves a gap analysis result by id.
func (m *Memory) GetAnalysis(_ context.Context, id uuid.UUID) (*types.GapAnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.analyses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

// SaveSession stores an assessment session keyed by its id.
func (m *Memory) SaveSession(_ context.Context, session *types.AssessmentSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

// GetSession retrieves an assessment session by id.
func (m *Memory) GetSession(_ context.Context, id uuid.UUID) (*types.AssessmentSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// SaveResult stores an assessment result keyed by its assessment id.
func (m *Memory) SaveResult(_ context.Context, result *types.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.AssessmentID] = result
	return nil
}

// GetResult retrieves an assessment result by assessment id.
func (m *Memory) GetResult(_ context.Context, id uuid.UUID) (*types.AssessmentResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.results[id]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

// SaveTwin stores a behavioral profile keyed by student id.
func (m *Memory) SaveTwin(_ context.Context, profile *types.BehavioralProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.twins[profile.StudentID] = profile
	return nil
}

// GetTwin retrieves a behavioral profile by student id.
func (m *Memory) GetTwin(_ context.Context, studentID string) (*types.BehavioralProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	twin, ok := m.twins[studentID]
	if !ok {
		return nil, ErrNotFound
	}
	return twin, nil
}
