package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velionx/placement-engine/internal/types"
)

func TestMemory_GapAnalysisRoundtrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	result := &types.GapAnalysisResult{
		AnalysisID:           uuid.New(),
		StudentID:            "student-1",
		CompanyName:          "Google",
		SkillMatchPercentage: 42.5,
	}
	require.NoError(t, m.SaveAnalysis(ctx, result))

	got, err := m.GetAnalysis(ctx, result.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestMemory_GetAnalysis_NotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.GetAnalysis(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SessionRoundtrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	session := &types.AssessmentSession{
		ID:        uuid.New(),
		StudentID: "student-1",
		Status:    types.SessionInProgress,
	}
	require.NoError(t, m.SaveSession(ctx, session))

	got, err := m.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = m.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ResultRoundtrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	result := &types.AssessmentResult{
		AssessmentID: uuid.New(),
		StudentID:    "student-1",
		Score:        60.0,
	}
	require.NoError(t, m.SaveResult(ctx, result))

	got, err := m.GetResult(ctx, result.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestMemory_TwinRoundtrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	twin := &types.BehavioralProfile{
		TwinID:    "twin_student-1",
		StudentID: "student-1",
	}
	require.NoError(t, m.SaveTwin(ctx, twin))

	got, err := m.GetTwin(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, twin, got)

	_, err = m.GetTwin(ctx, "stranger")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SaveTwin_Overwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := &types.BehavioralProfile{StudentID: "s", TwinID: "twin_s"}
	require.NoError(t, m.SaveTwin(ctx, first))

	second := &types.BehavioralProfile{StudentID: "s", TwinID: "twin_s"}
	second.Behavior.InterviewAnxiety = 3.5
	require.NoError(t, m.SaveTwin(ctx, second))

	got, err := m.GetTwin(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.Behavior.InterviewAnxiety)
}
