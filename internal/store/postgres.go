package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velionx/placement-engine/internal/types"
)

// Postgres is a Store backed by a PostgreSQL connection pool. Entities are
// stored as JSONB payloads keyed by their ids.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Migrate creates the engine's tables if they do not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS gap_analyses (
			id UUID PRIMARY KEY,
			student_id TEXT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assessment_sessions (
			id UUID PRIMARY KEY,
			student_id TEXT NOT NULL,
			content JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assessment_results (
			id UUID PRIMARY KEY,
			student_id TEXT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS behavioral_twins (
			student_id TEXT PRIMARY KEY,
			content JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// SaveAnalysis stores a gap analysis result.
func (p *Postgres) SaveAnalysis(ctx context.Context, result *types.GapAnalysisResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal gap analysis: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO gap_analyses (id, student_id, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET content = $3`,
		result.AnalysisID, result.StudentID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save gap analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves a gap analysis result by id.
func (p *Postgres) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.GapAnalysisResult, error) {
	return getJSON[types.GapAnalysisResult](ctx, p.pool,
		`SELECT content FROM gap_analyses WHERE id = $1`, id)
}

// SaveSession upserts an assessment session.
func (p *Postgres) SaveSession(ctx context.Context, session *types.AssessmentSession) error {
	content, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO assessment_sessions (id, student_id, content, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (id) DO UPDATE SET content = $3, updated_at = NOW()`,
		session.ID, session.StudentID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves an assessment session by id.
func (p *Postgres) GetSession(ctx context.Context, id uuid.UUID) (*types.AssessmentSession, error) {
	return getJSON[types.AssessmentSession](ctx, p.pool,
		`SELECT content FROM assessment_sessions WHERE id = $1`, id)
}

// SaveResult stores an assessment result.
func (p *Postgres) SaveResult(ctx context.Context, result *types.AssessmentResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment result: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO assessment_results (id, student_id, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET content = $3`,
		result.AssessmentID, result.StudentID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment result: %w", err)
	}
	return nil
}

// GetResult retrieves an assessment result by assessment id.
func (p *Postgres) GetResult(ctx context.Context, id uuid.UUID) (*types.AssessmentResult, error) {
	return getJSON[types.AssessmentResult](ctx, p.pool,
		`SELECT content FROM assessment_results WHERE id = $1`, id)
}

// SaveTwin upserts a behavioral profile.
func (p *Postgres) SaveTwin(ctx context.Context, profile *types.BehavioralProfile) error {
	content, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal twin: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO behavioral_twins (student_id, content, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (student_id) DO UPDATE SET content = $2, updated_at = NOW()`,
		profile.StudentID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save twin: %w", err)
	}
	return nil
}

// GetTwin retrieves a behavioral profile by student id.
func (p *Postgres) GetTwin(ctx context.Context, studentID string) (*types.BehavioralProfile, error) {
	return getJSON[types.BehavioralProfile](ctx, p.pool,
		`SELECT content FROM behavioral_twins WHERE student_id = $1`, studentID)
}

// getJSON runs a single-row content query and unmarshals the JSONB payload.
func getJSON[T any](ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (*T, error) {
	var content []byte
	err := pool.QueryRow(ctx, query, args...).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query entity: %w", err)
	}

	var entity T
	if err := json.Unmarshal(content, &entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return &entity, nil
}
