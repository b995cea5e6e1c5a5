// Package progress implements the participant progress repository using
// PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const entity = "progress"

// Repo provides participant progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const progressColumns = `participant_id, nickname, completed_images, total_sessions, last_session_at, created_at`

const createSQL = `
INSERT INTO participants_progress (participant_id, nickname, completed_images, total_sessions, created_at)
VALUES ($1, $2, '{}', 0, $3)
RETURNING ` + progressColumns

const getSQL = `
SELECT ` + progressColumns + `
FROM participants_progress
WHERE participant_id = $1`

// recordSessionSQL unions the session's images into completed_images,
// keeping each file name once.
const recordSessionSQL = `
UPDATE participants_progress
SET completed_images = ARRAY(
        SELECT DISTINCT f
        FROM unnest(completed_images || $2::text[]) AS f
        ORDER BY f
    ),
    total_sessions  = total_sessions + 1,
    last_session_at = $3
WHERE participant_id = $1
RETURNING ` + progressColumns

const deleteBatchSQL = `
DELETE FROM participants_progress
WHERE participant_id IN (
    SELECT participant_id FROM participants_progress LIMIT $1
)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a fresh progress row with no completed images.
// Returns domain.ErrAlreadyExists if the participant is already registered.
func (r *Repo) Create(ctx context.Context, participantID uuid.UUID, nickname string, createdAt time.Time) (*domain.ParticipantProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, createSQL, participantID, nickname, createdAt))
	if err != nil {
		return nil, postgres.MapError(err, entity, participantID.String())
	}
	return p, nil
}

// GetByParticipantID returns the participant's progress.
// Returns domain.ErrNotFound if the participant has never registered.
func (r *Repo) GetByParticipantID(ctx context.Context, participantID uuid.UUID) (*domain.ParticipantProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, getSQL, participantID))
	if err != nil {
		return nil, postgres.MapError(err, entity, participantID.String())
	}
	return p, nil
}

// RecordSession adds images to the completed set, increments the session
// counter and stamps the session time in a single statement.
func (r *Repo) RecordSession(ctx context.Context, participantID uuid.UUID, images []string, at time.Time) (*domain.ParticipantProgress, error) {
	if images == nil {
		images = []string{}
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, recordSessionSQL, participantID, images, at))
	if err != nil {
		return nil, postgres.MapError(err, entity, participantID.String())
	}
	return p, nil
}

// DeleteBatch removes up to limit rows and returns how many were deleted.
func (r *Repo) DeleteBatch(ctx context.Context, limit int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBatchSQL, limit)
	if err != nil {
		return 0, fmt.Errorf("delete progress batch: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanProgress(row pgx.Row) (*domain.ParticipantProgress, error) {
	var p domain.ParticipantProgress
	err := row.Scan(
		&p.ParticipantID,
		&p.Nickname,
		&p.CompletedImages,
		&p.TotalSessions,
		&p.LastSessionAt,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.CompletedImages == nil {
		p.CompletedImages = []string{}
	}
	return &p, nil
}
