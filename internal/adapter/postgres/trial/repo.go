// Package trial implements the append-only trial log using PostgreSQL.
package trial

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides trial log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trial repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const appendSQL = `
INSERT INTO trials (participant_id, session_id, image_file_name, word, word_type, is_correct, reaction_time_ms, model)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`

const deleteBatchSQL = `
DELETE FROM trials
WHERE id IN (
    SELECT id FROM trials LIMIT $1
)`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one record and fills its ID and CreatedAt.
func (r *Repo) Append(ctx context.Context, rec *domain.TrialRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, appendSQL, appendArgs(rec)...).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "trial", rec.SessionID.String())
	}
	return nil
}

// AppendBatch inserts records in one round trip.
func (r *Repo) AppendBatch(ctx context.Context, recs []domain.TrialRecord) error {
	if len(recs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range recs {
		batch.Queue(appendSQL, appendArgs(&recs[i])...)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	for i := range recs {
		if err := results.QueryRow().Scan(&recs[i].ID, &recs[i].CreatedAt); err != nil {
			return postgres.MapError(err, "trial", recs[i].SessionID.String())
		}
	}
	return nil
}

func appendArgs(rec *domain.TrialRecord) []any {
	return []any{
		rec.ParticipantID,
		rec.SessionID,
		rec.ImageFileName,
		rec.Word,
		string(rec.WordType),
		rec.IsCorrect,
		rec.ReactionTimeMs,
		rec.Model,
	}
}

// DeleteBatch removes up to limit rows and returns how many were deleted.
func (r *Repo) DeleteBatch(ctx context.Context, limit int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBatchSQL, limit)
	if err != nil {
		return 0, fmt.Errorf("delete trial batch: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns records matching filter in ID order. Use filter.AfterID with
// the last returned ID to page through the log.
func (r *Repo) List(ctx context.Context, filter domain.TrialFilter) ([]domain.TrialRecord, error) {
	query := builder.
		Select(
			"id", "participant_id", "session_id", "image_file_name", "word", "word_type",
			"is_correct", "reaction_time_ms", "model", "created_at",
		).
		From("trials").
		OrderBy("id ASC")

	if filter.ParticipantID != nil {
		query = query.Where(squirrel.Eq{"participant_id": *filter.ParticipantID})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}
	if filter.AfterID > 0 {
		query = query.Where(squirrel.Gt{"id": filter.AfterID})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trial query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrialRecord, error) {
		var (
			rec      domain.TrialRecord
			wordType string
		)
		err := row.Scan(
			&rec.ID, &rec.ParticipantID, &rec.SessionID, &rec.ImageFileName, &rec.Word, &wordType,
			&rec.IsCorrect, &rec.ReactionTimeMs, &rec.Model, &rec.CreatedAt,
		)
		rec.WordType = domain.WordType(wordType)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan trials: %w", err)
	}

	return records, nil
}
