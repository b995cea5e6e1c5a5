// Package leaderboard implements the cumulative leaderboard repository using
// PostgreSQL.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const entity = "leaderboard entry"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"nickname", "total_trials", "total_correct", "total_time_ms", "accuracy", "score", "last_update",
}

// Repo provides leaderboard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leaderboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getForUpdateSQL = `
SELECT nickname, total_trials, total_correct, total_time_ms, accuracy, score, last_update
FROM leaderboard
WHERE nickname = $1
FOR UPDATE`

const ensureSQL = `
INSERT INTO leaderboard (nickname, last_update)
VALUES ($1, $2)
ON CONFLICT (nickname) DO NOTHING`

const upsertSQL = `
INSERT INTO leaderboard (nickname, total_trials, total_correct, total_time_ms, accuracy, score, last_update)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (nickname) DO UPDATE SET
    total_trials  = EXCLUDED.total_trials,
    total_correct = EXCLUDED.total_correct,
    total_time_ms = EXCLUDED.total_time_ms,
    accuracy      = EXCLUDED.accuracy,
    score         = EXCLUDED.score,
    last_update   = EXCLUDED.last_update`

const updateScoreSQL = `UPDATE leaderboard SET score = $2 WHERE nickname = $1`

const deleteBatchSQL = `
DELETE FROM leaderboard
WHERE nickname IN (
    SELECT nickname FROM leaderboard LIMIT $1
)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetForUpdate returns the entry for nickname and locks its row until the
// surrounding transaction ends. Outside a transaction the lock is released
// immediately. Returns domain.ErrNotFound if there is no entry.
func (r *Repo) GetForUpdate(ctx context.Context, nickname string) (*domain.LeaderboardEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.LeaderboardEntry
	err := q.QueryRow(ctx, getForUpdateSQL, nickname).Scan(
		&e.Nickname, &e.TotalTrials, &e.TotalCorrect, &e.TotalTimeMs, &e.Accuracy, &e.Score, &e.LastUpdate,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, nickname)
	}
	return &e, nil
}

// List returns the top entries ranked by score. Equal scores share a rank;
// ties are listed by nickname.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.RankedEntry, error) {
	query := builder.
		Select(append([]string{"RANK() OVER (ORDER BY score DESC) AS rank"}, columns...)...).
		From("leaderboard").
		OrderBy("score DESC", "nickname ASC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RankedEntry, error) {
		var e domain.RankedEntry
		err := row.Scan(
			&e.Rank,
			&e.Nickname, &e.TotalTrials, &e.TotalCorrect, &e.TotalTimeMs, &e.Accuracy, &e.Score, &e.LastUpdate,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan leaderboard: %w", err)
	}

	return entries, nil
}

// ListPage returns up to limit entries with nickname greater than
// afterNickname, ordered by nickname. Pass "" for the first page.
func (r *Repo) ListPage(ctx context.Context, afterNickname string, limit int) ([]domain.LeaderboardEntry, error) {
	query := builder.
		Select(columns...).
		From("leaderboard").
		OrderBy("nickname ASC").
		Limit(uint64(limit))
	if afterNickname != "" {
		query = query.Where(squirrel.Gt{"nickname": afterNickname})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard page query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard page: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.Nickname, &e.TotalTrials, &e.TotalCorrect, &e.TotalTimeMs, &e.Accuracy, &e.Score, &e.LastUpdate)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan leaderboard page: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// EnsureEntry inserts an empty entry for nickname unless one exists. Inside a
// transaction a concurrent first insert for the same nickname blocks until the
// other transaction ends, so a following GetForUpdate always finds a row to lock.
func (r *Repo) EnsureEntry(ctx context.Context, nickname string, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureSQL, nickname, at); err != nil {
		return postgres.MapError(err, entity, nickname)
	}
	return nil
}

// Upsert inserts the entry or overwrites every column of the existing row.
// Returns domain.ErrValidation if the totals violate the table check.
func (r *Repo) Upsert(ctx context.Context, e *domain.LeaderboardEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertSQL,
		e.Nickname, e.TotalTrials, e.TotalCorrect, e.TotalTimeMs, e.Accuracy, e.Score, e.LastUpdate,
	)
	if err != nil {
		return postgres.MapError(err, entity, e.Nickname)
	}
	return nil
}

// UpdateScore writes the score column only.
// Returns domain.ErrNotFound if there is no entry.
func (r *Repo) UpdateScore(ctx context.Context, nickname string, score int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateScoreSQL, nickname, score)
	if err != nil {
		return postgres.MapError(err, entity, nickname)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, nickname, domain.ErrNotFound)
	}
	return nil
}

// DeleteBatch removes up to limit rows and returns how many were deleted.
func (r *Repo) DeleteBatch(ctx context.Context, limit int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBatchSQL, limit)
	if err != nil {
		return 0, fmt.Errorf("delete leaderboard batch: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
