// Package scoring implements the leaderboard score (cumulative), the
// per-round rating, and the leaderboard operations built on them.
package scoring

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

type leaderboardRepo interface {
	EnsureEntry(ctx context.Context, nickname string, at time.Time) error
	GetForUpdate(ctx context.Context, nickname string) (*domain.LeaderboardEntry, error)
	Upsert(ctx context.Context, entry *domain.LeaderboardEntry) error
	List(ctx context.Context, limit int) ([]domain.RankedEntry, error)
	ListPage(ctx context.Context, afterNickname string, limit int) ([]domain.LeaderboardEntry, error)
	UpdateScore(ctx context.Context, nickname string, score int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type timeSource interface {
	Now() time.Time
}

const (
	DefaultTopLimit = 50
	MaxTopLimit     = 500
)

// Service maintains the leaderboard.
type Service struct {
	leaderboard leaderboardRepo
	tx          txManager
	clock       timeSource
	pageSize    int
	log         *slog.Logger
}

// NewService creates a scoring Service. pageSize bounds each page read
// during recalculation.
func NewService(
	log *slog.Logger,
	leaderboard leaderboardRepo,
	tx txManager,
	clock timeSource,
	pageSize int,
) *Service {
	if pageSize <= 0 {
		pageSize = 450
	}
	return &Service{
		leaderboard: leaderboard,
		tx:          tx,
		clock:       clock,
		pageSize:    pageSize,
		log:         log.With("service", "scoring"),
	}
}
