package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// UpdateLeaderboard folds one session's stats into the nickname's cumulative
// entry and recomputes accuracy and score from the new totals. The entry is
// created if missing, then locked, read and rewritten in one transaction.
func (s *Service) UpdateLeaderboard(ctx context.Context, nickname string, stats domain.SessionStats) (*domain.LeaderboardEntry, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, domain.NewValidationError("nickname", "required")
	}
	if _, err := ComputeScore(stats); err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	now := s.clock.Now()

	var entry *domain.LeaderboardEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.leaderboard.EnsureEntry(txCtx, nickname, now); err != nil {
			return fmt.Errorf("ensure leaderboard entry: %w", err)
		}

		current, err := s.leaderboard.GetForUpdate(txCtx, nickname)
		if err != nil {
			return fmt.Errorf("get leaderboard entry: %w", err)
		}

		next, err := accumulate(current, stats)
		if err != nil {
			return err
		}
		next.LastUpdate = now

		if err := s.leaderboard.Upsert(txCtx, next); err != nil {
			return fmt.Errorf("upsert leaderboard entry: %w", err)
		}
		entry = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "leaderboard updated",
		slog.String("nickname", nickname),
		slog.Int("total_trials", entry.TotalTrials),
		slog.Int("score", entry.Score),
	)

	return entry, nil
}

// accumulate sums stats into entry and recomputes the derived fields.
func accumulate(entry *domain.LeaderboardEntry, stats domain.SessionStats) (*domain.LeaderboardEntry, error) {
	next := *entry
	next.TotalTrials += stats.TotalTrials
	next.TotalCorrect += stats.TotalCorrect
	next.TotalTimeMs += stats.TotalTimeMs

	score, err := ComputeScore(next.Stats())
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", next.Nickname, err)
	}
	next.Accuracy = score.Accuracy
	next.Score = score.Score
	return &next, nil
}
