package scoring

import (
	"context"
	"fmt"
	"log/slog"
)

// RecalcResult reports the outcome of a full recalculation.
type RecalcResult struct {
	Scanned int
	Updated int
	Skipped int
}

// RecalculateLeaderboardScores reapplies the cumulative score to every
// leaderboard entry and writes back the score only. Entries whose
// totals cannot be scored (zero trials) are skipped with a warning.
func (s *Service) RecalculateLeaderboardScores(ctx context.Context) (RecalcResult, error) {
	var (
		result RecalcResult
		after  string
	)

	for {
		page, err := s.leaderboard.ListPage(ctx, after, s.pageSize)
		if err != nil {
			return result, fmt.Errorf("list leaderboard page: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, e := range page {
			result.Scanned++
			score, err := ComputeScore(e.Stats())
			if err != nil {
				result.Skipped++
				s.log.WarnContext(ctx, "leaderboard entry skipped",
					slog.String("nickname", e.Nickname),
					slog.String("error", err.Error()),
				)
				continue
			}
			if score.Score == e.Score {
				continue
			}
			if err := s.leaderboard.UpdateScore(ctx, e.Nickname, score.Score); err != nil {
				return result, fmt.Errorf("update score %s: %w", e.Nickname, err)
			}
			result.Updated++
		}

		after = page[len(page)-1].Nickname
		if len(page) < s.pageSize {
			break
		}
	}

	s.log.InfoContext(ctx, "leaderboard recalculated",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
