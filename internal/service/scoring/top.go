package scoring

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// Top returns the highest-ranked leaderboard entries. A non-positive limit
// selects DefaultTopLimit; limits above MaxTopLimit are clamped.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.RankedEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultTopLimit
	case limit > MaxTopLimit:
		limit = MaxTopLimit
	}

	entries, err := s.leaderboard.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}
