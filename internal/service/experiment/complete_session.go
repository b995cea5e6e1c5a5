package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
	"github.com/heartmarshall/lexical-decision/internal/service/scoring"
	"github.com/heartmarshall/lexical-decision/pkg/ctxutil"
)

// CompletionResult summarizes a finished session.
type CompletionResult struct {
	SessionID uuid.UUID
	Stats     domain.SessionStats
	// Score is the session-only rating.
	Score  scoring.Score
	Rating scoring.Rating
	// Leaderboard is nil for test sessions and when PersistenceDelayed is set.
	Leaderboard        *domain.LeaderboardEntry
	Progress           *domain.ParticipantProgress
	PersistenceDelayed bool
}

// CompleteSession closes a fully answered session. For non-test sessions the
// images are folded into the participant's progress and the stats into the
// leaderboard. A failed leaderboard update does not fail the call: the
// locally computed score is returned with PersistenceDelayed set.
func (s *Service) CompleteSession(ctx context.Context, sessionID uuid.UUID) (*CompletionResult, error) {
	participantID, ok := ctxutil.ParticipantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.lookup(participantID, sessionID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	sess := a.session

	if sess.Completed {
		return nil, fmt.Errorf("session already completed: %w", domain.ErrConflict)
	}
	if !sess.Finished() {
		return nil, fmt.Errorf("%d trials unanswered: %w", sess.Remaining(), domain.ErrConflict)
	}

	now := s.clock.Now()
	elapsed := now.Sub(sess.StartedAt).Milliseconds()
	if elapsed < 1 {
		elapsed = 1 // wall clock stepped backwards
	}
	stats := domain.SessionStats{
		TotalTrials:  len(sess.Trials),
		TotalCorrect: sess.CorrectCount,
		TotalTimeMs:  elapsed,
	}

	score, err := scoring.ComputeScore(stats)
	if err != nil {
		return nil, fmt.Errorf("compute score: %w", err)
	}

	result := &CompletionResult{
		SessionID: sess.ID,
		Stats:     stats,
		Score:     score,
	}

	if sess.IsTest {
		result.Progress, err = s.progress.GetByParticipantID(ctx, participantID)
		if err != nil {
			return nil, fmt.Errorf("get progress: %w", err)
		}
	} else {
		result.Progress, err = s.progress.RecordSession(ctx, participantID, sess.ImageIDs, now)
		if err != nil {
			return nil, fmt.Errorf("record session: %w", err)
		}

		entry, lbErr := s.leaderboard.UpdateLeaderboard(ctx, result.Progress.Nickname, stats)
		if lbErr != nil {
			result.PersistenceDelayed = true
			s.log.WarnContext(ctx, "leaderboard update failed, returning local score",
				slog.String("participant_id", participantID.String()),
				slog.String("session_id", sess.ID.String()),
				slog.String("error", lbErr.Error()),
			)
		} else {
			result.Leaderboard = entry
		}
	}

	rounds := scoring.RoundsCompleted(result.Progress.CompletedImages)
	result.Rating, err = scoring.RoundRating(stats.TotalTrials, stats.TotalCorrect, stats.TotalTimeMs, rounds)
	if err != nil {
		return nil, fmt.Errorf("round rating: %w", err)
	}

	sess.Completed = true
	s.active.Remove(sess.ID)

	s.log.InfoContext(ctx, "session completed",
		slog.String("participant_id", participantID.String()),
		slog.String("session_id", sess.ID.String()),
		slog.Int("trials", stats.TotalTrials),
		slog.Int("correct", stats.TotalCorrect),
		slog.Int("score", score.Score),
		slog.Int("final_score", result.Rating.FinalScore),
		slog.Bool("is_test", sess.IsTest),
	)

	return result, nil
}
