package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantProgress tracks which images a participant has already seen.
type ParticipantProgress struct {
	ParticipantID   uuid.UUID
	Nickname        string
	CompletedImages []string
	TotalSessions   int
	LastSessionAt   *time.Time
	CreatedAt       time.Time
}

// CompletedSet returns CompletedImages as a set.
func (p *ParticipantProgress) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.CompletedImages))
	for _, f := range p.CompletedImages {
		set[f] = struct{}{}
	}
	return set
}

// LeaderboardEntry is the cumulative aggregate for a nickname. Score is
// always derived from the totals.
type LeaderboardEntry struct {
	Nickname     string
	TotalTrials  int
	TotalCorrect int
	TotalTimeMs  int64
	Accuracy     float64
	Score        int
	LastUpdate   time.Time
}

// Stats returns the cumulative totals as SessionStats.
func (e *LeaderboardEntry) Stats() SessionStats {
	return SessionStats{
		TotalTrials:  e.TotalTrials,
		TotalCorrect: e.TotalCorrect,
		TotalTimeMs:  e.TotalTimeMs,
	}
}

// RankedEntry is a leaderboard entry with its 1-based position.
type RankedEntry struct {
	Rank int
	LeaderboardEntry
}

// TrialRecord is one row of the append-only trial log.
type TrialRecord struct {
	ID             int64
	ParticipantID  uuid.UUID
	SessionID      uuid.UUID
	ImageFileName  string
	Word           string
	WordType       WordType
	IsCorrect      bool
	ReactionTimeMs int
	Model          string
	CreatedAt      time.Time
}

// TrialFilter narrows a trial-log export.
type TrialFilter struct {
	ParticipantID *uuid.UUID
	Since         *time.Time
	Limit         int
	AfterID       int64
}
