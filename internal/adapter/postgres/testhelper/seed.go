package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueNickname returns prefix with a random suffix.
func UniqueNickname(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedProgress inserts a participant progress row with the given completed images.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, completed ...string) domain.ParticipantProgress {
	t.Helper()

	if completed == nil {
		completed = []string{}
	}
	p := domain.ParticipantProgress{
		ParticipantID:   uuid.New(),
		Nickname:        UniqueNickname("participant"),
		CompletedImages: completed,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO participants_progress (participant_id, nickname, completed_images, total_sessions, created_at)
		 VALUES ($1, $2, $3, 0, $4)`,
		p.ParticipantID, p.Nickname, p.CompletedImages, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress: %v", err)
	}

	return p
}

// SeedLeaderboardEntry inserts a leaderboard row as given. Score and accuracy
// are stored verbatim.
func SeedLeaderboardEntry(t *testing.T, pool *pgxpool.Pool, e domain.LeaderboardEntry) domain.LeaderboardEntry {
	t.Helper()

	if e.Nickname == "" {
		e.Nickname = UniqueNickname("player")
	}
	if e.LastUpdate.IsZero() {
		e.LastUpdate = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO leaderboard (nickname, total_trials, total_correct, total_time_ms, accuracy, score, last_update)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.Nickname, e.TotalTrials, e.TotalCorrect, e.TotalTimeMs, e.Accuracy, e.Score, e.LastUpdate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLeaderboardEntry: %v", err)
	}

	return e
}

// SeedTrials inserts n trial records for a participant and session.
func SeedTrials(t *testing.T, pool *pgxpool.Pool, participantID, sessionID uuid.UUID, n int) {
	t.Helper()

	for i := range n {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO trials (participant_id, session_id, image_file_name, word, word_type, is_correct, reaction_time_ms, model)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			participantID, sessionID, "1.png", "красивый", string(domain.WordTypeFactor), i%2 == 0, 500+i, "sdxl",
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTrials: %v", err)
		}
	}
}
