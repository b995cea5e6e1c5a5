// Package experiment runs lexical-decision sessions for registered participants.
package experiment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	Create(ctx context.Context, participantID uuid.UUID, nickname string, createdAt time.Time) (*domain.ParticipantProgress, error)
	GetByParticipantID(ctx context.Context, participantID uuid.UUID) (*domain.ParticipantProgress, error)
	RecordSession(ctx context.Context, participantID uuid.UUID, images []string, at time.Time) (*domain.ParticipantProgress, error)
}

type trialLog interface {
	Append(ctx context.Context, rec *domain.TrialRecord) error
	AppendBatch(ctx context.Context, recs []domain.TrialRecord) error
}

type leaderboardUpdater interface {
	UpdateLeaderboard(ctx context.Context, nickname string, stats domain.SessionStats) (*domain.LeaderboardEntry, error)
}

type sessionBuilder interface {
	CreateSession(participantID uuid.UUID, completed map[string]struct{}, isTest bool) (*domain.Session, error)
}

type tokenIssuer interface {
	GenerateAccessToken(subject uuid.UUID, role string) (string, error)
}

type timeSource interface {
	Now() time.Time
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the participant role name and active-session registry bounds.
type Config struct {
	ParticipantRole string
	CacheSize       int
	SessionTTL      time.Duration
}

// Service orchestrates participant registration and session lifecycles.
// Active sessions live in a bounded in-process registry and are evicted
// on completion or after SessionTTL of inactivity.
type Service struct {
	log         *slog.Logger
	progress    progressRepo
	trials      trialLog
	leaderboard leaderboardUpdater
	builder     sessionBuilder
	tokens      tokenIssuer
	clock       timeSource
	role        string

	active *expirable.LRU[uuid.UUID, *activeSession]
}

// activeSession guards a session against concurrent trial submissions.
type activeSession struct {
	mu      sync.Mutex
	session *domain.Session
}

// NewService creates a new experiment service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	trials trialLog,
	leaderboard leaderboardUpdater,
	builder sessionBuilder,
	tokens tokenIssuer,
	clock timeSource,
	cfg Config,
) *Service {
	size := cfg.CacheSize
	if size <= 0 {
		size = 10000
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &Service{
		log:         log.With("service", "experiment"),
		progress:    progress,
		trials:      trials,
		leaderboard: leaderboard,
		builder:     builder,
		tokens:      tokens,
		clock:       clock,
		role:        cfg.ParticipantRole,
		active:      expirable.NewLRU[uuid.UUID, *activeSession](size, nil, ttl),
	}
}

// ActiveSessions returns the number of sessions currently held in memory.
func (s *Service) ActiveSessions() int {
	return s.active.Len()
}

// touch re-adds a to the registry, restarting its expiry. Get alone does not.
func (s *Service) touch(a *activeSession) {
	s.active.Add(a.session.ID, a)
}

// lookup returns the active session owned by participantID.
// Sessions of other participants are reported as not found.
func (s *Service) lookup(participantID, sessionID uuid.UUID) (*activeSession, error) {
	a, ok := s.active.Get(sessionID)
	if !ok || a.session.ParticipantID != participantID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
