package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
	"github.com/heartmarshall/lexical-decision/pkg/ctxutil"
)

// StartSession assembles a new session from the images the participant has
// not yet completed and registers it as active.
func (s *Service) StartSession(ctx context.Context, isTest bool) (*domain.Session, error) {
	participantID, ok := ctxutil.ParticipantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	progress, err := s.progress.GetByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	sess, err := s.builder.CreateSession(participantID, progress.CompletedSet(), isTest)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	sess.StartedAt = s.clock.Now()

	s.active.Add(sess.ID, &activeSession{session: sess})

	s.log.InfoContext(ctx, "session started",
		slog.String("participant_id", participantID.String()),
		slog.String("session_id", sess.ID.String()),
		slog.Int("images", len(sess.ImageIDs)),
		slog.Int("trials", len(sess.Trials)),
		slog.Bool("is_test", isTest),
	)

	return snapshot(sess), nil
}

// GetSession returns the active session if it belongs to the participant in ctx.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
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
	return snapshot(a.session), nil
}

// snapshot copies the mutable session header. Trials and images are never
// modified after creation and stay shared.
func snapshot(sess *domain.Session) *domain.Session {
	cp := *sess
	return &cp
}
