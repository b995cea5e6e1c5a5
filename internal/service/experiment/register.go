package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
	"github.com/heartmarshall/lexical-decision/pkg/ctxutil"
)

// Registration is returned to a newly registered participant.
type Registration struct {
	ParticipantID uuid.UUID
	Token         string
	Progress      *domain.ParticipantProgress
}

// RegisterParticipant creates an empty progress record under a fresh
// participant ID and issues a participant token for it.
func (s *Service) RegisterParticipant(ctx context.Context, input RegisterInput) (*Registration, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	nickname := strings.TrimSpace(input.Nickname)
	participantID := uuid.New()

	progress, err := s.progress.Create(ctx, participantID, nickname, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(participantID, s.role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "participant registered",
		slog.String("participant_id", participantID.String()),
		slog.String("nickname", nickname),
	)

	return &Registration{
		ParticipantID: participantID,
		Token:         token,
		Progress:      progress,
	}, nil
}

// GetProgress returns the progress of the participant in ctx.
func (s *Service) GetProgress(ctx context.Context) (*domain.ParticipantProgress, error) {
	participantID, ok := ctxutil.ParticipantIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	progress, err := s.progress.GetByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return progress, nil
}
