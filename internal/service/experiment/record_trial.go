package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/domain"
	"github.com/heartmarshall/lexical-decision/pkg/ctxutil"
)

// TrialProgress reports a session's position after an answer.
type TrialProgress struct {
	CurrentTrialIndex int
	Remaining         int
}

// RecordTrial stores the answer to the session's current trial and advances
// it. Answers must arrive in order; the trial log is only written for
// non-test sessions, and the index advances only after the write succeeds.
func (s *Service) RecordTrial(ctx context.Context, input RecordTrialInput) (TrialProgress, error) {
	participantID, ok := ctxutil.ParticipantIDFromCtx(ctx)
	if !ok {
		return TrialProgress{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return TrialProgress{}, err
	}

	a, err := s.lookup(participantID, input.SessionID)
	if err != nil {
		return TrialProgress{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	sess := a.session

	if err := checkNext(sess, input.TrialIndex, 1); err != nil {
		return TrialProgress{}, err
	}

	outcome := domain.TrialOutcome{
		TrialIndex:     input.TrialIndex,
		IsCorrect:      input.IsCorrect,
		ReactionTimeMs: input.ReactionTimeMs,
	}

	if !sess.IsTest {
		rec := trialRecord(sess, outcome, s.clock.Now())
		if err := s.trials.Append(ctx, &rec); err != nil {
			return TrialProgress{}, fmt.Errorf("append trial: %w", err)
		}
	}

	advance(sess, outcome)
	s.touch(a)
	return progressOf(sess), nil
}

// RecordTrials stores several consecutive answers starting at the current
// trial in a single batch write.
func (s *Service) RecordTrials(ctx context.Context, input RecordTrialsInput) (TrialProgress, error) {
	participantID, ok := ctxutil.ParticipantIDFromCtx(ctx)
	if !ok {
		return TrialProgress{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return TrialProgress{}, err
	}

	a, err := s.lookup(participantID, input.SessionID)
	if err != nil {
		return TrialProgress{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	sess := a.session

	if err := checkNext(sess, input.Outcomes[0].TrialIndex, len(input.Outcomes)); err != nil {
		return TrialProgress{}, err
	}

	if !sess.IsTest {
		now := s.clock.Now()
		recs := make([]domain.TrialRecord, len(input.Outcomes))
		for i, o := range input.Outcomes {
			recs[i] = trialRecord(sess, o, now)
		}
		if err := s.trials.AppendBatch(ctx, recs); err != nil {
			return TrialProgress{}, fmt.Errorf("append trials: %w", err)
		}
	}

	for _, o := range input.Outcomes {
		advance(sess, o)
	}
	s.touch(a)
	return progressOf(sess), nil
}

// checkNext verifies that n answers starting at index fit the session.
func checkNext(sess *domain.Session, index, n int) error {
	if sess.Completed || sess.Finished() {
		return fmt.Errorf("session has no pending trials: %w", domain.ErrConflict)
	}
	if index != sess.CurrentTrialIndex {
		return fmt.Errorf("trial %d answered out of order, expected %d: %w",
			index, sess.CurrentTrialIndex, domain.ErrConflict)
	}
	if n > sess.Remaining() {
		return domain.NewValidationError("outcomes", "more answers than remaining trials")
	}
	return nil
}

func advance(sess *domain.Session, o domain.TrialOutcome) {
	if o.IsCorrect {
		sess.CorrectCount++
	}
	sess.CurrentTrialIndex++
}

func progressOf(sess *domain.Session) TrialProgress {
	return TrialProgress{
		CurrentTrialIndex: sess.CurrentTrialIndex,
		Remaining:         sess.Remaining(),
	}
}

func trialRecord(sess *domain.Session, o domain.TrialOutcome, at time.Time) domain.TrialRecord {
	trial := sess.Trials[o.TrialIndex]
	img, _ := sess.Image(trial.ImageID)
	return domain.TrialRecord{
		ParticipantID:  sess.ParticipantID,
		SessionID:      sess.ID,
		ImageFileName:  trial.ImageID,
		Word:           trial.Word,
		WordType:       trial.WordType,
		IsCorrect:      o.IsCorrect,
		ReactionTimeMs: o.ReactionTimeMs,
		Model:          img.Model,
		CreatedAt:      at,
	}
}
