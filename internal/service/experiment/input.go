package experiment

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const (
	MinNicknameLen = 2
	MaxNicknameLen = 32

	// MaxReactionTimeMs rejects outcomes from abandoned tabs.
	MaxReactionTimeMs = 10 * 60 * 1000
	MaxBatchSize      = 1000
)

// RegisterInput holds the parameters for registering a participant.
type RegisterInput struct {
	Nickname string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	nickname := strings.TrimSpace(i.Nickname)
	n := utf8.RuneCountInString(nickname)
	switch {
	case n == 0:
		return domain.NewValidationError("nickname", "required")
	case n < MinNicknameLen:
		return domain.NewValidationError("nickname", "min 2 characters")
	case n > MaxNicknameLen:
		return domain.NewValidationError("nickname", "max 32 characters")
	}
	return nil
}

// RecordTrialInput is the participant's answer to the current trial.
type RecordTrialInput struct {
	SessionID      uuid.UUID
	TrialIndex     int
	IsCorrect      bool
	ReactionTimeMs int
}

// Validate checks all fields and collects all errors.
func (i RecordTrialInput) Validate() error {
	var errs []domain.FieldError
	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	errs = append(errs, validateOutcome("", i.TrialIndex, i.ReactionTimeMs)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordTrialsInput submits several consecutive answers at once.
type RecordTrialsInput struct {
	SessionID uuid.UUID
	Outcomes  []domain.TrialOutcome
}

// Validate checks all fields and collects all errors.
func (i RecordTrialsInput) Validate() error {
	var errs []domain.FieldError
	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if len(i.Outcomes) == 0 {
		errs = append(errs, domain.FieldError{Field: "outcomes", Message: "required"})
	}
	if len(i.Outcomes) > MaxBatchSize {
		errs = append(errs, domain.FieldError{Field: "outcomes", Message: "max 1000 items"})
	}
	for idx, o := range i.Outcomes {
		prefix := "outcomes[" + strconv.Itoa(idx) + "]."
		errs = append(errs, validateOutcome(prefix, o.TrialIndex, o.ReactionTimeMs)...)
		if idx > 0 && o.TrialIndex != i.Outcomes[idx-1].TrialIndex+1 {
			errs = append(errs, domain.FieldError{Field: prefix + "trial_index", Message: "must be consecutive"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateOutcome(prefix string, trialIndex, reactionTimeMs int) []domain.FieldError {
	var errs []domain.FieldError
	if trialIndex < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "trial_index", Message: "must be non-negative"})
	}
	if reactionTimeMs < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "reaction_time_ms", Message: "must be non-negative"})
	}
	if reactionTimeMs > MaxReactionTimeMs {
		errs = append(errs, domain.FieldError{Field: prefix + "reaction_time_ms", Message: "too large"})
	}
	return errs
}
