package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trial is one stimulus-response unit: a word shown after an image.
// ImageID is the image file name.
type Trial struct {
	ImageID  string
	Word     string
	WordType WordType
}

// TrialOutcome is the participant's response to a single trial.
type TrialOutcome struct {
	TrialIndex     int
	IsCorrect      bool
	ReactionTimeMs int
}

// Session is one experimental round. It lives only while the run is active;
// its outcomes are folded into ParticipantProgress and the leaderboard.
type Session struct {
	ID                uuid.UUID
	ParticipantID     uuid.UUID
	ImageIDs          []string
	Images            []StimulusImage
	Trials            []Trial
	CurrentTrialIndex int
	Completed         bool
	IsTest            bool
	StartedAt         time.Time

	CorrectCount int
}

// Remaining returns the number of trials not yet answered.
func (s *Session) Remaining() int {
	return len(s.Trials) - s.CurrentTrialIndex
}

// Finished reports whether every trial has an outcome.
func (s *Session) Finished() bool {
	return s.CurrentTrialIndex >= len(s.Trials)
}

// Image returns the session image with the given file name.
func (s *Session) Image(fileName string) (StimulusImage, bool) {
	for _, img := range s.Images {
		if img.FileName == fileName {
			return img, true
		}
	}
	return StimulusImage{}, false
}

// SessionStats are the raw statistics scored at the end of a session.
type SessionStats struct {
	TotalTrials  int
	TotalCorrect int
	TotalTimeMs  int64
}
