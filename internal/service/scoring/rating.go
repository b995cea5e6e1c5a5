package scoring

import (
	"fmt"
	"math"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const (
	theoreticalMsPerTrial = 1500
	maxRatingTimeScore    = 15.0
	accuracyWeight        = 85.0
	roundBonusStep        = 0.2

	// imagesPerRound converts completed images into rounds. Sessions show six
	// images, but ratings have always divided by four.
	imagesPerRound = 4
)

// Rating is the per-round breakdown shown after a session. It is
// intentionally a different formula from Score.
type Rating struct {
	TimeScore          int
	AccuracyMultiplier float64
	RoundsCompleted    int
	RoundBonus         float64
	FinalScore         int
}

// RoundRating rates a single round. roundsCompleted is not clamped: zero
// rounds yields a 0.8 bonus.
func RoundRating(totalTrials, correctTrials int, actualTimeMs int64, roundsCompleted int) (Rating, error) {
	if totalTrials <= 0 {
		return Rating{}, fmt.Errorf("total trials is %d: %w", totalTrials, domain.ErrDegenerateStats)
	}
	if actualTimeMs <= 0 {
		return Rating{}, fmt.Errorf("actual time is %dms: %w", actualTimeMs, domain.ErrDegenerateStats)
	}
	if correctTrials < 0 || correctTrials > totalTrials {
		return Rating{}, domain.NewValidationError("correct_trials", "must be between 0 and total trials")
	}

	theoretical := float64(totalTrials) * theoreticalMsPerTrial
	timeScore := int(math.Round(maxRatingTimeScore * math.Min(theoretical/float64(actualTimeMs), 1)))
	multiplier := float64(correctTrials) / float64(totalTrials)
	bonus := 1 + float64(roundsCompleted-1)*roundBonusStep

	return Rating{
		TimeScore:          timeScore,
		AccuracyMultiplier: multiplier,
		RoundsCompleted:    roundsCompleted,
		RoundBonus:         bonus,
		FinalScore:         int(math.Round((float64(timeScore) + multiplier*accuracyWeight) * bonus)),
	}, nil
}

// RoundsCompleted derives completed rounds from a participant's image history.
// Duplicates are counted once.
func RoundsCompleted(completedImages []string) int {
	distinct := make(map[string]struct{}, len(completedImages))
	for _, f := range completedImages {
		distinct[f] = struct{}{}
	}
	return len(distinct) / imagesPerRound
}
