package scoring

import (
	"fmt"
	"math"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// Cumulative score constants. A legacy variant of the same curve used
// 25/50/25 for the three accuracy bands; 20/40/20 is canonical here.
const (
	lowBandMax      = 20.0 // accuracyScore at 75%
	midBandSpan     = 40.0 // accuracyScore rise between 75% and 90%
	highBonusCap    = 20.0 // exponential bonus cap above 90%
	lowBandEdge     = 75.0
	highBandEdge    = 90.0
	lowBandExponent = 6
	highBonusBase   = 1.2

	maxTimeScore       = 20.0
	optimalTimeMinutes = 8.0
	timeWindowMinutes  = 10.0
)

// Score is the cumulative leaderboard score breakdown for a set of stats.
type Score struct {
	Accuracy      float64 // percent, 0..100
	AccuracyScore float64
	TimeScore     float64
	Score         int
}

// ComputeScore applies the cumulative leaderboard formula to stats. It is a
// pure function: the same stats always give the same Score.
// Returns domain.ErrDegenerateStats when TotalTrials is zero.
func ComputeScore(stats domain.SessionStats) (Score, error) {
	if err := validateStats(stats); err != nil {
		return Score{}, err
	}

	accuracy := 100 * float64(stats.TotalCorrect) / float64(stats.TotalTrials)
	accScore := AccuracyScore(accuracy)
	timeScore := TimeScore(float64(stats.TotalTimeMs) / 60000)

	return Score{
		Accuracy:      accuracy,
		AccuracyScore: accScore,
		TimeScore:     timeScore,
		Score:         int(math.Round(accScore + timeScore)),
	}, nil
}

// AccuracyScore maps accuracy in percent onto 0..80.
func AccuracyScore(accuracy float64) float64 {
	switch {
	case accuracy < lowBandEdge:
		return lowBandMax * math.Pow(accuracy/lowBandEdge, lowBandExponent)
	case accuracy < highBandEdge:
		return lowBandMax + (accuracy-lowBandEdge)*(midBandSpan/(highBandEdge-lowBandEdge))
	default:
		return lowBandMax + midBandSpan + math.Min(highBonusCap, math.Pow(highBonusBase, accuracy-highBandEdge))
	}
}

// TimeScore is a parabola peaking at 20 for an eight-minute run and clamped
// at zero outside the window.
func TimeScore(minutes float64) float64 {
	d := (minutes - optimalTimeMinutes) / timeWindowMinutes
	return math.Max(0, maxTimeScore*(1-d*d))
}

func validateStats(stats domain.SessionStats) error {
	if stats.TotalTrials == 0 {
		return fmt.Errorf("total trials is zero: %w", domain.ErrDegenerateStats)
	}

	var errs []domain.FieldError
	if stats.TotalTrials < 0 {
		errs = append(errs, domain.FieldError{Field: "total_trials", Message: "must not be negative"})
	}
	if stats.TotalCorrect < 0 {
		errs = append(errs, domain.FieldError{Field: "total_correct", Message: "must not be negative"})
	}
	if stats.TotalCorrect > stats.TotalTrials {
		errs = append(errs, domain.FieldError{Field: "total_correct", Message: "exceeds total trials"})
	}
	if stats.TotalTimeMs < 0 {
		errs = append(errs, domain.FieldError{Field: "total_time_ms", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
