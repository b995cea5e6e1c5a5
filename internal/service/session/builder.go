// Package session assembles experimental sessions from the stimulus catalog.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type stimulusCatalog interface {
	Pairs() []domain.Pair
	FactorWords() []domain.FactorWord
	IsFactorWord(word string) bool
}

type nonWordGenerator interface {
	GenerateNonWord(baseWord string) (string, error)
}

// Config holds session assembly parameters.
type Config struct {
	PairsPerSession  int
	NonWordsPerImage int
	// MaxGenerationAttempts bounds duplicate rejections per non-word slot.
	MaxGenerationAttempts int
}

// Builder creates sessions. It is safe for concurrent use when rng and the
// generator are.
type Builder struct {
	catalog   stimulusCatalog
	generator nonWordGenerator
	rng       *rand.Rand
	cfg       Config
}

// NewBuilder creates a Builder.
func NewBuilder(catalog stimulusCatalog, generator nonWordGenerator, rng *rand.Rand, cfg Config) *Builder {
	return &Builder{
		catalog:   catalog,
		generator: generator,
		rng:       rng,
		cfg:       cfg,
	}
}

// CreateSession selects PairsPerSession pairs that still contain an image
// outside completed and expands every image of those pairs into trials.
// When fewer pairs qualify, the participant's history is treated as
// exhausted and selection runs again as if nothing had been completed.
func (b *Builder) CreateSession(participantID uuid.UUID, completed map[string]struct{}, isTest bool) (*domain.Session, error) {
	pairs := b.catalog.Pairs()
	if len(pairs) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	selected := b.selectPairs(pairs, completed)
	if len(selected) < b.cfg.PairsPerSession && len(completed) > 0 {
		selected = b.selectPairs(pairs, nil)
	}

	var images []domain.StimulusImage
	for _, p := range selected {
		images = append(images, p.Images...)
	}

	trials, err := b.expand(images)
	if err != nil {
		return nil, err
	}

	b.rng.Shuffle(len(trials), func(i, j int) {
		trials[i], trials[j] = trials[j], trials[i]
	})

	imageIDs := make([]string, len(images))
	for i, img := range images {
		imageIDs[i] = img.FileName
	}

	return &domain.Session{
		ID:                uuid.New(),
		ParticipantID:     participantID,
		ImageIDs:          imageIDs,
		Images:            images,
		Trials:            trials,
		CurrentTrialIndex: 0,
		Completed:         false,
		IsTest:            isTest,
	}, nil
}

// selectPairs shuffles pairs (Fisher-Yates) and keeps the first ones with an
// incomplete image.
func (b *Builder) selectPairs(pairs []domain.Pair, completed map[string]struct{}) []domain.Pair {
	shuffled := make([]domain.Pair, len(pairs))
	copy(shuffled, pairs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	selected := make([]domain.Pair, 0, b.cfg.PairsPerSession)
	for _, p := range shuffled {
		if len(selected) == b.cfg.PairsPerSession {
			break
		}
		if p.HasIncomplete(completed) {
			selected = append(selected, p)
		}
	}
	return selected
}

// expand builds the per-image trial lists in image order.
func (b *Builder) expand(images []domain.StimulusImage) ([]domain.Trial, error) {
	words := b.catalog.FactorWords()
	if len(words) == 0 && b.cfg.NonWordsPerImage > 0 {
		return nil, fmt.Errorf("no factor words to derive non-words from: %w", domain.ErrEmptyCatalog)
	}

	used := newWordSet()
	for _, img := range images {
		used.add(img.TargetWord)
		used.add(img.AntonymWord)
	}

	perImage := 2 + len(words) + b.cfg.NonWordsPerImage
	trials := make([]domain.Trial, 0, perImage*len(images))

	for _, img := range images {
		trials = append(trials,
			domain.Trial{ImageID: img.FileName, Word: img.TargetWord, WordType: domain.WordTypeTarget},
			domain.Trial{ImageID: img.FileName, Word: img.AntonymWord, WordType: domain.WordTypeAntonym},
		)
		for _, w := range words {
			trials = append(trials, domain.Trial{ImageID: img.FileName, Word: w.Word, WordType: domain.WordTypeFactor})
		}
		for range b.cfg.NonWordsPerImage {
			nw, err := b.uniqueNonWord(words, used)
			if err != nil {
				return nil, fmt.Errorf("image %s: %w", img.FileName, err)
			}
			trials = append(trials, domain.Trial{ImageID: img.FileName, Word: nw, WordType: domain.WordTypeNonWord})
		}
	}

	return trials, nil
}

// uniqueNonWord derives a non-word from a random factor word that collides
// neither with a real word nor with a non-word already in the session.
func (b *Builder) uniqueNonWord(words []domain.FactorWord, used wordSet) (string, error) {
	attempts := max(b.cfg.MaxGenerationAttempts, 1)
	var lastErr error

	for range attempts {
		base := words[b.rng.IntN(len(words))].Word
		nw, err := b.generator.GenerateNonWord(base)
		if err != nil {
			if !errors.Is(err, domain.ErrGenerationExhausted) {
				return "", err
			}
			lastErr = err
			continue
		}
		if b.catalog.IsFactorWord(nw) || used.has(nw) {
			continue
		}
		used.add(nw)
		return nw, nil
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", fmt.Errorf("no unique non-word after %d attempts: %w", attempts, domain.ErrGenerationExhausted)
}

type wordSet map[string]struct{}

func newWordSet() wordSet { return make(wordSet) }

func (s wordSet) add(w string) { s[strings.ToLower(w)] = struct{}{} }

func (s wordSet) has(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}
