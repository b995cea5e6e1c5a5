// Package lexical generates pronounceable Russian non-words from real words
// by perturbing interior syllables and re-suffixing within the gender class.
package lexical

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// DefaultMaxAttempts bounds the retries of a single generation.
const DefaultMaxAttempts = 50

// Mutator produces non-words. It is safe for concurrent use when rng is.
type Mutator struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewMutator creates a Mutator. maxAttempts <= 0 selects DefaultMaxAttempts.
func NewMutator(rng *rand.Rand, maxAttempts int) *Mutator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Mutator{rng: rng, maxAttempts: maxAttempts}
}

// GenerateNonWord derives a non-word from baseWord. The result differs from
// baseWord case-insensitively, is at edit distance >= 2 from it, is longer
// than four characters and has no immediately repeated character.
// It returns domain.ErrGenerationExhausted when no attempt passes.
func (m *Mutator) GenerateNonWord(baseWord string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(baseWord))
	if base == "" {
		return "", domain.NewValidationError("base_word", "required")
	}

	for range m.maxAttempts {
		candidate, ok := m.attempt(base)
		if !ok {
			continue
		}
		if IsAcceptable(candidate, base) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("non-word from %q after %d attempts: %w", baseWord, m.maxAttempts, domain.ErrGenerationExhausted)
}

// attempt runs one mutation pass. ok is false when the stem offers nothing
// to mutate.
func (m *Mutator) attempt(base string) (string, bool) {
	gender, suffix := classify(base)
	stem := degeminate(strings.TrimSuffix(base, suffix))
	syllables, coda := splitSyllables(stem)

	changed := false
	if candidates := interiorSyllables(len(syllables), hasVowel(suffix)); len(candidates) > 0 {
		count := min(1+m.rng.IntN(2), len(candidates))
		m.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, idx := range candidates[:count] {
			syllables[idx] = m.mutateSyllable(syllables[idx])
		}
		changed = true
	} else {
		coda, changed = m.mutateCoda(coda)
	}
	if !changed {
		return "", false
	}

	newSuffixes := genderSuffixes[gender]
	newSuffix := newSuffixes[m.rng.IntN(len(newSuffixes))]

	return strings.Join(syllables, "") + coda + newSuffix, true
}

// interiorSyllables lists stem syllable indexes that are neither first nor
// last in the word. When the suffix carries a vowel, the suffix holds the
// word's final syllable and the last stem syllable counts as interior.
func interiorSyllables(n int, suffixHasVowel bool) []int {
	last := n - 2
	if suffixHasVowel {
		last = n - 1
	}
	var idx []int
	for i := 1; i <= last; i++ {
		idx = append(idx, i)
	}
	return idx
}

// mutateSyllable replaces the consonant before the vowel and then the vowel
// itself, keeping the soft/hard series.
func (m *Mutator) mutateSyllable(syl string) string {
	runes := []rune(syl)
	vowelPos := len(runes) - 1
	vowel := runes[vowelPos]

	soft := isSoftVowel(vowel)
	pos := vowelPos - 1
	if pos >= 0 && (runes[pos] == softSign || runes[pos] == hardSign) {
		soft = soft || runes[pos] == softSign
		pos--
	}

	var consonant rune
	if pos >= 0 {
		consonant = runes[pos]
		if strings.ContainsRune(alwaysSoft, consonant) {
			soft = true
		}
		if subs, ok := consonantSubstitutes[consonant]; ok {
			consonant = subs[m.rng.IntN(len(subs))]
			runes[pos] = consonant
		}
	}

	if subs := vowelSubstitutes(vowel, soft, consonant); len(subs) > 0 {
		runes[vowelPos] = subs[m.rng.IntN(len(subs))]
	}

	return string(runes)
}

// mutateCoda replaces the last substitutable consonant of a consonant cluster.
func (m *Mutator) mutateCoda(coda string) (string, bool) {
	runes := []rune(coda)
	for i := len(runes) - 1; i >= 0; i-- {
		if subs, ok := consonantSubstitutes[runes[i]]; ok {
			runes[i] = subs[m.rng.IntN(len(subs))]
			return string(runes), true
		}
	}
	return coda, false
}
