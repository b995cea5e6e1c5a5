package lexical

import (
	"regexp"
	"strings"
)

var syllablePattern = regexp.MustCompile(`[бвгджзйклмнпрстфхцчшщьъ]*[аеёиоуыэюя]`)

// splitSyllables cuts stem into (consonants)*(vowel) syllables. Characters
// between matches are kept in the following syllable so that joining the
// syllables and the coda gives back the stem.
func splitSyllables(stem string) (syllables []string, coda string) {
	prev := 0
	for _, loc := range syllablePattern.FindAllStringIndex(stem, -1) {
		syllables = append(syllables, stem[prev:loc[1]])
		prev = loc[1]
	}
	return syllables, stem[prev:]
}

// degeminate collapses doubled letters (нн, кк) into one.
func degeminate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var last rune
	for i, r := range s {
		if i > 0 && r == last {
			continue
		}
		b.WriteRune(r)
		last = r
	}
	return b.String()
}

func hasVowel(s string) bool {
	return strings.IndexFunc(s, isVowel) >= 0
}
