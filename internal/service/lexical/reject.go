package lexical

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	minEditDistance = 2
	minLength       = 5
)

// rejectReason reports why candidate is not an acceptable non-word for base.
// An empty string means the candidate is accepted.
func rejectReason(candidate, base string) string {
	c, b := strings.ToLower(candidate), strings.ToLower(base)
	switch {
	case c == b:
		return "equals base word"
	case levenshtein.ComputeDistance(c, b) < minEditDistance:
		return "too close to base word"
	case utf8.RuneCountInString(c) < minLength:
		return "too short"
	case hasRepeatedRune(c):
		return "repeated character"
	}
	return ""
}

// IsAcceptable reports whether candidate satisfies every non-word rule
// relative to base.
func IsAcceptable(candidate, base string) bool {
	return rejectReason(candidate, base) == ""
}

func hasRepeatedRune(s string) bool {
	var last rune
	for i, r := range s {
		if i > 0 && r == last {
			return true
		}
		last = r
	}
	return false
}
