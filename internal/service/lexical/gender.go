package lexical

import "strings"

// Gender is the grammatical gender class inferred from a word ending.
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return "masculine"
	}
}

var genderSuffixes = map[Gender][]string{
	Masculine: {"ый", "ий", "ой", "ок", "ец", "ик", "ер", "ор"},
	Feminine:  {"ость", "ица", "ка", "ая", "яя", "а", "я"},
	Neuter:    {"ство", "ние", "ое", "ее", "ие", "о", "е"},
}

// classify returns the gender class of word and the ending that decided it.
// The longest matching ending wins. A word with no known ending is treated as
// masculine with an empty suffix, like consonant-final nouns.
func classify(word string) (Gender, string) {
	gender, suffix := Masculine, ""
	for _, g := range []Gender{Masculine, Feminine, Neuter} {
		for _, s := range genderSuffixes[g] {
			if strings.HasSuffix(word, s) && len(s) > len(suffix) {
				gender, suffix = g, s
			}
		}
	}
	return gender, suffix
}
