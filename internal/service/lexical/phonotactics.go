package lexical

import "strings"

const (
	vowels     = "аеёиоуыэюя"
	softVowels = "яёюие"
	softSign   = 'ь'
	hardSign   = 'ъ'
)

// consonantSubstitutes maps a consonant to neighbours by voicing or place of
// articulation. Consonants absent from the table (й) are never replaced.
var consonantSubstitutes = map[rune][]rune{
	'б': []rune("пвм"),
	'в': []rune("фбм"),
	'г': []rune("кхд"),
	'д': []rune("тбз"),
	'ж': []rune("шз"),
	'з': []rune("сжд"),
	'к': []rune("гхт"),
	'л': []rune("рнм"),
	'м': []rune("нбв"),
	'н': []rune("млр"),
	'п': []rune("бфт"),
	'р': []rune("лн"),
	'с': []rune("зшц"),
	'т': []rune("дпк"),
	'ф': []rune("вп"),
	'х': []rune("кг"),
	'ц': []rune("сч"),
	'ч': []rune("щцш"),
	'ш': []rune("жщс"),
	'щ': []rune("шч"),
}

// Vowel substitutes stay within the series of the original vowel so that the
// hardness of the preceding consonant is preserved.
var (
	hardVowelSubstitutes = map[rune][]rune{
		'а': []rune("оуы"),
		'о': []rune("ауы"),
		'у': []rune("ао"),
		'ы': []rune("аоу"),
		'э': []rune("ао"),
	}
	softVowelSubstitutes = map[rune][]rune{
		'я': []rune("еию"),
		'е': []rune("ия"),
		'ё': []rune("ея"),
		'ю': []rune("яеи"),
		'и': []rune("ея"),
	}
)

// alwaysSoft consonants take soft-series vowels regardless of the marker.
const alwaysSoft = "чщй"

func isVowel(r rune) bool     { return strings.ContainsRune(vowels, r) }
func isSoftVowel(r rune) bool { return strings.ContainsRune(softVowels, r) }

// spellingAllows applies the orthographic rules that forbid some vowels after
// sibilants, ц and velars.
func spellingAllows(consonant, vowel rune) bool {
	switch consonant {
	case 'ж', 'ш', 'ч', 'щ':
		return vowel != 'ы' && vowel != 'я' && vowel != 'ю'
	case 'ц':
		return vowel != 'я' && vowel != 'ю'
	case 'г', 'к', 'х':
		return vowel != 'ы' && vowel != 'я'
	}
	return true
}

func vowelSubstitutes(vowel rune, soft bool, consonant rune) []rune {
	table := hardVowelSubstitutes
	if soft {
		table = softVowelSubstitutes
	}

	var out []rune
	for _, v := range table[vowel] {
		if consonant == 0 || spellingAllows(consonant, v) {
			out = append(out, v)
		}
	}
	return out
}
