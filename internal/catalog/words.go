package catalog

import (
	"strings"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// factorWords is the semantic differential used in every session: five
// factors, three words per pole.
var factorWords = []domain.FactorWord{
	{Factor: domain.FactorBeauty, Word: "красивый", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorBeauty, Word: "изящный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorBeauty, Word: "прекрасный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorBeauty, Word: "уродливый", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorBeauty, Word: "безобразный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorBeauty, Word: "неприглядный", Connotation: domain.ConnotationNegative},

	{Factor: domain.FactorHarmony, Word: "гармоничный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorHarmony, Word: "согласованный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorHarmony, Word: "уравновешенный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorHarmony, Word: "хаотичный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorHarmony, Word: "несогласованный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorHarmony, Word: "беспорядочный", Connotation: domain.ConnotationNegative},

	{Factor: domain.FactorDynamics, Word: "динамичный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorDynamics, Word: "энергичный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorDynamics, Word: "стремительный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorDynamics, Word: "статичный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorDynamics, Word: "медлительный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorDynamics, Word: "застывший", Connotation: domain.ConnotationNegative},

	{Factor: domain.FactorOriginality, Word: "оригинальный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorOriginality, Word: "необычный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorOriginality, Word: "самобытный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorOriginality, Word: "банальный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorOriginality, Word: "шаблонный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorOriginality, Word: "заурядный", Connotation: domain.ConnotationNegative},

	{Factor: domain.FactorAccuracy, Word: "точный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorAccuracy, Word: "аккуратный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorAccuracy, Word: "тщательный", Connotation: domain.ConnotationPositive},
	{Factor: domain.FactorAccuracy, Word: "неточный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorAccuracy, Word: "небрежный", Connotation: domain.ConnotationNegative},
	{Factor: domain.FactorAccuracy, Word: "неряшливый", Connotation: domain.ConnotationNegative},
}

// aestheticWords is the list the trial-log export flags. It is kept apart
// from factorWords; the two lists overlap only partly.
var aestheticWords = []string{
	"красивый",
	"прекрасный",
	"изящный",
	"гармоничный",
	"эстетичный",
	"привлекательный",
	"выразительный",
	"элегантный",
	"уродливый",
	"безобразный",
	"безвкусный",
	"отталкивающий",
}

// FactorWords returns a copy of the factor-word table.
func FactorWords() []domain.FactorWord {
	out := make([]domain.FactorWord, len(factorWords))
	copy(out, factorWords)
	return out
}

// AestheticWords returns a copy of the aesthetic-word table.
func AestheticWords() []string {
	out := make([]string, len(aestheticWords))
	copy(out, aestheticWords)
	return out
}

// IsAestheticWord reports whether word is in the aesthetic-word table.
func IsAestheticWord(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, a := range aestheticWords {
		if a == w {
			return true
		}
	}
	return false
}
