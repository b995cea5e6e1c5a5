package domain

// WordType classifies the word shown in a trial.
type WordType string

const (
	WordTypeTarget  WordType = "target"
	WordTypeAntonym WordType = "antonym"
	WordTypeFactor  WordType = "factor"
	WordTypeNonWord WordType = "non-word"
)

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeTarget, WordTypeAntonym, WordTypeFactor, WordTypeNonWord:
		return true
	}
	return false
}

// IsReal reports whether the word exists in the language. Non-words are the
// only foils; every other trial expects a "real" response.
func (t WordType) IsReal() bool { return t != WordTypeNonWord }

// Factor is one of the five semantic dimensions of the factor-word catalog.
type Factor string

const (
	FactorBeauty      Factor = "beauty"
	FactorHarmony     Factor = "harmony"
	FactorDynamics    Factor = "dynamics"
	FactorOriginality Factor = "originality"
	FactorAccuracy    Factor = "accuracy"
)

func (f Factor) String() string { return string(f) }

func (f Factor) IsValid() bool {
	switch f {
	case FactorBeauty, FactorHarmony, FactorDynamics, FactorOriginality, FactorAccuracy:
		return true
	}
	return false
}

// AllFactors lists the factors in catalog order.
func AllFactors() []Factor {
	return []Factor{FactorBeauty, FactorHarmony, FactorDynamics, FactorOriginality, FactorAccuracy}
}

// Connotation is the pole of a factor word.
type Connotation string

const (
	ConnotationPositive Connotation = "positive"
	ConnotationNegative Connotation = "negative"
)

func (c Connotation) String() string { return string(c) }

func (c Connotation) IsValid() bool {
	return c == ConnotationPositive || c == ConnotationNegative
}
