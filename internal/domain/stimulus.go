package domain

// StimulusImage is one catalog row. FileName is the identity.
type StimulusImage struct {
	ID          string
	FileName    string
	URL         string
	TargetWord  string
	AntonymWord string
	// Model is the tag of the generator that produced the image.
	Model string
}

// PairKey identifies the concept pair an image belongs to.
type PairKey struct {
	Target  string
	Antonym string
}

// Key returns the pair identity of the image.
func (s StimulusImage) Key() PairKey {
	return PairKey{Target: s.TargetWord, Antonym: s.AntonymWord}
}

// Pair groups catalog images sharing a (target, antonym) tuple. It is the
// unit of completion tracking.
type Pair struct {
	Key    PairKey
	Images []StimulusImage
}

// HasIncomplete reports whether at least one image of the pair is not in completed.
func (p Pair) HasIncomplete(completed map[string]struct{}) bool {
	for _, img := range p.Images {
		if _, done := completed[img.FileName]; !done {
			return true
		}
	}
	return false
}

// FactorWord is a catalog adjective tagged with a factor and a pole.
type FactorWord struct {
	Factor      Factor
	Word        string
	Connotation Connotation
}
