// Package lemmy selects base forms (lemmas) for tagged word forms using
// trained per-language resource bundles, layering an exact-match exception
// table over suffix-replacement rules with an identity fallback, so that
// lemmatization is total: every (POS, word) pair yields at least one lemma.
package lemmy

// Lemmatizer resolves (POS tag, word form) pairs into lemma candidates.
// It holds a non-owning reference to an immutable Bundle and keeps no
// state of its own, so a single Lemmatizer may be shared freely across
// goroutines.
type Lemmatizer struct {
	bundle *Bundle
}

// New returns a Lemmatizer backed by the given bundle.
func New(bundle *Bundle) *Lemmatizer {
	return &Lemmatizer{bundle: bundle}
}

// Bundle returns the resource bundle the engine resolves against.
func (l *Lemmatizer) Bundle() *Bundle {
	return l.bundle
}

// LemmatizeToken resolves a (POS, word form) pair all the way to a single
// lemma: candidate lookup followed by the tie-break policy.
func (l *Lemmatizer) LemmatizeToken(pos PartOfSpeech, form string) string {
	return Disambiguate(form, l.Lemmatize(pos, form))
}
