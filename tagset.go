package lemmy

// PartOfSpeech is a coarse grammatical category drawn from the universal
// tag vocabulary used by the host pipeline ("NOUN", "VERB", "PRON", …).
type PartOfSpeech string

const (
	POSAdjective    PartOfSpeech = "ADJ"
	POSAdposition   PartOfSpeech = "ADP"
	POSAdverb       PartOfSpeech = "ADV"
	POSAuxiliary    PartOfSpeech = "AUX"
	POSConjunction  PartOfSpeech = "CONJ"
	POSDeterminer   PartOfSpeech = "DET"
	POSInterjection PartOfSpeech = "INTJ"
	POSNoun         PartOfSpeech = "NOUN"
	POSNumeral      PartOfSpeech = "NUM"
	POSParticle     PartOfSpeech = "PART"
	POSPronoun      PartOfSpeech = "PRON"
	POSProperNoun   PartOfSpeech = "PROPN"
	POSVerb         PartOfSpeech = "VERB"
	POSOther        PartOfSpeech = "X"
)

// PronounLemma is the sentinel lemma assigned to every pronoun token.
// It is a fixed out-of-band marker shared across the host ecosystem,
// never derived from the resolver.
const PronounLemma = "-PRON-"

// tokenClass is the dispatch category used by the pipeline adapter.
// Pronouns bypass the resolver entirely; everything else goes through it.
type tokenClass int

const (
	classOther tokenClass = iota
	classPronoun
)

// classify maps a raw POS tag to its adapter dispatch class.
func classify(pos PartOfSpeech) tokenClass {
	if pos == POSPronoun {
		return classPronoun
	}
	return classOther
}
