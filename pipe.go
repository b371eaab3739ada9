package lemmy

// Token is the host pipeline's view of a single token: readable surface
// text and POS tag, plus a settable lemma field. Tokens are owned by the
// host document, never by this package.
type Token interface {
	Text() string
	POS() string
	Lemma() string
	SetLemma(string)
}

// Document exposes an order-preserving sequence of tokens.
type Document interface {
	Tokens() []Token
}

// Component is the pipeline stage that writes lemmas onto a document's
// token stream. It carries no per-document state; one Component may
// process independent documents concurrently.
type Component struct {
	engine *Lemmatizer
}

// NewComponent wraps a Lemmatizer for pipeline use.
func NewComponent(engine *Lemmatizer) *Component {
	return &Component{engine: engine}
}

// Process lemmatizes every token of doc in place and returns the same
// document. Pronouns receive the PronounLemma sentinel without consulting
// the resolver. A token whose resolved lemma comes back as the empty
// string keeps whatever lemma it already had; the check is an explicit
// empty-string comparison, so values like "0" are written normally.
func (c *Component) Process(doc Document) Document {
	for _, tok := range doc.Tokens() {
		pos := PartOfSpeech(tok.POS())

		var lemma string
		switch classify(pos) {
		case classPronoun:
			lemma = PronounLemma
		case classOther:
			lemma = c.engine.LemmatizeToken(pos, tok.Text())
		}

		if lemma == "" {
			continue
		}
		tok.SetLemma(lemma)
	}
	return doc
}
