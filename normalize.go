package lemmy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folding selects how word forms are folded into lookup keys before
// probing a bundle's exception and rule tables. The token's original
// form is never altered; folding applies to the lookup side only.
type Folding string

const (
	// FoldExact looks words up exactly as written (after NFC).
	FoldExact Folding = "exact"
	// FoldLower lowercases words before lookup. This is the default:
	// trained bundles store lowercase keys.
	FoldLower Folding = "lower"
	// FoldLowerASCII lowercases and strips combining marks, for bundles
	// trained on accent-free text.
	FoldLowerASCII Folding = "lower_ascii"
)

// stripMarks removes combining marks after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// nfc returns s in NFC form. Composed and decomposed encodings of the
// same word must hit the same table entries.
func nfc(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// fold converts an NFC word form into a lookup key per the given mode.
func fold(mode Folding, s string) string {
	switch mode {
	case FoldExact:
		return s
	case FoldLowerASCII:
		out, _, err := transform.String(stripMarks, strings.ToLower(s))
		if err != nil {
			return strings.ToLower(s)
		}
		return out
	default:
		return strings.ToLower(s)
	}
}
