package lemmy

import (
	"encoding/json"
	"fmt"
)

// Bundle holds the trained lemmatization resources for one language:
// per-POS exception tables and per-POS suffix-replacement rules.
// A Bundle is immutable after construction and safe for concurrent
// readers; the engine never writes to it.
type Bundle struct {
	// Language is the language code, e.g. "da".
	Language string
	// Name is the human-readable language name, e.g. "Danish".
	Name string
	// Folding is the lookup-key folding mode the bundle was trained with.
	Folding Folding

	// exceptions maps POS → folded word form → ordered lemma candidates.
	exceptions map[PartOfSpeech]map[string][]string

	// rules maps POS → suffix → ordered replacement list. The empty
	// suffix, when present, acts as the per-POS default rule.
	rules map[PartOfSpeech]map[string][]string

	// maxSuffix caps the suffix walk per POS (length in runes of the
	// longest suffix in the rule table).
	maxSuffix map[PartOfSpeech]int
}

// bundleJSON is the on-disk model format produced by training.
type bundleJSON struct {
	Language   string                         `json:"language"`
	Name       string                         `json:"name"`
	Folding    string                         `json:"folding,omitempty"`
	Exceptions map[string]map[string][]string `json:"exceptions"`
	Rules      map[string]map[string][]string `json:"rules"`
}

// ParseBundle decodes and validates a JSON model document.
func ParseBundle(data []byte) (*Bundle, error) {
	var raw bundleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	if raw.Language == "" {
		return nil, fmt.Errorf("parse bundle: missing language code")
	}

	folding := Folding(raw.Folding)
	switch folding {
	case "":
		folding = FoldLower
	case FoldExact, FoldLower, FoldLowerASCII:
	default:
		return nil, fmt.Errorf("parse bundle %s: unknown folding mode %q", raw.Language, raw.Folding)
	}

	b := &Bundle{
		Language:   raw.Language,
		Name:       raw.Name,
		Folding:    folding,
		exceptions: make(map[PartOfSpeech]map[string][]string, len(raw.Exceptions)),
		rules:      make(map[PartOfSpeech]map[string][]string, len(raw.Rules)),
		maxSuffix:  make(map[PartOfSpeech]int, len(raw.Rules)),
	}

	for pos, table := range raw.Exceptions {
		entries := make(map[string][]string, len(table))
		for form, lemmas := range table {
			if form == "" {
				return nil, fmt.Errorf("parse bundle %s: empty exception form under %q", raw.Language, pos)
			}
			if len(lemmas) == 0 {
				return nil, fmt.Errorf("parse bundle %s: exception %q/%q has no candidates", raw.Language, pos, form)
			}
			for _, lemma := range lemmas {
				if lemma == "" {
					return nil, fmt.Errorf("parse bundle %s: exception %q/%q has an empty candidate", raw.Language, pos, form)
				}
			}
			entries[nfc(form)] = lemmas
		}
		b.exceptions[PartOfSpeech(pos)] = entries
	}

	for pos, table := range raw.Rules {
		entries := make(map[string][]string, len(table))
		longest := 0
		for suffix, replacements := range table {
			if len(replacements) == 0 {
				return nil, fmt.Errorf("parse bundle %s: rule %q/%q has no replacements", raw.Language, pos, suffix)
			}
			suffix = nfc(suffix)
			entries[suffix] = replacements
			if n := len([]rune(suffix)); n > longest {
				longest = n
			}
		}
		b.rules[PartOfSpeech(pos)] = entries
		b.maxSuffix[PartOfSpeech(pos)] = longest
	}

	return b, nil
}

// Exceptions returns the candidate list for an exact (pos, folded form)
// probe, or nil when no exception exists.
func (b *Bundle) Exceptions(pos PartOfSpeech, key string) []string {
	return b.exceptions[pos][key]
}

// ExceptionCount returns the total number of exception entries.
func (b *Bundle) ExceptionCount() int {
	n := 0
	for _, table := range b.exceptions {
		n += len(table)
	}
	return n
}

// RuleCount returns the total number of suffix rules.
func (b *Bundle) RuleCount() int {
	n := 0
	for _, table := range b.rules {
		n += len(table)
	}
	return n
}

// TagSet returns every POS tag the bundle has data for.
func (b *Bundle) TagSet() []PartOfSpeech {
	seen := make(map[PartOfSpeech]bool)
	var out []PartOfSpeech
	for pos := range b.exceptions {
		if !seen[pos] {
			seen[pos] = true
			out = append(out, pos)
		}
	}
	for pos := range b.rules {
		if !seen[pos] {
			seen[pos] = true
			out = append(out, pos)
		}
	}
	return out
}
