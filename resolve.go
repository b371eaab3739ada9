package lemmy

// Lemmatize returns the ordered lemma candidates for a (POS, word form)
// pair. Layers are tried in order:
//
//  1. the exception table, probed with the folded form;
//  2. the suffix rules, longest matching suffix first, with the empty
//     suffix (when trained) as the per-POS default;
//  3. the identity fallback.
//
// The result is never empty: unknown words and unknown POS tags both
// degrade to a single-element slice holding the input form. Candidate
// order is the discovery order of whichever layer matched.
func (l *Lemmatizer) Lemmatize(pos PartOfSpeech, form string) []string {
	form = nfc(form)
	if form == "" {
		return []string{form}
	}
	key := fold(l.bundle.Folding, form)

	if cands := l.bundle.Exceptions(pos, key); len(cands) > 0 {
		out := make([]string, len(cands))
		copy(out, cands)
		return out
	}

	if cands := l.applyRules(pos, key); len(cands) > 0 {
		return cands
	}

	return []string{form}
}

// applyRules walks the suffixes of key from longest to shortest and
// applies the first rule found for pos. Replacements that would produce
// an empty lemma are dropped; a rule whose every replacement empties the
// word yields nothing, leaving the identity fallback to fire.
func (l *Lemmatizer) applyRules(pos PartOfSpeech, key string) []string {
	table := l.bundle.rules[pos]
	if len(table) == 0 {
		return nil
	}

	runes := []rune(key)
	start := 0
	if longest := l.bundle.maxSuffix[pos]; longest < len(runes) {
		start = len(runes) - longest
	}

	// i == len(runes) probes the empty suffix, the per-POS default rule.
	for i := start; i <= len(runes); i++ {
		reps, ok := table[string(runes[i:])]
		if !ok {
			continue
		}
		stem := string(runes[:i])
		out := make([]string, 0, len(reps))
		for _, rep := range reps {
			if lemma := stem + rep; lemma != "" {
				out = append(out, lemma)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Disambiguate selects a single lemma from an ordered candidate list.
// With one candidate it is returned as is. With several, the first
// candidate not textually identical to form wins (case-sensitive exact
// comparison, original order preserved); when every candidate equals
// form, the first is returned. An empty list echoes form, so the policy
// is total like the resolver.
func Disambiguate(form string, candidates []string) string {
	if len(candidates) == 0 {
		return form
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	for _, c := range candidates {
		if c != form {
			return c
		}
	}
	return candidates[0]
}
