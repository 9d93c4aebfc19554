// Package realiser is the word-level surface-realization core of a
// natural-language generation pipeline: it turns a lexicon entry (a
// headword plus grammatical category) into a final inflected surface
// string, given a requested set of grammatical features.
//
// Realization runs in two phases. The syntax phase wraps a Word into a
// transient InflectedWord (resolving elision and lazily binding the
// entry against the lexicon); the morphology phase dispatches on the
// lexical category to the active language's MorphologyRules and yields
// a RealisedString.
package realiser

import "fmt"

// Realiser orchestrates the two realization phases over one lexicon
// and one rule registry. The lexicon must be read-only for the whole
// realization pass; a Realiser performs no locking.
type Realiser struct {
	lexicon  Lexicon
	registry *Registry
}

// New creates a Realiser over the given lexicon and rule registry.
// A nil registry gets the built-in defaults.
func New(lex Lexicon, reg *Registry) *Realiser {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Realiser{lexicon: lex, registry: reg}
}

// Lexicon returns the realiser's lexicon.
func (r *Realiser) Lexicon() Lexicon {
	return r.lexicon
}

// Registry returns the realiser's rule registry.
func (r *Realiser) Registry() *Registry {
	return r.registry
}

// Realise runs both phases for one word with the given feature
// overrides and returns the final surface string. An elided word
// realizes to (nil, nil).
func (r *Realiser) Realise(w *Word, features FeatureSet) (*RealisedString, error) {
	if w.Elided() {
		return nil, nil
	}
	return r.RealiseInflection(w.Inflect(features))
}

// RealiseWord looks up a base form in the lexicon and realizes it with
// the given feature overrides.
func (r *Realiser) RealiseWord(baseForm string, category Category, features FeatureSet) (*RealisedString, error) {
	w, err := r.lexicon.First(baseForm, category)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", baseForm, err)
	}
	return r.Realise(w, features)
}

// RealiseInflection runs both phases for an already-built inflected
// word. The rule set is resolved once from the registry, by the word's
// language code. An elided word realizes to (nil, nil).
func (r *Realiser) RealiseInflection(iw *InflectedWord) (*RealisedString, error) {
	iw, err := iw.RealiseSyntax()
	if err != nil {
		return nil, err
	}
	if iw.Elided() {
		return nil, nil
	}
	if iw.NonMorphological() {
		// No rule set needed; the word is realized verbatim.
		return iw.RealiseMorphology(nil)
	}
	rules, err := r.registry.Rules(iw.Language())
	if err != nil {
		return nil, err
	}
	return iw.RealiseMorphology(rules)
}
