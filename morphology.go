package realiser

import "sort"

// MorphologyRules is the per-language rule set the morphology phase
// dispatches to: one operation per handled lexical category, each
// deterministic given its inputs. Categories without an operation here
// (VERB, ADVERB, PRONOUN, ...) are rejected with
// UnsupportedCategoryError at dispatch, never realized implicitly.
type MorphologyRules interface {
	// Noun applies noun agreement (number, irregular plurals).
	Noun(features FeatureSet, base *Word) (string, error)
	// Adjective applies adjective agreement and comparison.
	Adjective(features FeatureSet, base *Word) (string, error)
	// Determiner applies article/determiner agreement.
	Determiner(features FeatureSet, base *Word) (string, error)
}

// Registry maps language codes to morphology rule sets. A registry is
// plain data owned by whoever builds the realization context; there is
// no package-level mutable instance.
type Registry struct {
	rules map[string]MorphologyRules
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]MorphologyRules)}
}

// Register binds a rule set to a language code, replacing any previous
// binding for that code.
func (r *Registry) Register(lang string, rules MorphologyRules) {
	r.rules[lang] = rules
}

// Rules returns the rule set for a language code, or
// UnknownLanguageError when none is registered.
func (r *Registry) Rules(lang string) (MorphologyRules, error) {
	rules, ok := r.rules[lang]
	if !ok {
		return nil, &UnknownLanguageError{Language: lang}
	}
	return rules, nil
}

// Languages returns the registered language codes, sorted.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.rules))
	for lang := range r.rules {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a fresh Registry with the built-in rule sets
// registered. Each call returns an independent registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("fr", FrenchRules{})
	return r
}
