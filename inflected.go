package realiser

import "fmt"

// binding is the two-state resolution of an inflected word's base entry:
// either already bound to a Word, or unbound and carrying the lookup key
// for a later resolve against a lexicon.
type binding struct {
	word     *Word
	baseForm string
	category Category
}

// bound reports whether the base entry is resolved.
func (b *binding) bound() bool {
	return b.word != nil
}

// resolve returns the bound entry, looking it up in lex when still
// unbound. A bound entry is authoritative and is never refreshed from
// the lexicon (the lexicon is read-only during realization, so a
// refresh could only change the outcome by failing).
func (b *binding) resolve(lex Lexicon) (*Word, error) {
	if b.word != nil {
		return b.word, nil
	}
	if lex == nil {
		return nil, &UnknownWordError{BaseForm: b.baseForm, Category: b.category}
	}
	w, err := lex.First(b.baseForm, b.category)
	if err != nil {
		return nil, err
	}
	b.word = w
	return w, nil
}

// InflectedWord is a transient, feature-overridden view of a Word,
// built once per realization call and discarded after producing a
// RealisedString. Construction copies the base entry's features, so
// many inflected words may safely share one entry.
type InflectedWord struct {
	// BaseForm is the entry's default spelling, snapshotted at
	// construction; later mutation of the entry does not affect it.
	BaseForm string
	// Category is the resolved category (see Word.Inflect/InflectAs).
	Category Category
	// Features is the entry's feature set with the caller's overrides
	// overlaid; the overlay wins on conflict.
	Features FeatureSet

	base binding
	// lexicon is only set on unbound construction; a bound inflected
	// word always reaches the lexicon through its base entry.
	lexicon Lexicon
}

// newInflectedWord builds an InflectedWord over the given base entry.
// Without an explicit category the word inherits the entry's category;
// with one, the resolved category collapses to CategoryAny. That is the
// legacy contract, kept deliberately; see InflectAs.
func newInflectedWord(word *Word, explicitCategory bool, features FeatureSet) *InflectedWord {
	iw := &InflectedWord{
		BaseForm: word.DefaultSpelling(),
		Category: word.Category,
		Features: word.Features.Copy(),
		base:     binding{word: word},
	}
	iw.Features.Merge(features)
	if explicitCategory {
		iw.Category = CategoryAny
	}
	return iw
}

// NewUnboundInflection builds an InflectedWord whose base entry is not
// resolvable yet. The entry is looked up lazily from lex, by base form
// and category, during the syntax phase.
func NewUnboundInflection(lex Lexicon, baseForm string, category Category, features FeatureSet) *InflectedWord {
	if category == "" {
		category = CategoryAny
	}
	iw := &InflectedWord{
		BaseForm: baseForm,
		Category: category,
		Features: FeatureSet{},
		base:     binding{baseForm: baseForm, category: category},
		lexicon:  lex,
	}
	iw.Features.Merge(features)
	return iw
}

// BaseWord returns the bound base entry, nil while unbound.
func (iw *InflectedWord) BaseWord() *Word {
	return iw.base.word
}

// Parent passes through to the base entry; an inflected word never owns
// a parent link itself.
func (iw *InflectedWord) Parent() any {
	if iw.base.word == nil {
		return nil
	}
	return iw.base.word.Parent()
}

// SetParent passes through to the base entry.
func (iw *InflectedWord) SetParent(p any) {
	if iw.base.word != nil {
		iw.base.word.SetParent(p)
	}
}

// Lexicon returns the base entry's lexicon when bound, otherwise the
// lexicon supplied at unbound construction.
func (iw *InflectedWord) Lexicon() Lexicon {
	if iw.base.word != nil {
		return iw.base.word.Lexicon()
	}
	return iw.lexicon
}

// Language returns the language code: the language feature when set,
// otherwise the reachable lexicon's language, otherwise "".
func (iw *InflectedWord) Language() string {
	if s, err := iw.Features.GetString(FeatureLanguage); err == nil {
		return s
	}
	if lex := iw.Lexicon(); lex != nil {
		return lex.Language()
	}
	return ""
}

// Elided reports whether realization of this word is suppressed.
func (iw *InflectedWord) Elided() bool {
	return iw.Features.Flag(FeatureElided)
}

// NonMorphological reports whether the word is exempt from morphology
// (e.g. a fixed idiom realized verbatim).
func (iw *InflectedWord) NonMorphological() bool {
	return iw.Features.Flag(FeatureNonMorphological)
}

// RealiseSyntax runs the syntax phase. An elided word is returned
// unchanged and never reaches morphology. Otherwise, when a lexicon is
// reachable and the base form is known but the base entry is not yet
// bound, the entry is resolved from the lexicon; a lookup miss
// propagates as UnknownWordError.
func (iw *InflectedWord) RealiseSyntax() (*InflectedWord, error) {
	if iw.Elided() {
		return iw, nil
	}
	if lex := iw.Lexicon(); lex != nil && iw.BaseForm != "" && !iw.base.bound() {
		if _, err := iw.base.resolve(lex); err != nil {
			return iw, fmt.Errorf("resolve %q: %w", iw.BaseForm, err)
		}
	}
	return iw, nil
}

// RealiseMorphology runs the morphology phase against the given rule
// set and returns the final surface string.
//
// A non-morphological word short-circuits: the snapshotted base form is
// emitted verbatim and the discourse-function feature, when present, is
// copied onto the result (normal morphology leaves that propagation to
// the rules). Every other word resolves its base entry and dispatches
// on category; categories without a rule yield UnsupportedCategoryError.
func (iw *InflectedWord) RealiseMorphology(rules MorphologyRules) (*RealisedString, error) {
	if iw.Elided() {
		return nil, nil
	}
	if iw.NonMorphological() {
		rs := NewRealisedString(iw.BaseForm, iw)
		if fn, ok := iw.Features[FeatureDiscourseFunction]; ok {
			rs.setFeature(FeatureDiscourseFunction, fn)
		}
		return rs, nil
	}

	base, err := iw.base.resolve(iw.Lexicon())
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", iw.BaseForm, err)
	}

	var form string
	switch iw.Category {
	case CategoryNoun:
		form, err = rules.Noun(iw.Features, base)
	case CategoryAdjective:
		form, err = rules.Adjective(iw.Features, base)
	case CategoryDeterminer:
		form, err = rules.Determiner(iw.Features, base)
	default:
		return nil, &UnsupportedCategoryError{Category: iw.Category}
	}
	if err != nil {
		return nil, fmt.Errorf("morphology for %q: %w", iw.BaseForm, err)
	}
	return NewRealisedString(form, iw), nil
}
