package realiser

// Word represents a single lexicon entry: a headword together with its
// lexical category, its ID within the owning lexicon, and its feature data.
// Words are created when a lexicon is loaded and owned by that lexicon for
// its whole lifetime; realization never mutates them.
type Word struct {
	// BaseForm is the canonical, uninflected headword.
	BaseForm string
	// Category is the lexical category of the entry.
	Category Category
	// ID identifies the entry within its owning lexicon.
	ID string
	// Features holds the entry's feature data. Write the variant lists
	// through the setters so scalar values are normalized to lists.
	Features FeatureSet

	// lexicon is a back-reference to the owning lexicon, not owned.
	lexicon Lexicon
	// parent is the enclosing element in a larger realization tree.
	// The phrase stages live outside this package, so it stays untyped.
	parent any
}

// NewWord creates a Word with the given base form, category and ID.
// The word is not attached to any lexicon yet.
func NewWord(baseForm string, category Category, id string) *Word {
	if category == "" {
		category = CategoryAny
	}
	return &Word{
		BaseForm: baseForm,
		Category: category,
		ID:       id,
		Features: FeatureSet{},
	}
}

// Lexicon returns the owning lexicon, nil when detached.
func (w *Word) Lexicon() Lexicon {
	return w.lexicon
}

// SetLexicon attaches the word to a lexicon.
func (w *Word) SetLexicon(lex Lexicon) {
	w.lexicon = lex
}

// Parent returns the enclosing element, if any.
func (w *Word) Parent() any {
	return w.parent
}

// SetParent records the enclosing element.
func (w *Word) SetParent(p any) {
	w.parent = p
}

// Language returns the word's language code: the language feature when
// set, otherwise the owning lexicon's language, otherwise "".
func (w *Word) Language() string {
	if s, err := w.Features.GetString(FeatureLanguage); err == nil {
		return s
	}
	if w.lexicon != nil {
		return w.lexicon.Language()
	}
	return ""
}

// Elided reports whether realization of this word is suppressed.
func (w *Word) Elided() bool {
	return w.Features.Flag(FeatureElided)
}

// SetElided marks the word as suppressed (or not).
func (w *Word) SetElided(v bool) {
	w.Features[FeatureElided] = v
}

// DefaultInflection returns the default inflection variant.
func (w *Word) DefaultInflection() (string, error) {
	return w.Features.GetString(FeatureDefaultInflection)
}

// SetDefaultInflection sets the default inflection variant.
func (w *Word) SetDefaultInflection(variant string) {
	w.Features[FeatureDefaultInflection] = variant
}

// Inflections returns the inflection variants.
func (w *Word) Inflections() ([]string, error) {
	return w.Features.GetStrings(FeatureInflections)
}

// SetInflections sets the inflection variants. A single value is stored
// as a one-element list.
func (w *Word) SetInflections(variants ...string) {
	w.Features[FeatureInflections] = variants
}

// SpellingVariants returns the alternate spellings.
func (w *Word) SpellingVariants() ([]string, error) {
	return w.Features.GetStrings(FeatureSpellingVariants)
}

// SetSpellingVariants sets the alternate spellings. A single value is
// stored as a one-element list.
func (w *Word) SetSpellingVariants(variants ...string) {
	w.Features[FeatureSpellingVariants] = variants
}

// DefaultSpelling returns the preferred spelling, falling back to the
// base form when none is set.
func (w *Word) DefaultSpelling() string {
	if s, err := w.Features.GetString(FeatureDefaultSpelling); err == nil {
		return s
	}
	return w.BaseForm
}

// SetDefaultSpelling sets the preferred spelling.
func (w *Word) SetDefaultSpelling(variant string) {
	w.Features[FeatureDefaultSpelling] = variant
}

// Equals reports value equality with other: true only when other is a
// *Word with the same base form, ID and feature data. Any other type
// compares false, never panics.
func (w *Word) Equals(other any) bool {
	ow, ok := other.(*Word)
	if !ok || ow == nil {
		return false
	}
	return w.BaseForm == ow.BaseForm &&
		w.ID == ow.ID &&
		w.Features.Equal(ow.Features)
}

// WordRecord is the exportable form of a Word, consumed by downstream
// serializers. Empty fields are omitted.
type WordRecord struct {
	Base     string `json:"base,omitempty" xml:"base,omitempty"`
	Category string `json:"category,omitempty" xml:"category,omitempty"`
	ID       string `json:"id,omitempty" xml:"id,omitempty"`
}

// Record exports the word as a WordRecord. The category is omitted when
// it is the wildcard.
func (w *Word) Record() WordRecord {
	rec := WordRecord{
		Base: w.BaseForm,
		ID:   w.ID,
	}
	if w.Category != CategoryAny && w.Category != "" {
		rec.Category = string(w.Category)
	}
	return rec
}

// Inflect wraps the word into an InflectedWord carrying the given
// explicit feature overrides. The inflected word inherits this word's
// category.
func (w *Word) Inflect(features FeatureSet) *InflectedWord {
	return newInflectedWord(w, false, features)
}

// InflectAs wraps the word into an InflectedWord with an explicit
// category argument. By long-standing contract the resolved category of
// the inflected word then becomes the wildcard CategoryAny, not the
// supplied value; use Inflect to inherit the word's own category.
func (w *Word) InflectAs(category Category, features FeatureSet) *InflectedWord {
	return newInflectedWord(w, true, features)
}

// RealiseSyntax runs the syntax phase for a bare word: an elided word
// realizes to nothing, any other word is wrapped into a fresh
// InflectedWord with no extra features, whose own syntax phase decides
// the rest.
func (w *Word) RealiseSyntax() (*InflectedWord, error) {
	if w.Elided() {
		return nil, nil
	}
	return w.Inflect(nil).RealiseSyntax()
}

// RealiseMorphology realizes the bare word without any inflection
// context: the default spelling is emitted as-is when non-empty,
// otherwise nothing is produced. The result carries no source link.
func (w *Word) RealiseMorphology() *RealisedString {
	if spelling := w.DefaultSpelling(); spelling != "" {
		return NewRealisedString(spelling, nil)
	}
	return nil
}
