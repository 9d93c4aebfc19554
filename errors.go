package realiser

import "fmt"

// UnsupportedCategoryError is returned by morphology dispatch when no rule
// exists for the requested category (e.g. VERB, ADVERB, PRONOUN).
type UnsupportedCategoryError struct {
	Category Category
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("no morphology rule for category %s", e.Category)
}

// UnknownWordError is returned by lexicon lookup when no entry matches the
// requested base form and category.
type UnknownWordError struct {
	BaseForm string
	Category Category
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q (category %s)", e.BaseForm, e.Category)
}

// UnknownLanguageError is returned by a Registry when no rule set is
// registered for a language code.
type UnknownLanguageError struct {
	Language string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("no morphology rule set for language %q", e.Language)
}

// MissingFeatureError is returned when a feature without a documented
// fallback is read but absent.
type MissingFeatureError struct {
	Key string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing feature %q", e.Key)
}
