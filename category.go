package realiser

import "strings"

// Category represents the lexical category of a word.
type Category string

const (
	// CategoryAny is the wildcard category: it matches every entry during
	// lexicon lookup and is never emitted in record exports.
	CategoryAny        Category = "ANY"
	CategoryNoun       Category = "NOUN"
	CategoryVerb       Category = "VERB"
	CategoryAdjective  Category = "ADJECTIVE"
	CategoryAdverb     Category = "ADVERB"
	CategoryPronoun    Category = "PRONOUN"
	CategoryDeterminer Category = "DETERMINER"
)

// categories lists every known category, wildcard excluded.
var categories = []Category{
	CategoryNoun,
	CategoryVerb,
	CategoryAdjective,
	CategoryAdverb,
	CategoryPronoun,
	CategoryDeterminer,
}

// ParseCategory maps a category name to its Category, case-insensitively.
// The empty string and unknown names map to CategoryAny with ok=false.
func ParseCategory(s string) (cat Category, ok bool) {
	up := Category(strings.ToUpper(strings.TrimSpace(s)))
	if up == CategoryAny {
		return CategoryAny, true
	}
	for _, c := range categories {
		if up == c {
			return c, true
		}
	}
	return CategoryAny, false
}

// Matches reports whether c accepts other during lexicon lookup.
// The wildcard on either side accepts everything.
func (c Category) Matches(other Category) bool {
	return c == CategoryAny || other == CategoryAny || c == other
}

// String returns the category name.
func (c Category) String() string {
	if c == "" {
		return string(CategoryAny)
	}
	return string(c)
}
