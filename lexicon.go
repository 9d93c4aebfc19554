package realiser

import "github.com/google/uuid"

// Lexicon is the collection of lexical entries for one language,
// providing lookup by headword and category.
type Lexicon interface {
	// First returns the first entry matching the base form and
	// category, or UnknownWordError. CategoryAny matches every entry.
	First(baseForm string, category Category) (*Word, error)
	// Language returns the lexicon's language code.
	Language() string
}

// MemLexicon is an in-memory Lexicon. Entries are indexed under
// normalized keys (see NormalizeKey) for both their base form and all
// their spelling variants, so lookups tolerate case and accents.
//
// A MemLexicon is written once, when loaded, and read-only afterwards;
// realization over it is safe from many goroutines only under that
// single-writer-then-many-readers discipline.
type MemLexicon struct {
	lang string

	// entries maps NormalizeKey(form) → matching words, in insertion order.
	entries map[string][]*Word
	// byID maps entry ID → word.
	byID map[string]*Word
	// count is the number of distinct entries added.
	count int
}

// NewMemLexicon creates an empty MemLexicon for the given language code.
func NewMemLexicon(lang string) *MemLexicon {
	return &MemLexicon{
		lang:    lang,
		entries: make(map[string][]*Word),
		byID:    make(map[string]*Word),
	}
}

// Language returns the lexicon's language code.
func (l *MemLexicon) Language() string {
	return l.lang
}

// Add inserts a word, taking ownership: the word's lexicon backref is
// set, a missing ID is generated, and the word is indexed under its
// base form, its default spelling and all its spelling variants.
// Add returns the word for chaining.
func (l *MemLexicon) Add(w *Word) *Word {
	w.SetLexicon(l)
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	l.byID[w.ID] = w
	l.count++

	l.index(w.BaseForm, w)
	l.index(w.DefaultSpelling(), w)
	if variants, err := w.SpellingVariants(); err == nil {
		for _, v := range variants {
			l.index(v, w)
		}
	}
	return w
}

// index registers w under the normalized key of form, once.
func (l *MemLexicon) index(form string, w *Word) {
	if form == "" {
		return
	}
	key := NormalizeKey(form)
	for _, existing := range l.entries[key] {
		if existing == w {
			return
		}
	}
	l.entries[key] = append(l.entries[key], w)
}

// First returns the first entry matching the base form and category.
// A miss yields UnknownWordError.
func (l *MemLexicon) First(baseForm string, category Category) (*Word, error) {
	for _, w := range l.entries[NormalizeKey(baseForm)] {
		if category.Matches(w.Category) {
			return w, nil
		}
	}
	return nil, &UnknownWordError{BaseForm: baseForm, Category: category}
}

// ByID returns the entry with the given ID, nil when absent.
func (l *MemLexicon) ByID(id string) *Word {
	return l.byID[id]
}

// Len returns the number of entries added.
func (l *MemLexicon) Len() int {
	return l.count
}
