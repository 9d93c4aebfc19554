package realiser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"voiture", "voiture"},
		{"Voiture", "voiture"},
		{"éléphant", "elephant"},
		{"Évêque", "eveque"},
		{"garçon", "garcon"},
		{"œil", "oeil"},
		{"  maïs ", "mais"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemLexiconFirst(t *testing.T) {
	lex := NewMemLexicon("fr")
	voiture := lex.Add(NewWord("voiture", CategoryNoun, "n1"))
	le := lex.Add(NewWord("le", CategoryDeterminer, "d1"))

	got, err := lex.First("voiture", CategoryNoun)
	require.NoError(t, err)
	assert.Same(t, voiture, got)

	// Accent- and case-insensitive lookup.
	got, err = lex.First("VOITURE", CategoryAny)
	require.NoError(t, err)
	assert.Same(t, voiture, got)

	// Category filtering.
	_, err = lex.First("le", CategoryNoun)
	var unknown *UnknownWordError
	require.ErrorAs(t, err, &unknown)

	got, err = lex.First("le", CategoryAny)
	require.NoError(t, err)
	assert.Same(t, le, got)
}

func TestMemLexiconWildcardEntry(t *testing.T) {
	lex := NewMemLexicon("fr")
	w := lex.Add(NewWord("bref", CategoryAny, "x1"))

	// A wildcard entry matches any requested category.
	got, err := lex.First("bref", CategoryAdverb)
	require.NoError(t, err)
	assert.Same(t, w, got)
}

func TestMemLexiconSpellingVariantLookup(t *testing.T) {
	lex := NewMemLexicon("fr")
	w := NewWord("oeil", CategoryNoun, "n4")
	w.SetDefaultSpelling("œil")
	w.SetSpellingVariants("oeil")
	lex.Add(w)

	got, err := lex.First("œil", CategoryNoun)
	require.NoError(t, err)
	assert.Same(t, w, got)
}

func TestMemLexiconGeneratesID(t *testing.T) {
	lex := NewMemLexicon("fr")
	w := lex.Add(NewWord("voiture", CategoryNoun, ""))

	require.NotEmpty(t, w.ID)
	assert.Same(t, w, lex.ByID(w.ID))
	assert.Same(t, lex, w.Lexicon().(*MemLexicon))
}

const lexiconXML = `<?xml version="1.0" encoding="UTF-8"?>
<lexicon language="fr">
  <word>
    <base>voiture</base>
    <category>noun</category>
    <id>n1</id>
  </word>
  <word>
    <base>cheval</base>
    <category>noun</category>
    <id>n2</id>
    <plural>chevaux</plural>
  </word>
  <word>
    <base>oeil</base>
    <category>noun</category>
    <default>œil</default>
    <variant>oeil</variant>
    <plural>yeux</plural>
  </word>
  <word>
    <base>tout de suite</base>
    <category>adverb</category>
    <id>adv1</id>
    <non_morph>true</non_morph>
  </word>
</lexicon>`

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon(strings.NewReader(lexiconXML))
	require.NoError(t, err)

	assert.Equal(t, "fr", lex.Language())
	assert.Equal(t, 4, lex.Len())

	cheval, err := lex.First("cheval", CategoryNoun)
	require.NoError(t, err)
	assert.Equal(t, "n2", cheval.ID)
	assert.Equal(t, "chevaux", cheval.Features[FeaturePlural])

	oeil, err := lex.First("oeil", CategoryNoun)
	require.NoError(t, err)
	assert.Equal(t, "œil", oeil.DefaultSpelling())
	assert.NotEmpty(t, oeil.ID, "missing id gets generated")

	idiom, err := lex.First("tout de suite", CategoryAdverb)
	require.NoError(t, err)
	assert.True(t, idiom.Features.Flag(FeatureNonMorphological))
}

func TestParseLexiconMissingBase(t *testing.T) {
	_, err := ParseLexicon(strings.NewReader(
		`<lexicon language="fr"><word><category>noun</category></word></lexicon>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing base form")
}

func TestParseLexiconEndToEnd(t *testing.T) {
	lex, err := ParseLexicon(strings.NewReader(lexiconXML))
	require.NoError(t, err)
	rs := New(lex, DefaultRegistry())

	got, err := rs.RealiseWord("oeil", CategoryNoun, FeatureSet{FeatureNumber: Plural})
	require.NoError(t, err)
	assert.Equal(t, "yeux", got.Value)
}
