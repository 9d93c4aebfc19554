package realiser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralizeNoun(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"voiture", "voitures"},
		{"journal", "journaux"},
		{"bal", "bals"},
		{"travail", "travaux"},
		{"détail", "détails"},
		{"tuyau", "tuyaux"},
		{"jeu", "jeux"},
		{"pneu", "pneus"},
		{"bijou", "bijoux"},
		{"trou", "trous"},
		{"bus", "bus"},
		{"voix", "voix"},
		{"nez", "nez"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PluralizeNoun(tt.in); got != tt.want {
			t.Errorf("PluralizeNoun(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFeminizeAdjective(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grand", "grande"},
		{"jeune", "jeune"},
		{"premier", "première"},
		{"heureux", "heureuse"},
		{"menteur", "menteuse"},
		{"neuf", "neuve"},
		{"blanc", "blanche"},
		{"cruel", "cruelle"},
		{"bon", "bonne"},
		{"muet", "muette"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FeminizeAdjective(tt.in); got != tt.want {
			t.Errorf("FeminizeAdjective(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFrenchNounPrefersIrregular(t *testing.T) {
	base := NewWord("cheval", CategoryNoun, "n2")
	base.Features[FeaturePlural] = "chevaux"

	got, err := FrenchRules{}.Noun(FeatureSet{FeatureNumber: Plural}, base)
	require.NoError(t, err)
	assert.Equal(t, "chevaux", got)

	// A request-level override beats the entry's own irregular.
	got, err = FrenchRules{}.Noun(FeatureSet{
		FeatureNumber: Plural,
		FeaturePlural: "chevals",
	}, base)
	require.NoError(t, err)
	assert.Equal(t, "chevals", got)
}

func TestFrenchNounUsesDefaultSpelling(t *testing.T) {
	base := NewWord("oeil", CategoryNoun, "n4")
	base.SetDefaultSpelling("œil")

	got, err := FrenchRules{}.Noun(FeatureSet{}, base)
	require.NoError(t, err)
	assert.Equal(t, "œil", got)
}

func TestFrenchAdjectiveComparison(t *testing.T) {
	base := NewWord("grand", CategoryAdjective, "a1")

	tests := []struct {
		name     string
		features FeatureSet
		want     string
	}{
		{"comparative", FeatureSet{FeatureComparative: true}, "plus grand"},
		{"superlative masculine", FeatureSet{FeatureSuperlative: true}, "le plus grand"},
		{"superlative feminine",
			FeatureSet{FeatureSuperlative: true, FeatureGender: Feminine}, "la plus grande"},
		{"superlative plural",
			FeatureSet{FeatureSuperlative: true, FeatureNumber: Plural}, "les plus grands"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrenchRules{}.Adjective(tt.features, base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrenchDeterminer(t *testing.T) {
	tests := []struct {
		base     string
		features FeatureSet
		want     string
	}{
		{"le", nil, "le"},
		{"le", FeatureSet{FeatureGender: Feminine}, "la"},
		{"le", FeatureSet{FeatureNumber: Plural}, "les"},
		{"la", FeatureSet{FeatureNumber: Plural}, "les"},
		{"un", FeatureSet{FeatureGender: Feminine}, "une"},
		{"un", FeatureSet{FeatureNumber: Plural}, "des"},
		{"ce", FeatureSet{FeatureGender: Feminine}, "cette"},
		{"mon", FeatureSet{FeatureNumber: Plural}, "mes"},
		{"notre", FeatureSet{FeatureNumber: Plural}, "nos"},
		// Unknown determiners pass through unchanged.
		{"chaque", FeatureSet{FeatureNumber: Plural}, "chaque"},
	}
	for _, tt := range tests {
		base := NewWord(tt.base, CategoryDeterminer, "")
		got, err := FrenchRules{}.Determiner(tt.features, base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "base %q features %v", tt.base, tt.features)
	}
}
