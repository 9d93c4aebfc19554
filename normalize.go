package realiser

import "strings"

// foldReplacer strips the accents and expands the ligatures that occur
// in French headwords, so that lookups tolerate unaccented input.
var foldReplacer = strings.NewReplacer(
	// lowercase accents
	"à", "a", // à → a
	"â", "a", // â → a
	"ä", "a", // ä → a
	"ç", "c", // ç → c
	"è", "e", // è → e
	"é", "e", // é → e
	"ê", "e", // ê → e
	"ë", "e", // ë → e
	"î", "i", // î → i
	"ï", "i", // ï → i
	"ô", "o", // ô → o
	"ö", "o", // ö → o
	"ù", "u", // ù → u
	"û", "u", // û → u
	"ü", "u", // ü → u
	"ÿ", "y", // ÿ → y
	// uppercase accents
	"À", "A", // À → A
	"Â", "A", // Â → A
	"Ä", "A", // Ä → A
	"Ç", "C", // Ç → C
	"È", "E", // È → E
	"É", "E", // É → E
	"Ê", "E", // Ê → E
	"Ë", "E", // Ë → E
	"Î", "I", // Î → I
	"Ï", "I", // Ï → I
	"Ô", "O", // Ô → O
	"Ö", "O", // Ö → O
	"Ù", "U", // Ù → U
	"Û", "U", // Û → U
	"Ü", "U", // Ü → U
	// ligatures
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
)

// Fold strips accents and expands ligatures in s.
func Fold(s string) string {
	return foldReplacer.Replace(s)
}

// NormalizeKey returns the canonical lexicon lookup key for a form:
// folded, lowercased, with surrounding space removed.
func NormalizeKey(s string) string {
	return strings.ToLower(Fold(strings.TrimSpace(s)))
}
