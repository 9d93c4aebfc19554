package realiser

import "strings"

// FrenchRules is the built-in MorphologyRules implementation for French,
// registered under "fr". An irregular form supplied through features
// (request overrides first, then the base entry) always wins over the
// regular rules, and the regular rules only ever see the entry's
// default spelling.
type FrenchRules struct{}

// irregular returns the irregular form stored under key, checking the
// request features first and the base entry second.
func irregular(features FeatureSet, base *Word, key string) (string, bool) {
	if s, err := features.GetString(key); err == nil && s != "" {
		return s, true
	}
	if base != nil {
		if s, err := base.Features.GetString(key); err == nil && s != "" {
			return s, true
		}
	}
	return "", false
}

// Noun applies number agreement. A missing number feature realizes the
// singular.
func (FrenchRules) Noun(features FeatureSet, base *Word) (string, error) {
	form := base.DefaultSpelling()
	if !features.Is(FeatureNumber, Plural) {
		return form, nil
	}
	if irr, ok := irregular(features, base, FeaturePlural); ok {
		return irr, nil
	}
	return PluralizeNoun(form), nil
}

// Adjective applies gender and number agreement, then comparison.
// Comparison is periphrastic: "plus X" for the comparative, "le plus X"
// (agreeing article) for the superlative.
func (FrenchRules) Adjective(features FeatureSet, base *Word) (string, error) {
	form := base.DefaultSpelling()
	feminine := features.Is(FeatureGender, Feminine)
	plural := features.Is(FeatureNumber, Plural)

	if feminine {
		if irr, ok := irregular(features, base, FeatureFeminine); ok {
			form = irr
		} else {
			form = FeminizeAdjective(form)
		}
	}
	if plural {
		if irr, ok := irregular(features, base, FeaturePlural); ok && !feminine {
			form = irr
		} else {
			form = PluralizeNoun(form)
		}
	}

	switch {
	case features.Flag(FeatureSuperlative):
		form = superlativeArticle(feminine, plural) + " plus " + form
	case features.Flag(FeatureComparative):
		form = "plus " + form
	}
	return form, nil
}

// Determiner applies gender and number agreement through the article
// tables. Determiners not in the tables are realized unchanged.
func (FrenchRules) Determiner(features FeatureSet, base *Word) (string, error) {
	form := base.DefaultSpelling()
	plural := features.Is(FeatureNumber, Plural)

	if features.Is(FeatureGender, Feminine) && !plural {
		if f, ok := feminineDeterminers[strings.ToLower(form)]; ok {
			form = f
		}
	}
	if plural {
		if p, ok := pluralDeterminers[strings.ToLower(form)]; ok {
			form = p
		}
	}
	return form, nil
}

// pluralALExceptions take a regular -s instead of -aux.
var pluralALExceptions = map[string]bool{
	"bal": true, "carnaval": true, "chacal": true,
	"festival": true, "récital": true, "régal": true,
}

// pluralAILToAux switch -ail for -aux.
var pluralAILToAux = map[string]bool{
	"bail": true, "corail": true, "émail": true,
	"travail": true, "vantail": true, "vitrail": true,
}

// pluralEUExceptions take -s instead of -x.
var pluralEUExceptions = map[string]bool{
	"bleu": true, "pneu": true, "émeu": true,
}

// pluralOUToX take -x instead of -s.
var pluralOUToX = map[string]bool{
	"bijou": true, "caillou": true, "chou": true, "genou": true,
	"hibou": true, "joujou": true, "pou": true,
}

// PluralizeNoun returns the regular French plural of a singular form.
// Irregular plurals are the lexicon's business (FeaturePlural); this
// covers the productive patterns only.
func PluralizeNoun(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"):
		return s
	case pluralALExceptions[lower], pluralEUExceptions[lower]:
		return s + "s"
	case pluralOUToX[lower]:
		return s + "x"
	case pluralAILToAux[lower]:
		return s[:len(s)-len("ail")] + "aux"
	case strings.HasSuffix(lower, "al"):
		return s[:len(s)-len("al")] + "aux"
	case strings.HasSuffix(lower, "au"), strings.HasSuffix(lower, "eu"):
		return s + "x"
	default:
		return s + "s"
	}
}

// feminizeDoubling lists endings whose final consonant doubles before
// the feminine -e.
var feminizeDoubling = []string{"el", "en", "on", "et"}

// FeminizeAdjective returns the regular feminine of a masculine
// adjective form.
func FeminizeAdjective(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "e"):
		return s
	case strings.HasSuffix(lower, "er"):
		return s[:len(s)-len("er")] + "ère"
	case strings.HasSuffix(lower, "eux"), strings.HasSuffix(lower, "eur"):
		return s[:len(s)-len("eux")] + "euse"
	case strings.HasSuffix(lower, "f"):
		return s[:len(s)-len("f")] + "ve"
	case strings.HasSuffix(lower, "c"):
		return s[:len(s)-len("c")] + "che"
	default:
		for _, end := range feminizeDoubling {
			if strings.HasSuffix(lower, end) {
				return s + end[len(end)-1:] + "e"
			}
		}
		return s + "e"
	}
}

// feminineDeterminers maps masculine singular determiners to their
// feminine singular forms.
var feminineDeterminers = map[string]string{
	"le": "la", "un": "une", "ce": "cette", "cet": "cette",
	"mon": "ma", "ton": "ta", "son": "sa", "du": "de la",
}

// pluralDeterminers maps singular determiners to their plural forms.
var pluralDeterminers = map[string]string{
	"le": "les", "la": "les", "l'": "les",
	"un": "des", "une": "des",
	"ce": "ces", "cet": "ces", "cette": "ces",
	"mon": "mes", "ma": "mes", "ton": "tes", "ta": "tes",
	"son": "ses", "sa": "ses",
	"notre": "nos", "votre": "vos", "leur": "leurs",
	"du": "des", "de la": "des",
}

// superlativeArticle returns the agreeing article for the French
// periphrastic superlative.
func superlativeArticle(feminine, plural bool) string {
	switch {
	case plural:
		return "les"
	case feminine:
		return "la"
	default:
		return "le"
	}
}
