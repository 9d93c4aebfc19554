package realiser

import "reflect"

// Feature keys understood by the core. Values are free-form; the variant
// lists always hold []string once written through the Word setters.
const (
	// FeatureDefaultInflection names the inflection paradigm to prefer.
	FeatureDefaultInflection = "default_inflection"
	// FeatureInflections holds the list of inflection variants ([]string).
	FeatureInflections = "inflections"
	// FeatureSpellingVariants holds alternate spellings ([]string).
	FeatureSpellingVariants = "spelling_variants"
	// FeatureDefaultSpelling is the preferred spelling; reads fall back to
	// the word's base form when unset.
	FeatureDefaultSpelling = "default_spelling"

	// FeatureElided suppresses realization of the element entirely.
	FeatureElided = "elided"
	// FeatureNonMorphological exempts the element from morphology
	// (fixed idioms and the like are realized verbatim).
	FeatureNonMorphological = "non_morph"
	// FeatureDiscourseFunction tags the syntactic role the realized
	// element plays; higher realization stages depend on it.
	FeatureDiscourseFunction = "discourse_function"
	// FeatureLanguage overrides the owning lexicon's language code.
	FeatureLanguage = "language"

	FeatureNumber      = "number"
	FeatureGender      = "gender"
	FeaturePlural      = "plural"
	FeatureFeminine    = "feminine"
	FeatureComparative = "is_comparative"
	FeatureSuperlative = "is_superlative"
)

// Common feature values.
const (
	Singular  = "singular"
	Plural    = "plural"
	Masculine = "masculine"
	Feminine  = "feminine"
)

// FeatureSet maps feature names to values.
type FeatureSet map[string]any

// Copy returns an independent shallow copy of fs.
func (fs FeatureSet) Copy() FeatureSet {
	out := make(FeatureSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// Merge overlays the given features onto fs in place; overlay wins.
func (fs FeatureSet) Merge(overlay FeatureSet) {
	for k, v := range overlay {
		fs[k] = v
	}
}

// Get returns the value for key, or MissingFeatureError when absent.
func (fs FeatureSet) Get(key string) (any, error) {
	v, ok := fs[key]
	if !ok {
		return nil, &MissingFeatureError{Key: key}
	}
	return v, nil
}

// GetString returns the value for key as a string.
// A missing key or a non-string value yields MissingFeatureError.
func (fs FeatureSet) GetString(key string) (string, error) {
	v, ok := fs[key]
	if !ok {
		return "", &MissingFeatureError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MissingFeatureError{Key: key}
	}
	return s, nil
}

// GetStrings returns the value for key as a string list, lifting a scalar
// string to a one-element list. Missing keys yield MissingFeatureError.
func (fs FeatureSet) GetStrings(key string) ([]string, error) {
	v, ok := fs[key]
	if !ok {
		return nil, &MissingFeatureError{Key: key}
	}
	switch t := v.(type) {
	case []string:
		return t, nil
	case string:
		return []string{t}, nil
	default:
		return nil, &MissingFeatureError{Key: key}
	}
}

// Flag reports whether the boolean feature key is set and true.
// Absent flags read as false.
func (fs FeatureSet) Flag(key string) bool {
	b, _ := fs[key].(bool)
	return b
}

// Is reports whether the feature key holds exactly the string value.
func (fs FeatureSet) Is(key, value string) bool {
	s, _ := fs[key].(string)
	return s == value
}

// Equal reports deep value equality between fs and other.
func (fs FeatureSet) Equal(other FeatureSet) bool {
	if len(fs) != len(other) {
		return false
	}
	if len(fs) == 0 {
		return true
	}
	return reflect.DeepEqual(map[string]any(fs), map[string]any(other))
}
