package realiser

// RealisedString is the terminal output of realization: a final surface
// form, optionally linked to the inflected word that produced it.
// It is immutable once produced; the only sanctioned post-construction
// write is the discourse-function propagation on the non-morphological
// path, which happens before the value is handed out.
type RealisedString struct {
	// Value is the final surface form.
	Value string

	source   *InflectedWord
	features FeatureSet
}

// NewRealisedString creates a RealisedString with the given surface form
// and originating inflected word (nil for a root word realized without
// any inflection context).
func NewRealisedString(value string, source *InflectedWord) *RealisedString {
	return &RealisedString{
		Value:    value,
		source:   source,
		features: FeatureSet{},
	}
}

// Source returns the inflected word this string was realized from,
// nil when the word was realized without inflection context.
func (s *RealisedString) Source() *InflectedWord {
	return s.source
}

// Feature returns the value of a feature carried forward onto the
// realized string (currently only the discourse function).
func (s *RealisedString) Feature(key string) (any, bool) {
	v, ok := s.features[key]
	return v, ok
}

// setFeature records a carried-forward feature.
func (s *RealisedString) setFeature(key string, value any) {
	s.features[key] = value
}

// String returns the surface form.
func (s *RealisedString) String() string {
	return s.Value
}
