package realiser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// xmlLexicon mirrors the on-disk lexicon format:
//
//	<lexicon language="fr">
//	  <word>
//	    <base>cheval</base>
//	    <category>noun</category>
//	    <id>n2</id>
//	    <plural>chevaux</plural>
//	  </word>
//	</lexicon>
type xmlLexicon struct {
	XMLName  xml.Name  `xml:"lexicon"`
	Language string    `xml:"language,attr"`
	Words    []xmlWord `xml:"word"`
}

type xmlWord struct {
	Base        string   `xml:"base"`
	Category    string   `xml:"category"`
	ID          string   `xml:"id"`
	Plural      string   `xml:"plural"`
	Feminine    string   `xml:"feminine"`
	Default     string   `xml:"default"`
	Variants    []string `xml:"variant"`
	Inflections []string `xml:"inflection"`
	NonMorph    bool     `xml:"non_morph"`
}

// ParseLexicon reads an XML lexicon from r and returns a populated
// MemLexicon. Word entries without an <id> get a generated one.
func ParseLexicon(r io.Reader) (*MemLexicon, error) {
	var doc xmlLexicon
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}

	lex := NewMemLexicon(doc.Language)
	for i, xw := range doc.Words {
		if xw.Base == "" {
			return nil, fmt.Errorf("lexicon word %d: missing base form", i)
		}
		cat, _ := ParseCategory(xw.Category)
		w := NewWord(xw.Base, cat, xw.ID)
		if xw.Plural != "" {
			w.Features[FeaturePlural] = xw.Plural
		}
		if xw.Feminine != "" {
			w.Features[FeatureFeminine] = xw.Feminine
		}
		if xw.Default != "" {
			w.SetDefaultSpelling(xw.Default)
		}
		if len(xw.Variants) > 0 {
			w.SetSpellingVariants(xw.Variants...)
		}
		if len(xw.Inflections) > 0 {
			w.SetInflections(xw.Inflections...)
		}
		if xw.NonMorph {
			w.Features[FeatureNonMorphological] = true
		}
		lex.Add(w)
	}
	return lex, nil
}

// LoadLexicon reads an XML lexicon file from path.
func LoadLexicon(path string) (*MemLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return ParseLexicon(f)
}
