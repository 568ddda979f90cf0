package writer

import (
	"sort"

	"github.com/ozkanacar/bolumrag/internal/util"
)

// turkishSuffixes are common inflectional endings, matched longest first so
// a longer suffix is never shadowed by one of its tails.
var turkishSuffixes = []string{
	"larında", "lerinde", "sından", "sinden",
	"ımızda", "inizde",
	"ları", "leri", "ımız", "iniz",
	"ında", "inde", "ına", "ine",
	"dan", "den", "tan", "ten",
	"lar", "ler", "sız", "siz",
	"da", "de", "ta", "te",
	"ım", "im", "um", "üm",
	"la", "le", "ca", "ce",
	"ı", "i", "u", "ü",
}

// Stemmer strips a single Turkish suffix from a word. It trades linguistic
// accuracy for determinism; roots shorter than two runes are never produced.
type Stemmer struct {
	minWordLength int
	suffixes      []string
}

// NewStemmer returns a stemmer that leaves words shorter than minWordLength
// runes untouched. A minWordLength below 1 defaults to 3.
func NewStemmer(minWordLength int) *Stemmer {
	if minWordLength < 1 {
		minWordLength = 3
	}
	sorted := make([]string, len(turkishSuffixes))
	copy(sorted, turkishSuffixes)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return &Stemmer{minWordLength: minWordLength, suffixes: sorted}
}

// Stem removes the first (longest) matching suffix from word. The word is
// lowercased with Turkish rules before matching.
func (s *Stemmer) Stem(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	if len(runes) < s.minWordLength {
		return word
	}

	stemmed := util.LowerTurkish(word)
	for _, suffix := range s.suffixes {
		if hasSuffix(stemmed, suffix) {
			root := stemmed[:len(stemmed)-len(suffix)]
			if len([]rune(root)) >= 2 {
				return root
			}
		}
	}
	return stemmed
}

// StemTerms maps Stem over every term, preserving order.
func (s *Stemmer) StemTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		out = append(out, s.Stem(term))
	}
	return out
}

func hasSuffix(word, suffix string) bool {
	return len(word) >= len(suffix) && word[len(word)-len(suffix):] == suffix
}
