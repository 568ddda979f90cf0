// Package writer turns a raw question into the ordered, deduplicated term
// list consumed by retrieval.
package writer

import (
	"strings"
	"unicode"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// Heuristic normalises, tokenises, stop-word-filters, and intent-boosts a
// question. Output order is first-seen order with later duplicates dropped.
type Heuristic struct {
	stopwords map[string]struct{}
	boosters  map[model.Intent][]string
	topN      int
	stemmer   *Stemmer
}

// Option configures the writer beyond its required inputs.
type Option func(*Heuristic)

// WithTopN caps the term list at n entries after boosters are appended.
// Zero or negative means no cap.
func WithTopN(n int) Option {
	return func(w *Heuristic) { w.topN = n }
}

// WithStemmer enables suffix stemming of question tokens. Boosters are
// appended as-is.
func WithStemmer(s *Stemmer) Option {
	return func(w *Heuristic) { w.stemmer = s }
}

// NewHeuristic builds a writer. Stopwords are expected pre-lowercased by
// LoadStopwords; booster terms are lowercased here so lookups downstream
// work on normalised text.
func NewHeuristic(stopwords map[string]struct{}, boosters map[model.Intent][]string, opts ...Option) *Heuristic {
	w := &Heuristic{
		stopwords: stopwords,
		boosters:  make(map[model.Intent][]string, len(boosters)),
	}
	if w.stopwords == nil {
		w.stopwords = make(map[string]struct{})
	}
	for intent, terms := range boosters {
		lowered := make([]string, 0, len(terms))
		for _, term := range terms {
			if strings.TrimSpace(term) == "" {
				continue
			}
			lowered = append(lowered, util.LowerTurkish(term))
		}
		w.boosters[intent] = lowered
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write produces the term list for a question and its detected intent.
// Blank questions yield an empty list. Boosters for Unknown or unmapped
// intents add nothing.
func (w *Heuristic) Write(question string, detected model.Intent) []string {
	if strings.TrimSpace(question) == "" {
		return nil
	}

	cleaned := stripNonAlphanumeric(util.LowerTurkish(question))

	seen := make(map[string]struct{})
	var terms []string
	appendTerm := func(token string) {
		if token == "" {
			return
		}
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
	}

	for _, token := range strings.Fields(cleaned) {
		if _, stop := w.stopwords[token]; stop {
			continue
		}
		if w.stemmer != nil {
			token = w.stemmer.Stem(token)
		}
		appendTerm(token)
	}

	for _, booster := range w.boosters[detected] {
		appendTerm(booster)
	}

	if w.topN > 0 && len(terms) > w.topN {
		terms = terms[:w.topN]
	}
	return terms
}

// stripNonAlphanumeric replaces every rune that is not a Unicode letter or
// digit with a space, so Turkish letters survive while punctuation becomes
// token boundaries.
func stripNonAlphanumeric(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, text)
}
