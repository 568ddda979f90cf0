// Package reranker rescales retrieval scores and applies proximity and
// title bonuses.
package reranker

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// Defaults used when the configuration leaves a parameter unset.
const (
	DefaultProximityWindow = 15
	DefaultProximityBonus  = 5
	DefaultTitleBoost      = 3
)

// Simple recomputes hit scores as base×10 plus bonuses. Incoming hits are
// never mutated; hits whose chunk cannot be resolved are dropped.
type Simple struct {
	proximityWindow int
	proximityBonus  int
	titleBoost      int
}

// NewSimple builds a reranker. Non-positive parameters fall back to the
// defaults.
func NewSimple(proximityWindow, proximityBonus, titleBoost int) *Simple {
	if proximityWindow <= 0 {
		proximityWindow = DefaultProximityWindow
	}
	if proximityBonus <= 0 {
		proximityBonus = DefaultProximityBonus
	}
	if titleBoost <= 0 {
		titleBoost = DefaultTitleBoost
	}
	return &Simple{
		proximityWindow: proximityWindow,
		proximityBonus:  proximityBonus,
		titleBoost:      titleBoost,
	}
}

// Rerank rescales every resolvable hit and re-sorts the result in the
// canonical hit order. Nil or empty input yields an empty result.
func (r *Simple) Rerank(terms []string, hits []model.Hit, chunkStore *store.ChunkStore) []model.Hit {
	if len(hits) == 0 || chunkStore == nil {
		return nil
	}

	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		lowered = append(lowered, util.LowerTurkish(term))
	}

	reranked := make([]model.Hit, 0, len(hits))
	for _, hit := range hits {
		chunk, ok := chunkStore.Get(hit.DocID, hit.ChunkID)
		if !ok {
			continue
		}

		score := hit.Score * 10
		if len(lowered) >= 2 && r.termsWithinWindow(util.LowerTurkish(chunk.Text), lowered) {
			score += r.proximityBonus
		}
		if title, ok := chunkStore.DocumentTitle(chunk.DocID); ok {
			if titleContainsAny(util.LowerTurkish(title), lowered) {
				score += r.titleBoost
			}
		}

		reranked = append(reranked, model.Hit{DocID: hit.DocID, ChunkID: hit.ChunkID, Score: score})
	}

	model.SortHits(reranked)
	return reranked
}

// termsWithinWindow reports whether any two term occurrences, across all
// terms, lie within the proximity window. Positions are rune offsets and the
// scan advances one rune at a time, so overlapping occurrences count. Two
// occurrences of the same term may trigger the bonus.
func (r *Simple) termsWithinWindow(text string, terms []string) bool {
	var positions []int
	for _, term := range terms {
		positions = append(positions, termPositions(text, term)...)
	}
	if len(positions) < 2 {
		return false
	}
	sort.Ints(positions)
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] <= r.proximityWindow {
			return true
		}
	}
	return false
}

// termPositions collects the rune offset of every occurrence of term in
// text, including overlapping ones.
func termPositions(text, term string) []int {
	if term == "" {
		return nil
	}
	var out []int
	runePos := 0
	for byteIdx := 0; byteIdx < len(text); {
		if strings.HasPrefix(text[byteIdx:], term) {
			out = append(out, runePos)
		}
		_, size := utf8.DecodeRuneInString(text[byteIdx:])
		byteIdx += size
		runePos++
	}
	return out
}

// titleContainsAny applies the title boost test: at least one query term is
// a substring of the lowercased title. The boost is granted once regardless
// of how many terms match.
func titleContainsAny(title string, terms []string) bool {
	if title == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}
