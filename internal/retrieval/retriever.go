// Package retrieval scores chunks against query terms by term-frequency sum.
package retrieval

import (
	"strings"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// KeywordRetriever scans every chunk and scores it by the summed
// non-overlapping occurrence counts of the query terms.
type KeywordRetriever struct {
	topK int
}

// NewKeywordRetriever builds a retriever that returns at most topK hits.
// A non-positive topK falls back to 10.
func NewKeywordRetriever(topK int) *KeywordRetriever {
	if topK <= 0 {
		topK = 10
	}
	return &KeywordRetriever{topK: topK}
}

// Retrieve returns hits ordered by (score desc, docID asc, chunkID asc),
// truncated to topK. Chunks scoring zero are skipped; an empty term list
// yields an empty result.
func (r *KeywordRetriever) Retrieve(terms []string, chunkStore *store.ChunkStore) []model.Hit {
	if len(terms) == 0 || chunkStore == nil {
		return nil
	}

	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		lowered = append(lowered, util.LowerTurkish(term))
	}
	if len(lowered) == 0 {
		return nil
	}

	var hits []model.Hit
	for _, chunk := range chunkStore.All() {
		text := util.LowerTurkish(chunk.Text)
		score := 0
		for _, term := range lowered {
			// strings.Count advances past each match, so occurrences
			// never overlap.
			score += strings.Count(text, term)
		}
		if score == 0 {
			continue
		}
		hits = append(hits, model.Hit{DocID: chunk.DocID, ChunkID: chunk.ChunkID, Score: score})
	}

	model.SortHits(hits)
	if len(hits) > r.topK {
		hits = hits[:r.topK]
	}
	return hits
}
