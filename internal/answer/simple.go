package answer

import (
	"fmt"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
)

// Simple is the baseline agent variant. It cites at sentence granularity:
// the citation offsets are the chunk start offset plus the selected
// sentence's position inside the chunk text.
type Simple struct{}

// NewSimple returns the baseline answer agent.
func NewSimple() *Simple { return &Simple{} }

// Answer implements Agent.
func (s *Simple) Answer(terms []string, hits []model.Hit, chunkStore *store.ChunkStore) model.Answer {
	if len(hits) == 0 {
		return model.Answer{Text: NoAnswerText}
	}

	chunk, ok := chunkStore.Get(hits[0].DocID, hits[0].ChunkID)
	if !ok {
		return model.Answer{Text: NoChunkText}
	}

	sent, found := selectBest(chunk.Text, terms)
	if !found {
		return model.Answer{Text: NoContentText}
	}

	citation := fmt.Sprintf("%s:%s:%d-%d",
		chunk.DocID,
		chunk.SectionID,
		chunk.StartOffset+sent.start,
		chunk.StartOffset+sent.end)

	text := fmt.Sprintf("Your answer: %s. See: %s", sent.text, citation)
	return model.Answer{Text: text, Citations: []string{citation}}
}
