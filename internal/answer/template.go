package answer

import (
	"fmt"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
)

// Template answers with the best sentence of the top chunk, prefixed with a
// source description, plus up to three chunk-level citations.
type Template struct{}

// NewTemplate returns the template answer agent.
func NewTemplate() *Template { return &Template{} }

// Answer implements Agent.
func (t *Template) Answer(terms []string, hits []model.Hit, chunkStore *store.ChunkStore) model.Answer {
	if len(hits) == 0 {
		return model.Answer{Text: NoAnswerText}
	}

	best, ok := chunkStore.Get(hits[0].DocID, hits[0].ChunkID)
	if !ok {
		return model.Answer{Text: NoChunkText}
	}

	bestSentence := NoContentText
	if sent, found := selectBest(best.Text, terms); found {
		bestSentence = sent.text
	}

	var source string
	if title, ok := chunkStore.DocumentTitle(best.DocID); ok && title != "" {
		source = fmt.Sprintf("Bu cevap %q başlıklı belgenin %s bölümünden alınmıştır.", title, best.SectionID)
	} else {
		source = fmt.Sprintf("Bu cevap %s belgesinin %s bölümünden alınmıştır.", best.DocID, best.SectionID)
	}
	text := fmt.Sprintf("%s Cevabınız: %s", source, bestSentence)

	var citations []string
	for i := 0; i < len(hits) && i < 3; i++ {
		if chunk, ok := chunkStore.Get(hits[i].DocID, hits[i].ChunkID); ok {
			citations = append(citations, chunk.Citation())
		}
	}

	return model.Answer{Text: text, Citations: citations}
}
