// Package answer turns reranked hits into a short answer text with source
// citations.
package answer

import (
	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
)

// Fixed responses for the empty and unresolvable cases. Empty retrieval is
// an answer, not an error.
const (
	NoAnswerText  = "Üzgünüm, sorunuza cevap bulamadım."
	NoChunkText   = "Üzgünüm, sorunuza ait detaylı metni bulamadım."
	NoContentText = "Bilgi bulunamadı."
)

// Agent generates an answer from query terms and reranked hits.
type Agent interface {
	Answer(terms []string, hits []model.Hit, chunkStore *store.ChunkStore) model.Answer
}
