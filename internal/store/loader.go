package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ozkanacar/bolumrag/internal/model"
)

// corpusFile mirrors the chunk file layout: documents contain sections,
// sections contain chunks. Offsets stay raw so malformed values can fall
// back to zero instead of failing the whole load.
type corpusFile struct {
	Documents []documentJSON `json:"documents"`
}

type documentJSON struct {
	DocID    string        `json:"docId"`
	Title    string        `json:"title"`
	Sections []sectionJSON `json:"sections"`
}

type sectionJSON struct {
	SectionID string      `json:"sectionId"`
	Chunks    []chunkJSON `json:"chunks"`
}

type chunkJSON struct {
	ChunkID     string          `json:"chunkId"`
	Content     *string         `json:"content"`
	StartOffset json.RawMessage `json:"startOffset"`
	EndOffset   json.RawMessage `json:"endOffset"`
}

// LoadChunks reads the chunk file at path and populates a fresh store.
// A document without a docId or a chunk without a chunkId or content fails
// the load; malformed integer offsets default to 0.
func LoadChunks(path string) (*ChunkStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open chunk file: %w", err)
	}

	var corpus corpusFile
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parse chunk file %s: %w", path, err)
	}

	chunkStore := NewChunkStore()
	for di, doc := range corpus.Documents {
		if doc.DocID == "" {
			return nil, fmt.Errorf("chunk file %s: document %d is missing docId", path, di)
		}
		if doc.Title != "" {
			chunkStore.SetDocumentTitle(doc.DocID, doc.Title)
		}
		for _, section := range doc.Sections {
			for ci, raw := range section.Chunks {
				if raw.ChunkID == "" {
					return nil, fmt.Errorf("chunk file %s: document %s chunk %d is missing chunkId", path, doc.DocID, ci)
				}
				if raw.Content == nil {
					return nil, fmt.Errorf("chunk file %s: chunk %s:%s is missing content", path, doc.DocID, raw.ChunkID)
				}
				chunkStore.Add(model.Chunk{
					DocID:       doc.DocID,
					ChunkID:     raw.ChunkID,
					SectionID:   section.SectionID,
					Text:        *raw.Content,
					StartOffset: intOrZero(raw.StartOffset),
					EndOffset:   intOrZero(raw.EndOffset),
				})
			}
		}
	}
	return chunkStore, nil
}

func intOrZero(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}
