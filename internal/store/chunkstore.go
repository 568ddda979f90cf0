// Package store holds the in-memory chunk repository and the loader that
// populates it from the chunked corpus file.
package store

import (
	"github.com/ozkanacar/bolumrag/internal/model"
)

type chunkKey struct {
	docID   string
	chunkID string
}

// ChunkStore maps (docID, chunkID) to chunks and docID to document titles.
// It is populated once at load time and read-only afterwards, so the
// retrieval stages share it without locking.
type ChunkStore struct {
	chunks map[chunkKey]model.Chunk
	order  []chunkKey
	titles map[string]string
}

// NewChunkStore returns an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[chunkKey]model.Chunk),
		titles: make(map[string]string),
	}
}

// Add registers a chunk, replacing any previous chunk with the same identity.
func (s *ChunkStore) Add(chunk model.Chunk) {
	key := chunkKey{docID: chunk.DocID, chunkID: chunk.ChunkID}
	if _, exists := s.chunks[key]; !exists {
		s.order = append(s.order, key)
	}
	s.chunks[key] = chunk
}

// Get looks up a chunk by identity. The second return value reports whether
// the chunk exists; lookups never fail.
func (s *ChunkStore) Get(docID, chunkID string) (model.Chunk, bool) {
	chunk, ok := s.chunks[chunkKey{docID: docID, chunkID: chunkID}]
	return chunk, ok
}

// All returns every stored chunk in insertion order.
func (s *ChunkStore) All() []model.Chunk {
	out := make([]model.Chunk, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.chunks[key])
	}
	return out
}

// SetDocumentTitle records the optional title of a document.
func (s *ChunkStore) SetDocumentTitle(docID, title string) {
	s.titles[docID] = title
}

// DocumentTitle returns the title recorded for a document, if any.
func (s *ChunkStore) DocumentTitle(docID string) (string, bool) {
	title, ok := s.titles[docID]
	return title, ok
}

// Size returns the number of stored chunks.
func (s *ChunkStore) Size() int {
	return len(s.chunks)
}
