package model

import "sort"

// Hit is a (docID, chunkID, score) triple produced by retrieval or reranking.
// It references a chunk by identity, never by pointer, so hits stay valid
// independently of how the chunk store arranges its data.
type Hit struct {
	DocID   string
	ChunkID string
	Score   int
}

// Less reports whether h ranks before other: higher score first, then
// docID ascending, then chunkID ascending. Ties never depend on store
// iteration order.
func (h Hit) Less(other Hit) bool {
	if h.Score != other.Score {
		return h.Score > other.Score
	}
	if h.DocID != other.DocID {
		return h.DocID < other.DocID
	}
	return h.ChunkID < other.ChunkID
}

// SortHits orders hits in the canonical ranking order in place.
func SortHits(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool { return hits[i].Less(hits[j]) })
}
