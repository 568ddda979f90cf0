// Package model holds the immutable value records shared by the pipeline
// stages: chunks, hits, intents, queries, and answers.
package model

import "fmt"

// Chunk is a contiguous substring of a source document with recorded offsets
// into the original document. Identity is the (DocID, ChunkID) pair.
type Chunk struct {
	DocID       string
	ChunkID     string
	SectionID   string
	Text        string
	StartOffset int
	EndOffset   int
}

// Citation renders the chunk span in the fixed citation format
// docId:sectionId:start-end consumed by downstream tooling.
func (c Chunk) Citation() string {
	return fmt.Sprintf("%s:%s:%d-%d", c.DocID, c.SectionID, c.StartOffset, c.EndOffset)
}

// Query wraps the raw question text.
type Query struct {
	Text string
}
