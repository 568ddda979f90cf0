// Package pipeline drives the five retrieval stages over a shared
// per-request context and publishes one trace event per stage attempt.
package pipeline

import (
	"github.com/ozkanacar/bolumrag/internal/intent"
	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
)

// Context carries per-request state between stages. Each field is written by
// exactly one stage and read only downstream. A Context belongs to a single
// pipeline run and must not be shared across concurrent runs.
type Context struct {
	Question   string
	ChunkStore *store.ChunkStore

	// Set by detectIntent.
	Intent      model.Intent
	IntentRules *intent.Rules

	// Set by writeQuery.
	Terms []string

	// Set by retrieve.
	RetrievedHits []model.Hit

	// Set by rerank.
	RerankedHits []model.Hit

	// Set by answer.
	FinalAnswer *model.Answer
}

// NewContext starts a request context for a question over a loaded store.
func NewContext(question string, chunkStore *store.ChunkStore) *Context {
	return &Context{Question: question, ChunkStore: chunkStore}
}
