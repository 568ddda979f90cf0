package pipeline

import (
	"github.com/ozkanacar/bolumrag/internal/cache"
	"github.com/ozkanacar/bolumrag/internal/logging"
	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
)

// Orchestrator answers one question at a time by running the sequential
// pipeline over the loaded chunk store, with an optional answer cache
// consulted first.
type Orchestrator struct {
	pipeline   *Sequential
	chunkStore *store.ChunkStore
	queryCache *cache.QueryCache
}

// NewOrchestrator wires the pipeline to its corpus. queryCache may be nil.
func NewOrchestrator(p *Sequential, chunkStore *store.ChunkStore, queryCache *cache.QueryCache) *Orchestrator {
	return &Orchestrator{pipeline: p, chunkStore: chunkStore, queryCache: queryCache}
}

// Ask runs the full pipeline for the question and returns the final answer.
// Each call builds a fresh Context; stage failures surface to the caller.
func (o *Orchestrator) Ask(question string) (model.Answer, error) {
	if o.queryCache != nil {
		if cached, ok := o.queryCache.Get(question); ok {
			logging.LogEvent("answer served from query cache")
			return cached, nil
		}
	}

	ctx := NewContext(question, o.chunkStore)
	if err := o.pipeline.Execute(ctx); err != nil {
		return model.Answer{}, err
	}

	result := *ctx.FinalAnswer
	if o.queryCache != nil {
		o.queryCache.Set(question, result)
	}
	return result, nil
}
