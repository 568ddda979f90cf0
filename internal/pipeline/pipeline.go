package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/ozkanacar/bolumrag/internal/answer"
	"github.com/ozkanacar/bolumrag/internal/appconfig"
	"github.com/ozkanacar/bolumrag/internal/intent"
	"github.com/ozkanacar/bolumrag/internal/logging"
	"github.com/ozkanacar/bolumrag/internal/reranker"
	"github.com/ozkanacar/bolumrag/internal/retrieval"
	"github.com/ozkanacar/bolumrag/internal/trace"
	"github.com/ozkanacar/bolumrag/internal/util"
	"github.com/ozkanacar/bolumrag/internal/writer"
)

// Stage names as they appear in trace records.
const (
	StageDetectIntent = "detectIntent"
	StageWriteQuery   = "writeQuery"
	StageRetrieve     = "retrieve"
	StageRerank       = "rerank"
	StageAnswer       = "answer"
)

// maxSummaryRunes bounds the inputs and outputs summaries in trace records.
const maxSummaryRunes = 200

// StageError wraps a failure inside a pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("stage %s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Sequential runs the five stages in order: detectIntent, writeQuery,
// retrieve, rerank, answer. Every stage dependency is loaded once at build
// time and injected; stages perform no I/O of their own.
type Sequential struct {
	rules     *intent.Rules
	detector  *intent.RuleDetector
	writer    *writer.Heuristic
	retriever *retrieval.KeywordRetriever
	reranker  *reranker.Simple
	agent     answer.Agent
	bus       *trace.Bus
}

// New builds a pipeline from the loaded configuration. The rules and
// stop-word files are read here, never during a run.
func New(cfg appconfig.Config, bus *trace.Bus) (*Sequential, error) {
	if bus == nil {
		bus = trace.NewBus()
	}

	rules, err := intent.LoadRules(cfg.Params.Intent.RulesFile)
	if err != nil {
		return nil, err
	}
	stopwords, err := writer.LoadStopwords(cfg.Params.QueryWriter.StopwordsFile)
	if err != nil {
		return nil, err
	}

	var writerOpts []writer.Option
	if cfg.Params.QueryWriter.TopN > 0 {
		writerOpts = append(writerOpts, writer.WithTopN(cfg.Params.QueryWriter.TopN))
	}
	if cfg.Params.QueryWriter.Stemming {
		writerOpts = append(writerOpts, writer.WithStemmer(writer.NewStemmer(3)))
	}

	var agent answer.Agent
	switch cfg.Stages.AnswerAgent {
	case appconfig.AnswerAgentSimple:
		agent = answer.NewSimple()
	case appconfig.AnswerAgentTemplate:
		agent = answer.NewTemplate()
	default:
		return nil, fmt.Errorf("%w: answer_agent %q", appconfig.ErrUnknownStage, cfg.Stages.AnswerAgent)
	}

	return &Sequential{
		rules:     rules,
		detector:  intent.NewRuleDetector(rules),
		writer:    writer.NewHeuristic(stopwords, rules.Boosters, writerOpts...),
		retriever: retrieval.NewKeywordRetriever(cfg.TopK()),
		reranker: reranker.NewSimple(
			cfg.Params.Reranker.ProximityWindow,
			cfg.Params.Reranker.ProximityBonus,
			cfg.Params.Reranker.TitleBoost,
		),
		agent: agent,
		bus:   bus,
	}, nil
}

// Execute runs all stages against the context. The first stage failure
// aborts the remainder; its trace event carries the error message.
func (p *Sequential) Execute(ctx *Context) error {
	if err := p.detectIntent(ctx); err != nil {
		return err
	}
	if err := p.writeQuery(ctx); err != nil {
		return err
	}
	if err := p.retrieve(ctx); err != nil {
		return err
	}
	if err := p.rerank(ctx); err != nil {
		return err
	}
	return p.answerStage(ctx)
}

func (p *Sequential) detectIntent(ctx *Context) error {
	inputs := fmt.Sprintf("question=%q", util.TruncateRunes(ctx.Question, maxSummaryRunes))
	return p.runStage(StageDetectIntent, inputs, func() (string, error) {
		detected := p.detector.Detect(ctx.Question)
		ctx.Intent = detected
		ctx.IntentRules = p.rules
		return fmt.Sprintf("intent=%s", detected), nil
	})
}

func (p *Sequential) writeQuery(ctx *Context) error {
	inputs := fmt.Sprintf("intent=%s", ctx.Intent)
	return p.runStage(StageWriteQuery, inputs, func() (string, error) {
		terms := p.writer.Write(ctx.Question, ctx.Intent)
		ctx.Terms = terms
		return util.TruncateRunes(fmt.Sprintf("terms=%d %v", len(terms), terms), maxSummaryRunes), nil
	})
}

func (p *Sequential) retrieve(ctx *Context) error {
	inputs := util.TruncateRunes(fmt.Sprintf("terms=%d %v", len(ctx.Terms), ctx.Terms), maxSummaryRunes)
	return p.runStage(StageRetrieve, inputs, func() (string, error) {
		if ctx.ChunkStore == nil {
			return "", errors.New("chunk store is not loaded")
		}
		hits := p.retriever.Retrieve(ctx.Terms, ctx.ChunkStore)
		ctx.RetrievedHits = hits
		return fmt.Sprintf("hits=%d", len(hits)), nil
	})
}

func (p *Sequential) rerank(ctx *Context) error {
	inputs := fmt.Sprintf("hits=%d", len(ctx.RetrievedHits))
	return p.runStage(StageRerank, inputs, func() (string, error) {
		if ctx.ChunkStore == nil {
			return "", errors.New("chunk store is not loaded")
		}
		hits := p.reranker.Rerank(ctx.Terms, ctx.RetrievedHits, ctx.ChunkStore)
		ctx.RerankedHits = hits
		summary := fmt.Sprintf("hits=%d", len(hits))
		if len(hits) > 0 {
			summary = fmt.Sprintf("hits=%d top=%s:%s score=%d", len(hits), hits[0].DocID, hits[0].ChunkID, hits[0].Score)
		}
		return summary, nil
	})
}

func (p *Sequential) answerStage(ctx *Context) error {
	inputs := fmt.Sprintf("hits=%d", len(ctx.RerankedHits))
	return p.runStage(StageAnswer, inputs, func() (string, error) {
		if ctx.ChunkStore == nil {
			return "", errors.New("chunk store is not loaded")
		}
		result := p.agent.Answer(ctx.Terms, ctx.RerankedHits, ctx.ChunkStore)
		ctx.FinalAnswer = &result
		summary := fmt.Sprintf("citations=%d answer=%s", len(result.Citations), result.Text)
		return util.TruncateRunes(summary, maxSummaryRunes), nil
	})
}

// runStage times the stage body, publishes exactly one trace event for the
// attempt, and wraps any failure in a StageError. On failure the event is
// published after the error is captured and before it propagates.
func (p *Sequential) runStage(name, inputs string, fn func() (string, error)) error {
	start := time.Now()
	summary, err := fn()
	elapsed := time.Since(start).Milliseconds()

	event := trace.Event{
		Stage:          name,
		Inputs:         inputs,
		OutputsSummary: summary,
		TimingMs:       elapsed,
	}
	if err != nil {
		event.Error = err.Error()
	}
	p.bus.Publish(event)
	logging.LogStage(name, elapsed, err)

	if err != nil {
		return &StageError{Stage: name, Err: err}
	}
	return nil
}
