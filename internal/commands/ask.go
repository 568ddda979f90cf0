// internal/commands/ask.go
package bolumrag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/appconfig"
	"github.com/ozkanacar/bolumrag/internal/cache"
	"github.com/ozkanacar/bolumrag/internal/logging"
	"github.com/ozkanacar/bolumrag/internal/pipeline"
	"github.com/ozkanacar/bolumrag/internal/store"
	"github.com/ozkanacar/bolumrag/internal/trace"
)

// buildOrchestrator loads every pipeline dependency and wires the trace
// sink. Configuration errors (rules, stop-words, chunk file) surface before
// the trace file is created, so a bad setup leaves no run file behind.
func buildOrchestrator(cfg *appconfig.Config) (*pipeline.Orchestrator, *trace.JSONLSink, error) {
	bus := trace.NewBus()
	pipe, err := pipeline.New(*cfg, bus)
	if err != nil {
		return nil, nil, err
	}
	chunkStore, err := store.LoadChunks(cfg.Paths.ChunkStore)
	if err != nil {
		return nil, nil, err
	}

	sink, err := trace.NewJSONLSink(cfg.Paths.LogsDir)
	if err != nil {
		return nil, nil, err
	}
	bus.Register(sink)

	var queryCache *cache.QueryCache
	if cfg.CacheEnabled() {
		queryCache = cache.New(cfg.Params.Cache.File, cfg.CacheSize())
	}

	logging.LogEvent("corpus loaded: %d chunks from %s", chunkStore.Size(), cfg.Paths.ChunkStore)
	return pipeline.NewOrchestrator(pipe, chunkStore, queryCache), sink, nil
}

// runAsk answers a single question and prints it as
// "Answer: <text> [See: <cite>, <cite>...]".
func runAsk(cmd *cobra.Command, q string) error {
	orchestrator, sink, err := buildOrchestrator(GetConfig())
	if err != nil {
		return err
	}
	defer sink.Close()

	result, err := orchestrator.Ask(q)
	if err != nil {
		return err
	}

	label := color.New(color.FgGreen, color.Bold).Sprint("Answer:")
	line := fmt.Sprintf("%s %s", label, result.Text)
	if len(result.Citations) > 0 {
		cites := color.New(color.FgCyan).Sprint(strings.Join(result.Citations, ", "))
		line = fmt.Sprintf("%s [See: %s]", line, cites)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
