package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the resolved configuration summary.
func ShowConfig(out io.Writer, cfg *Config) {
	if cfg == nil {
		fmt.Fprintln(out, "No config loaded.")
		return
	}

	fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	fmt.Fprintln(out, "Pipeline stages:")
	fmt.Fprintf(out, "  Intent Detector: %s\n", cfg.Stages.IntentDetector)
	fmt.Fprintf(out, "  Query Writer:    %s\n", cfg.Stages.QueryWriter)
	fmt.Fprintf(out, "  Retriever:       %s\n", cfg.Stages.Retriever)
	fmt.Fprintf(out, "  Reranker:        %s\n", cfg.Stages.Reranker)
	fmt.Fprintf(out, "  Answer Agent:    %s\n", cfg.Stages.AnswerAgent)

	fmt.Fprintln(out, "Parameters:")
	fmt.Fprintf(out, "  Rules File:      %s\n", cfg.Params.Intent.RulesFile)
	fmt.Fprintf(out, "  Stopwords File:  %s\n", cfg.Params.QueryWriter.StopwordsFile)
	fmt.Fprintf(out, "  Top K:           %d\n", cfg.TopK())
	fmt.Fprintf(out, "  Top N:           %d\n", cfg.Params.QueryWriter.TopN)
	fmt.Fprintf(out, "  Stemming:        %v\n", cfg.Params.QueryWriter.Stemming)
	if cfg.CacheEnabled() {
		fmt.Fprintf(out, "  Query Cache:     %s (max %d entries)\n", cfg.Params.Cache.File, cfg.CacheSize())
	}

	fmt.Fprintln(out, "Paths:")
	fmt.Fprintf(out, "  Chunk Store:     %s\n", cfg.Paths.ChunkStore)
	fmt.Fprintf(out, "  Logs Dir:        %s\n", cfg.Paths.LogsDir)
	if cfg.Paths.LogFile != "" {
		fmt.Fprintf(out, "  Log File:        %s\n", cfg.Paths.LogFile)
	}
}
