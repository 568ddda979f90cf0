// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "./config.yaml"
	// defaultTopK bounds retrieval output when the config omits top_k.
	defaultTopK = 10
	// defaultCacheSize bounds the query cache when max_size is omitted.
	defaultCacheSize = 100
)

// Config represents the top-level application configuration.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Params   ParamsConfig   `mapstructure:"params"`
	Paths    PathsConfig    `mapstructure:"paths"`

	// Stages holds the discriminators resolved to closed stage kinds.
	Stages StageKinds `mapstructure:"-"`
	// ConfigPath is where the config was loaded from.
	ConfigPath string `mapstructure:"-"`
}

// PipelineConfig selects the implementation of each pipeline stage by name.
type PipelineConfig struct {
	IntentDetector string `mapstructure:"intent_detector"`
	QueryWriter    string `mapstructure:"query_writer"`
	Retriever      string `mapstructure:"retriever"`
	Reranker       string `mapstructure:"reranker"`
	AnswerAgent    string `mapstructure:"answer_agent"`
}

// StageKinds is the load-time resolution of PipelineConfig.
type StageKinds struct {
	IntentDetector IntentDetectorKind
	QueryWriter    QueryWriterKind
	Retriever      RetrieverKind
	Reranker       RerankerKind
	AnswerAgent    AnswerAgentKind
}

// ParamsConfig groups the per-stage tunables.
type ParamsConfig struct {
	Intent      IntentParams      `mapstructure:"intent"`
	Retriever   RetrieverParams   `mapstructure:"retriever"`
	QueryWriter QueryWriterParams `mapstructure:"query_writer"`
	Reranker    RerankerParams    `mapstructure:"reranker"`
	Cache       CacheParams       `mapstructure:"cache"`
}

// IntentParams locates the intent rules file.
type IntentParams struct {
	RulesFile string `mapstructure:"rules_file"`
}

// RetrieverParams bounds retrieval output.
type RetrieverParams struct {
	TopK int `mapstructure:"top_k"`
}

// QueryWriterParams configures tokenisation.
type QueryWriterParams struct {
	StopwordsFile string `mapstructure:"stopwords_file"`
	TopN          int    `mapstructure:"top_n"`
	Stemming      bool   `mapstructure:"stemming"`
}

// RerankerParams tunes the bonus scoring. Zero values fall back to the
// reranker's defaults.
type RerankerParams struct {
	ProximityWindow int `mapstructure:"proximity_window"`
	ProximityBonus  int `mapstructure:"proximity_bonus"`
	TitleBoost      int `mapstructure:"title_boost"`
}

// CacheParams enables the optional query cache when File is set.
type CacheParams struct {
	File    string `mapstructure:"file"`
	MaxSize int    `mapstructure:"max_size"`
}

// PathsConfig locates the corpus and the trace output directory.
type PathsConfig struct {
	ChunkStore string `mapstructure:"chunk_store"`
	LogsDir    string `mapstructure:"logs_dir"`
	LogFile    string `mapstructure:"log_file"`
}

// TopK returns the retrieval bound, applying the default if unset.
func (c Config) TopK() int {
	if c.Params.Retriever.TopK <= 0 {
		return defaultTopK
	}
	return c.Params.Retriever.TopK
}

// CacheSize returns the query cache bound, applying the default if unset.
func (c Config) CacheSize() int {
	if c.Params.Cache.MaxSize <= 0 {
		return defaultCacheSize
	}
	return c.Params.Cache.MaxSize
}

// CacheEnabled reports whether the query cache is configured.
func (c Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Params.Cache.File) != ""
}

// Load reads the configuration at path, resolves the stage discriminators,
// and rewrites every relative path against the config file's directory.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %q: %w", path, err)
	}
	config.ConfigPath = path

	if err := config.resolveStages(); err != nil {
		return Config{}, err
	}
	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	config.resolvePaths(filepath.Dir(path))
	return config, nil
}

func (c *Config) resolveStages() error {
	var err error
	if c.Stages.IntentDetector, err = parseIntentDetectorKind(c.Pipeline.IntentDetector); err != nil {
		return err
	}
	if c.Stages.QueryWriter, err = parseQueryWriterKind(c.Pipeline.QueryWriter); err != nil {
		return err
	}
	if c.Stages.Retriever, err = parseRetrieverKind(c.Pipeline.Retriever); err != nil {
		return err
	}
	if c.Stages.Reranker, err = parseRerankerKind(c.Pipeline.Reranker); err != nil {
		return err
	}
	if c.Stages.AnswerAgent, err = parseAnswerAgentKind(c.Pipeline.AnswerAgent); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Paths.ChunkStore) == "" {
		return errors.New("paths.chunk_store is required")
	}
	if strings.TrimSpace(c.Paths.LogsDir) == "" {
		return errors.New("paths.logs_dir is required")
	}
	if strings.TrimSpace(c.Params.Intent.RulesFile) == "" {
		return errors.New("params.intent.rules_file is required")
	}
	if strings.TrimSpace(c.Params.QueryWriter.StopwordsFile) == "" {
		return errors.New("params.query_writer.stopwords_file is required")
	}
	return nil
}

func (c *Config) resolvePaths(baseDir string) {
	c.Params.Intent.RulesFile = resolvePath(baseDir, c.Params.Intent.RulesFile)
	c.Params.QueryWriter.StopwordsFile = resolvePath(baseDir, c.Params.QueryWriter.StopwordsFile)
	c.Params.Cache.File = resolvePath(baseDir, c.Params.Cache.File)
	c.Paths.ChunkStore = resolvePath(baseDir, c.Paths.ChunkStore)
	c.Paths.LogsDir = resolvePath(baseDir, c.Paths.LogsDir)
	c.Paths.LogFile = resolvePath(baseDir, c.Paths.LogFile)
}

// resolvePath anchors a relative path at the config file's directory.
// Leading "./" is dropped and "../" traverses upward via filepath.Clean.
func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
