package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// JSONLSink appends one JSON record per event to a per-run file named
// run-<yyyyMMdd-HHmmss>.jsonl inside the logs directory. Each run gets a
// distinct file, so runs never contend.
type JSONLSink struct {
	path string
	file *os.File
}

// NewJSONLSink creates the logs directory if needed and opens the run file.
func NewJSONLSink(logsDir string) (*JSONLSink, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs directory %s: %w", logsDir, err)
	}
	name := fmt.Sprintf("run-%s.jsonl", time.Now().Format("20060102-150405"))
	path := filepath.Join(logsDir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace file %s: %w", path, err)
	}
	return &JSONLSink{path: path, file: file}, nil
}

// Record implements Sink. encoding/json escapes quotes, backslashes, and
// control characters, matching the record format consumers expect.
func (s *JSONLSink) Record(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal trace event: %w", err)
	}
	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write trace event to %s: %w", s.path, err)
	}
	return nil
}

// Path returns the run file location.
func (s *JSONLSink) Path() string { return s.path }

// Close releases the run file.
func (s *JSONLSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
