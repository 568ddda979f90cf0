// Package logging is the application log: a process-wide file writer used
// for operational messages. Trace events have their own per-run sink and do
// not go through here.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the stdlib logger to the given file, creating parent
// directories as needed. An empty path discards log output so the answer
// printed on stdout stays clean.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if logPath == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = file
	log.SetOutput(logFile)
	return nil
}

// Close flushes and releases the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted operational message.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogStage writes a one-line stage completion record.
func LogStage(stage string, timingMs int64, err error) {
	if err != nil {
		log.Println(fmt.Sprintf("[STAGE] %s failed after %dms: %v", stage, timingMs, err))
		return
	}
	log.Println(fmt.Sprintf("[STAGE] %s completed in %dms", stage, timingMs))
}
