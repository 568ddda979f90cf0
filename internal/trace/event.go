// Package trace carries structured per-stage execution records from the
// pipeline to pluggable sinks.
package trace

// Event records one pipeline stage attempt: its inputs, an output summary,
// elapsed wall time, and the error message when the stage failed. Exactly
// one event is emitted per stage attempt.
type Event struct {
	Stage          string `json:"stage"`
	Inputs         string `json:"inputs"`
	OutputsSummary string `json:"outputsSummary"`
	TimingMs       int64  `json:"timingMs"`
	Error          string `json:"error,omitempty"`
}
