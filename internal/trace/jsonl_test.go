package trace

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestJSONLSinkWritesOneLinePerEvent(t *testing.T) {
	sink, err := NewJSONLSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONLSink: %v", err)
	}
	defer sink.Close()

	events := []Event{
		{Stage: "detectIntent", Inputs: `question="kayıt"`, OutputsSummary: "intent=REGISTRATION", TimingMs: 1},
		{Stage: "retrieve", Inputs: "terms=1", OutputsSummary: "hits=0", TimingMs: 0, Error: "chunk store is not loaded"},
	}
	for _, ev := range events {
		if err := sink.Record(ev); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(sink.Path())
	if err != nil {
		t.Fatalf("read trace file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first["stage"] != "detectIntent" {
		t.Fatalf("unexpected stage: %v", first["stage"])
	}
	if _, present := first["error"]; present {
		t.Fatalf("error field must be omitted when empty: %s", lines[0])
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not valid JSON: %v", err)
	}
	if second["error"] != "chunk store is not loaded" {
		t.Fatalf("unexpected error field: %v", second["error"])
	}
}

func TestJSONLSinkFileNaming(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewJSONLSink(dir)
	if err != nil {
		t.Fatalf("NewJSONLSink: %v", err)
	}
	defer sink.Close()

	name := sink.Path()
	if !strings.Contains(name, "run-") || !strings.HasSuffix(name, ".jsonl") {
		t.Fatalf("unexpected run file name: %s", name)
	}
}

func TestJSONLSinkCreatesLogsDir(t *testing.T) {
	dir := t.TempDir() + "/nested/logs"
	sink, err := NewJSONLSink(dir)
	if err != nil {
		t.Fatalf("NewJSONLSink: %v", err)
	}
	defer sink.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("logs directory missing: %v", err)
	}
}

type failingSink struct{ calls int }

func (s *failingSink) Record(Event) error {
	s.calls++
	return os.ErrClosed
}

func TestBusSkipsFailingSink(t *testing.T) {
	failing := &failingSink{}
	sink, err := NewJSONLSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONLSink: %v", err)
	}
	defer sink.Close()

	bus := NewBus(failing, sink)
	bus.Publish(Event{Stage: "answer", TimingMs: 2})

	if failing.calls != 1 {
		t.Fatalf("failing sink not invoked")
	}
	data, err := os.ReadFile(sink.Path())
	if err != nil || len(data) == 0 {
		t.Fatalf("healthy sink did not receive the event: %v", err)
	}
}
