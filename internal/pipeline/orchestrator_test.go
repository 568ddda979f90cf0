package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/ozkanacar/bolumrag/internal/cache"
	"github.com/ozkanacar/bolumrag/internal/trace"
)

func TestOrchestratorAsk(t *testing.T) {
	p, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	orch := NewOrchestrator(p, testStore(), nil)

	answer, err := orch.Ask("Kayıt formu nereye teslim edilir?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer.Text == "" || len(answer.Citations) == 0 {
		t.Fatalf("unexpected answer: %+v", answer)
	}
}

func TestOrchestratorServesFromCache(t *testing.T) {
	sink := &recordingSink{}
	p, err := New(testConfig(t), trace.NewBus(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	qc := cache.New(filepath.Join(t.TempDir(), "cache.json"), 10)
	orch := NewOrchestrator(p, testStore(), qc)

	first, err := orch.Ask("Kayıt formu nereye teslim edilir?")
	if err != nil {
		t.Fatalf("first Ask: %v", err)
	}
	eventsAfterFirst := len(sink.events)

	second, err := orch.Ask("KAYIT FORMU NEREYE TESLİM EDİLİR?")
	if err != nil {
		t.Fatalf("second Ask: %v", err)
	}
	if second.Text != first.Text {
		t.Fatalf("cached answer differs: %q vs %q", second.Text, first.Text)
	}
	if len(sink.events) != eventsAfterFirst {
		t.Fatalf("cache hit must not run the pipeline, got %d extra events", len(sink.events)-eventsAfterFirst)
	}
}
