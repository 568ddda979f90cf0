package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ozkanacar/bolumrag/internal/appconfig"
	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/store"
	"github.com/ozkanacar/bolumrag/internal/trace"
)

type recordingSink struct {
	events []trace.Event
}

func (s *recordingSink) Record(event trace.Event) error {
	s.events = append(s.events, event)
	return nil
}

func testConfig(t *testing.T) appconfig.Config {
	t.Helper()
	dir := t.TempDir()

	rulesPath := filepath.Join(dir, "rules.yaml")
	rules := `
keyword_rules:
  REGISTRATION:
    - "kayıt"
  STAFF_LOOKUP:
    - "danışman"
intent_boosters:
  REGISTRATION:
    - "form"
`
	if err := os.WriteFile(rulesPath, []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}

	stopwordsPath := filepath.Join(dir, "stopwords.yaml")
	stopwords := `
stop_words:
  - "ve"
  - "için"
`
	if err := os.WriteFile(stopwordsPath, []byte(stopwords), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := appconfig.Config{}
	cfg.Params.Intent.RulesFile = rulesPath
	cfg.Params.QueryWriter.StopwordsFile = stopwordsPath
	cfg.Params.Retriever.TopK = 5
	cfg.Stages.AnswerAgent = appconfig.AnswerAgentTemplate
	return cfg
}

func testStore() *store.ChunkStore {
	s := store.NewChunkStore()
	s.Add(model.Chunk{
		DocID:     "kayit_islemleri",
		ChunkID:   "c1",
		SectionID: "s1",
		Text:      "Kayıt formu eylülde dekanlığa teslim edilir. Geç kayıt ücrete tabidir.",
		EndOffset: 70,
	})
	s.SetDocumentTitle("kayit_islemleri", "Kayıt İşlemleri")
	return s
}

func TestExecutePublishesOneEventPerStage(t *testing.T) {
	sink := &recordingSink{}
	p, err := New(testConfig(t), trace.NewBus(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext("Kayıt formu nereye teslim edilir?", testStore())
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	wantStages := []string{StageDetectIntent, StageWriteQuery, StageRetrieve, StageRerank, StageAnswer}
	if len(sink.events) != len(wantStages) {
		t.Fatalf("expected %d events, got %d", len(wantStages), len(sink.events))
	}
	for i, want := range wantStages {
		ev := sink.events[i]
		if ev.Stage != want {
			t.Fatalf("event %d: expected stage %s, got %s", i, want, ev.Stage)
		}
		if ev.Error != "" {
			t.Fatalf("stage %s reported error %q", want, ev.Error)
		}
		if ev.TimingMs < 0 {
			t.Fatalf("stage %s has negative timing", want)
		}
	}

	if ctx.Intent != model.IntentRegistration {
		t.Fatalf("expected REGISTRATION, got %s", ctx.Intent)
	}
	if ctx.FinalAnswer == nil || ctx.FinalAnswer.Text == "" {
		t.Fatalf("expected a final answer, got %+v", ctx.FinalAnswer)
	}
	if len(ctx.FinalAnswer.Citations) == 0 {
		t.Fatalf("expected citations on the final answer")
	}
}

func TestExecuteAppliesBoosters(t *testing.T) {
	p, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext("Kayıt ve ders seçimi için adımlar", testStore())
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	found := false
	for _, term := range ctx.Terms {
		if term == "form" {
			found = true
		}
		if term == "ve" || term == "için" {
			t.Fatalf("stopword %q survived query writing: %v", term, ctx.Terms)
		}
	}
	if !found {
		t.Fatalf("expected booster term form, got %v", ctx.Terms)
	}
}

func TestExecuteStageFailureTraced(t *testing.T) {
	sink := &recordingSink{}
	p, err := New(testConfig(t), trace.NewBus(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := NewContext("kayıt", nil)
	err = p.Execute(ctx)
	if err == nil {
		t.Fatalf("expected failure with nil chunk store")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != StageRetrieve {
		t.Fatalf("expected StageError for retrieve, got %v", err)
	}

	// detectIntent and writeQuery succeed, retrieve fails, later stages
	// never run.
	if len(sink.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(sink.events))
	}
	last := sink.events[2]
	if last.Stage != StageRetrieve || last.Error == "" {
		t.Fatalf("expected traced retrieve failure, got %+v", last)
	}
}

func TestNewUnknownAnswerAgent(t *testing.T) {
	cfg := testConfig(t)
	cfg.Stages.AnswerAgent = appconfig.AnswerAgentKind("llm")
	if _, err := New(cfg, nil); !errors.Is(err, appconfig.ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}

func TestNewMissingRulesFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Params.Intent.RulesFile = filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected missing rules file to fail pipeline build")
	}
}

func TestAnswerSummaryTruncated(t *testing.T) {
	sink := &recordingSink{}
	p, err := New(testConfig(t), trace.NewBus(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s := store.NewChunkStore()
	s.Add(model.Chunk{
		DocID:     "uzun",
		ChunkID:   "c1",
		SectionID: "s1",
		Text:      "kayıt " + strings.Repeat("a", 400),
	})
	ctx := NewContext("kayıt", s)
	if err := p.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	last := sink.events[len(sink.events)-1]
	if !strings.HasSuffix(last.OutputsSummary, "…") {
		t.Fatalf("expected truncated summary, got %q", last.OutputsSummary)
	}
	if got := len([]rune(last.OutputsSummary)); got > 201 {
		t.Fatalf("outputs summary not truncated: %d runes", got)
	}
}
