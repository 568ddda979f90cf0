package intent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ozkanacar/bolumrag/internal/model"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRulesPreservesPriorityOrder(t *testing.T) {
	path := writeRulesFile(t, `
intent_priority:
  - STAFF_LOOKUP
  - REGISTRATION
keyword_rules:
  REGISTRATION:
    - "kayıt"
    - "ders kaydı"
  STAFF_LOOKUP:
    - "koordinatör"
  COURSE:
    - "ders"
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}

	want := []model.Intent{model.IntentStaffLookup, model.IntentRegistration, model.IntentCourse}
	if len(rules.Ordered) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules.Ordered))
	}
	for i, rule := range rules.Ordered {
		if rule.Intent != want[i] {
			t.Fatalf("rule %d: expected %s, got %s", i, want[i], rule.Intent)
		}
	}
}

func TestLoadRulesLowercasesKeywords(t *testing.T) {
	path := writeRulesFile(t, `
keyword_rules:
  REGISTRATION:
    - "KAYIT"
    - "İşlem"
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	got := rules.Ordered[0].Keywords
	if got[0] != "kayıt" {
		t.Fatalf("expected Turkish lowercase kayıt, got %q", got[0])
	}
	if got[1] != "işlem" {
		t.Fatalf("expected dotted-i lowercase işlem, got %q", got[1])
	}
}

func TestLoadRulesUnknownIntentFails(t *testing.T) {
	path := writeRulesFile(t, `
keyword_rules:
  CAFETERIA:
    - "yemek"
`)
	if _, err := LoadRules(path); err == nil {
		t.Fatalf("expected unknown intent name to fail the load")
	}
}

func TestLoadRulesBoosters(t *testing.T) {
	path := writeRulesFile(t, `
keyword_rules:
  STAFF_LOOKUP:
    - "koordinatör"
intent_boosters:
  STAFF_LOOKUP:
    - "staff"
    - "ADVISOR"
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	boosters := rules.Boosters[model.IntentStaffLookup]
	if len(boosters) != 2 || boosters[0] != "staff" || boosters[1] != "advısor" {
		t.Fatalf("unexpected boosters: %v", boosters)
	}
}
