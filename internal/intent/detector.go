package intent

import (
	"strings"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// RuleDetector resolves a question to the first intent, in rule priority
// order, whose keyword list contains a substring of the lowercased question.
type RuleDetector struct {
	rules []Rule
}

// NewRuleDetector builds a detector over priority-ordered rules.
func NewRuleDetector(rules *Rules) *RuleDetector {
	if rules == nil {
		return &RuleDetector{}
	}
	return &RuleDetector{rules: rules.Ordered}
}

// Detect classifies the question. Blank questions and questions matching no
// rule resolve to Unknown.
func (d *RuleDetector) Detect(question string) model.Intent {
	if strings.TrimSpace(question) == "" {
		return model.IntentUnknown
	}

	lower := util.LowerTurkish(question)
	for _, rule := range d.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, keyword) {
				return rule.Intent
			}
		}
	}
	return model.IntentUnknown
}
