// Package eval measures answer accuracy against a ground-truth file of
// questions and expected keywords.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/ozkanacar/bolumrag/internal/pipeline"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// TestCase is one ground-truth entry: a question and the keywords an
// acceptable answer must mention. Matching any one keyword counts as
// correct.
type TestCase struct {
	Question         string   `json:"question"`
	ExpectedKeywords []string `json:"expected_keywords"`
}

// CaseResult records the outcome of a single question.
type CaseResult struct {
	Question  string
	Answer    string
	Correct   bool
	LatencyMs float64
	Err       error
}

// Report aggregates an evaluation run.
type Report struct {
	Total        int
	Correct      int
	Failed       int
	AvgLatencyMs float64
	P95LatencyMs float64
	Cases        []CaseResult
}

// Accuracy is the share of correct answers over all cases.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Asker runs one question through the answering pipeline.
type Asker interface {
	Ask(question string) (answerText string, err error)
}

// orchestratorAsker adapts the pipeline orchestrator to the Asker interface.
type orchestratorAsker struct {
	orch *pipeline.Orchestrator
}

func (a orchestratorAsker) Ask(question string) (string, error) {
	result, err := a.orch.Ask(question)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// NewAsker wraps an orchestrator for evaluation.
func NewAsker(orch *pipeline.Orchestrator) Asker {
	return orchestratorAsker{orch: orch}
}

// LoadTestCases reads the ground-truth JSON array.
func LoadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open ground truth file: %w", err)
	}
	var cases []TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse ground truth file %s: %w", path, err)
	}
	return cases, nil
}

// Run asks every test case and scores the answers. A case is correct when
// the normalised answer contains any normalised expected keyword.
func Run(asker Asker, cases []TestCase) Report {
	report := Report{Total: len(cases)}
	var latencies []float64

	for _, testCase := range cases {
		start := time.Now()
		answerText, err := asker.Ask(testCase.Question)
		latency := float64(time.Since(start).Microseconds()) / 1000.0

		result := CaseResult{Question: testCase.Question, Answer: answerText, LatencyMs: latency, Err: err}
		if err != nil {
			report.Failed++
			report.Cases = append(report.Cases, result)
			continue
		}
		latencies = append(latencies, latency)

		normalizedAnswer := Normalize(answerText)
		for _, keyword := range testCase.ExpectedKeywords {
			if kw := Normalize(keyword); kw != "" && strings.Contains(normalizedAnswer, kw) {
				result.Correct = true
				break
			}
		}
		if result.Correct {
			report.Correct++
		}
		report.Cases = append(report.Cases, result)
	}

	if len(latencies) > 0 {
		sum := 0.0
		for _, l := range latencies {
			sum += l
		}
		report.AvgLatencyMs = sum / float64(len(latencies))
		sort.Float64s(latencies)
		idx := int(float64(len(latencies)-1) * 0.95)
		report.P95LatencyMs = latencies[idx]
	}
	return report
}

// Normalize lowercases with Turkish rules, keeps letters, digits and '@',
// and collapses whitespace, so keyword matching survives punctuation and
// casing differences.
func Normalize(text string) string {
	lowered := util.LowerTurkish(text)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '@' {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(mapped), " ")
}
