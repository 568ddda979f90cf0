package appconfig

import (
	"errors"
	"fmt"
)

// ErrUnknownStage marks a pipeline discriminator that names no known
// implementation. It is a configuration error: stage selection is resolved
// at load time, never by reflection at run time.
var ErrUnknownStage = errors.New("unknown pipeline stage implementation")

// Stage kinds are closed sets. The config file selects implementations with
// the class-name strings the corpus tooling already uses; parsing maps them
// onto these types and rejects anything else.
type (
	IntentDetectorKind string
	QueryWriterKind    string
	RetrieverKind      string
	RerankerKind       string
	AnswerAgentKind    string
)

const (
	IntentDetectorRule IntentDetectorKind = "RuleIntentDetector"

	QueryWriterHeuristic QueryWriterKind = "HeuristicQueryWriter"

	RetrieverKeyword RetrieverKind = "KeywordRetriever"

	RerankerSimple RerankerKind = "SimpleReranker"

	AnswerAgentTemplate AnswerAgentKind = "TemplateAnswerAgent"
	AnswerAgentSimple   AnswerAgentKind = "SimpleAnswerAgent"
)

func parseIntentDetectorKind(name string) (IntentDetectorKind, error) {
	switch name {
	case "", string(IntentDetectorRule):
		return IntentDetectorRule, nil
	}
	return "", fmt.Errorf("%w: intent_detector %q", ErrUnknownStage, name)
}

func parseQueryWriterKind(name string) (QueryWriterKind, error) {
	switch name {
	case "", string(QueryWriterHeuristic):
		return QueryWriterHeuristic, nil
	}
	return "", fmt.Errorf("%w: query_writer %q", ErrUnknownStage, name)
}

func parseRetrieverKind(name string) (RetrieverKind, error) {
	switch name {
	case "", string(RetrieverKeyword):
		return RetrieverKeyword, nil
	}
	return "", fmt.Errorf("%w: retriever %q", ErrUnknownStage, name)
}

func parseRerankerKind(name string) (RerankerKind, error) {
	switch name {
	case "", string(RerankerSimple):
		return RerankerSimple, nil
	}
	return "", fmt.Errorf("%w: reranker %q", ErrUnknownStage, name)
}

func parseAnswerAgentKind(name string) (AnswerAgentKind, error) {
	switch name {
	case "", string(AnswerAgentTemplate):
		return AnswerAgentTemplate, nil
	case string(AnswerAgentSimple):
		return AnswerAgentSimple, nil
	}
	return "", fmt.Errorf("%w: answer_agent %q", ErrUnknownStage, name)
}
