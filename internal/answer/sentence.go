package answer

import (
	"strings"
	"unicode/utf8"

	"github.com/ozkanacar/bolumrag/internal/util"
)

// sentence is a trimmed sentence plus its rune offsets within the chunk text.
type sentence struct {
	text  string
	start int
	end   int
}

// splitSentences splits text on runs of '.', '!', '?', trims surrounding
// whitespace, and drops empty pieces. Offsets are rune positions of the
// trimmed sentence within the original text.
func splitSentences(text string) []sentence {
	var out []sentence
	runes := []rune(text)
	segStart := 0
	flush := func(end int) {
		start := segStart
		for start < end && isSpace(runes[start]) {
			start++
		}
		for end > start && isSpace(runes[end-1]) {
			end--
		}
		if start < end {
			out = append(out, sentence{text: string(runes[start:end]), start: start, end: end})
		}
	}
	for i, r := range runes {
		if r == '.' || r == '!' || r == '?' {
			flush(i)
			segStart = i + 1
		}
	}
	flush(len(runes))
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// selectBest picks the sentence answering the query: a sentence containing
// every term beats any that does not; then more distinct terms win; then the
// shorter sentence; then the earliest. When no sentence contains any term
// the first sentence wins. The boolean is false when there are no sentences.
func selectBest(text string, terms []string) (sentence, bool) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return sentence{}, false
	}

	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		normalized = append(normalized, util.LowerTurkish(term))
	}

	bestIdx := 0
	bestCount := 0
	bestAll := false
	bestLen := utf8.RuneCountInString(sentences[0].text)
	anyMatch := false

	for i, cand := range sentences {
		lower := util.LowerTurkish(cand.text)
		count := 0
		all := len(normalized) > 0
		for _, term := range normalized {
			if strings.Contains(lower, term) {
				count++
			} else {
				all = false
			}
		}
		if count > 0 {
			anyMatch = true
		}

		length := utf8.RuneCountInString(cand.text)
		better := false
		switch {
		case all != bestAll:
			better = all
		case count != bestCount:
			better = count > bestCount
		case length < bestLen:
			better = true
		}
		if i == 0 || better {
			bestIdx = i
			bestCount = count
			bestAll = all
			bestLen = length
		}
	}

	if !anyMatch {
		return sentences[0], true
	}
	return sentences[bestIdx], true
}
