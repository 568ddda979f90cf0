package writer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ozkanacar/bolumrag/internal/util"
)

type stopwordsFile struct {
	StopWords []string `yaml:"stop_words"`
}

// LoadStopwords reads the stop-word file and returns the set with every
// entry Turkish-lowercased once.
func LoadStopwords(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}

	var file stopwordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse stopwords file %s: %w", path, err)
	}

	set := make(map[string]struct{}, len(file.StopWords))
	for _, word := range file.StopWords {
		if word == "" {
			continue
		}
		set[util.LowerTurkish(word)] = struct{}{}
	}
	return set, nil
}
