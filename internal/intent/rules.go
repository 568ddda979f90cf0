// Package intent classifies questions into a closed intent set using
// priority-ordered keyword rules loaded from the rules file.
package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/util"
)

// Rule pairs an intent with the keywords that select it. Keywords are
// Turkish-lowercased once at load time.
type Rule struct {
	Intent   model.Intent
	Keywords []string
}

// Rules carries the priority-ordered keyword rules plus the optional
// intent booster terms appended by the query writer.
type Rules struct {
	Ordered  []Rule
	Boosters map[model.Intent][]string
}

// rulesFile is decoded with yaml.Node trees because keyword_rules is a
// mapping whose declaration order is the rule priority; a plain map would
// lose it.
type rulesFile struct {
	IntentPriority []string  `yaml:"intent_priority"`
	KeywordRules   yaml.Node `yaml:"keyword_rules"`
	IntentBoosters yaml.Node `yaml:"intent_boosters"`
}

// LoadRules reads and validates the rules file. Unknown intent names fail
// the load. Rules named in intent_priority come first in that order; any
// remaining rules keep their file order.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	fileOrder, err := decodeIntentLists(&file.KeywordRules, path, "keyword_rules")
	if err != nil {
		return nil, err
	}

	var priority []model.Intent
	for _, name := range file.IntentPriority {
		parsed, err := model.ParseIntent(name)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
		priority = append(priority, parsed)
	}

	rules := &Rules{Boosters: make(map[model.Intent][]string)}
	seen := make(map[model.Intent]bool)
	for _, want := range priority {
		for _, rule := range fileOrder {
			if rule.Intent == want && !seen[want] {
				rules.Ordered = append(rules.Ordered, rule)
				seen[want] = true
			}
		}
	}
	for _, rule := range fileOrder {
		if !seen[rule.Intent] {
			rules.Ordered = append(rules.Ordered, rule)
			seen[rule.Intent] = true
		}
	}

	if !file.IntentBoosters.IsZero() {
		boosters, err := decodeIntentLists(&file.IntentBoosters, path, "intent_boosters")
		if err != nil {
			return nil, err
		}
		for _, b := range boosters {
			rules.Boosters[b.Intent] = b.Keywords
		}
	}

	return rules, nil
}

// decodeIntentLists walks a mapping node of intent name → keyword list,
// preserving the mapping order and lowercasing every keyword.
func decodeIntentLists(node *yaml.Node, path, section string) ([]Rule, error) {
	if node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rules file %s: %s must be a mapping", path, section)
	}

	var out []Rule
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		parsed, err := model.ParseIntent(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: %s: %w", path, section, err)
		}

		var keywords []string
		if err := valueNode.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("rules file %s: %s.%s must be a list: %w", path, section, keyNode.Value, err)
		}
		lowered := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			lowered = append(lowered, util.LowerTurkish(kw))
		}
		out = append(out, Rule{Intent: parsed, Keywords: lowered})
	}
	return out, nil
}
