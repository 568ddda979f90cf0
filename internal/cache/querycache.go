// Package cache is a small JSON-file-backed answer cache keyed by the
// lowercased question.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ozkanacar/bolumrag/internal/logging"
	"github.com/ozkanacar/bolumrag/internal/model"
	"github.com/ozkanacar/bolumrag/internal/util"
)

type cachedAnswer struct {
	Text      string   `json:"text"`
	Citations []string `json:"citations"`
}

// QueryCache holds up to maxSize answers. When full, the oldest entry is
// evicted first. Persistence failures are logged and ignored; a cache is
// never worth failing a query over.
type QueryCache struct {
	path    string
	maxSize int
	entries map[string]cachedAnswer
	order   []string
}

// New loads the cache file at path if it exists. Unreadable or corrupt
// files start an empty cache.
func New(path string, maxSize int) *QueryCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	c := &QueryCache{
		path:    path,
		maxSize: maxSize,
		entries: make(map[string]cachedAnswer),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var stored map[string]cachedAnswer
	if err := json.Unmarshal(data, &stored); err != nil {
		logging.LogEvent("query cache %s is corrupt, starting empty: %v", path, err)
		return c
	}
	for key, entry := range stored {
		c.entries[key] = entry
		c.order = append(c.order, key)
	}
	return c
}

// Get returns the cached answer for a question, if present.
func (c *QueryCache) Get(question string) (model.Answer, bool) {
	entry, ok := c.entries[util.LowerTurkish(question)]
	if !ok {
		return model.Answer{}, false
	}
	return model.Answer{Text: entry.Text, Citations: entry.Citations}, true
}

// Set stores an answer, evicting the oldest entry when the cache is full,
// and persists the cache to disk.
func (c *QueryCache) Set(question string, answer model.Answer) {
	key := util.LowerTurkish(question)
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cachedAnswer{Text: answer.Text, Citations: answer.Citations}
	c.persist()
}

// Len returns the number of cached answers.
func (c *QueryCache) Len() int { return len(c.entries) }

func (c *QueryCache) persist() {
	if c.path == "" {
		return
	}
	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.LogEvent("query cache: create directory %s: %v", dir, err)
			return
		}
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		logging.LogEvent("query cache: marshal: %v", err)
		return
	}
	if err := util.WriteFile(c.path, data); err != nil {
		logging.LogEvent("query cache: write %s: %v", c.path, err)
	}
}
