package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// chunkFileSchema is the JSON Schema the chunk file must satisfy. The loader
// itself only enforces the fields it needs, so `rag validate` uses this for
// a full structural check before a corpus is deployed.
var chunkFileSchema = map[string]any{
	"type":     "object",
	"required": []string{"documents"},
	"properties": map[string]any{
		"documents": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"docId", "sections"},
				"properties": map[string]any{
					"docId": map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string"},
					"sections": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"sectionId", "chunks"},
							"properties": map[string]any{
								"sectionId": map[string]any{"type": "string", "minLength": 1},
								"chunks": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type":     "object",
										"required": []string{"chunkId", "content"},
										"properties": map[string]any{
											"chunkId":     map[string]any{"type": "string", "minLength": 1},
											"content":     map[string]any{"type": "string"},
											"startOffset": map[string]any{"type": "integer", "minimum": 0},
											"endOffset":   map[string]any{"type": "integer", "minimum": 0},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

// ValidateChunkFile checks the chunk file at path against the corpus schema
// and returns a single error listing every violation.
func ValidateChunkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open chunk file: %w", err)
	}

	schemaLoader := gojsonschema.NewGoLoader(chunkFileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate chunk file %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("chunk file %s is invalid: %s", path, strings.Join(problems, "; "))
}
