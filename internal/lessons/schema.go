package lessons

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// contentSchema is the JSON schema lesson content files must satisfy.
var contentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"slug":  map[string]any{"type": "string", "pattern": `^[a-z0-9]+(-[a-z0-9]+)*$`},
					"title": map[string]any{"type": "string", "minLength": 1},
					"intro": map[string]any{"type": "string"},
					"exercises": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"operand1": map[string]any{"type": "number"},
								"operand2": map[string]any{"type": "number"},
								"operator": map[string]any{
									"type": "string",
									"enum": []any{"+", "-", "×", "÷", "*", "x", "/", "−"},
								},
								"full_hint":    map[string]any{"type": "string"},
								"partial_hint": map[string]any{"type": "string"},
								"step_by_step": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
							},
							"required":             []any{"operand1", "operand2", "operator"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"slug", "title", "exercises"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "lessons"},
	"additionalProperties": false,
}

const contentSchemaURL = "schema://lesson-content.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles contentSchema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the Go literal through encoding/json.
		defBytes, err := json.Marshal(contentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(contentSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(contentSchemaURL)
	})
	return compiled, compileErr
}

// validateContent checks raw content JSON against the schema.
func validateContent(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ContentError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile lesson schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &ContentError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
