package assessment

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://assessment.json"

// Schema is the JSON schema every assessment definition must satisfy.
var Schema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
	"required":             []any{"title", "questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "pattern": "^[A-Za-z0-9_-]+$"},
		"title":  map[string]any{"type": "string"},
		"prompt": map[string]any{"type": "string"},
		"responses": map[string]any{
			"type":  "array",
			"items": responseSchema,
		},
	},
	"required":             []any{"responses"},
	"additionalProperties": false,
}

var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"kind":   map[string]any{"type": "string", "enum": []any{string(KindMultipleChoice), string(KindText)}},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"choices": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"correct": map[string]any{"type": "integer", "minimum": 0},
		"answer":  map[string]any{"type": "string", "minLength": 1},
		"answer_type": map[string]any{
			"type": "string",
			"enum": []any{
				string(AnswerTypeText), string(AnswerTypeInteger),
				string(AnswerTypeDecimal), string(AnswerTypeFraction),
			},
		},
		"placeholder": map[string]any{"type": "string"},
	},
	"required": []any{"kind", "prompt"},
	"allOf": []any{
		map[string]any{
			"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": string(KindMultipleChoice)}}},
			"then": map[string]any{"required": []any{"choices", "correct"}},
		},
		map[string]any{
			"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": string(KindText)}}},
			"then": map[string]any{"required": []any{"answer"}},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles Schema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, so round-trip the
		// Go literal through encoding/json.
		defBytes, err := json.Marshal(Schema)
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
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against Schema.
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
