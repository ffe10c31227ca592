package assessment

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// Format is the encoding of an assessment file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. Anything that is not
// ".json" is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads, validates, and normalizes an assessment file.
func Load(path string) (*Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assessment: %w", err)
	}
	return parseFrom(path, data, FormatFor(path))
}

// Sample returns the built-in assessment.
func Sample() (*Assessment, error) {
	return parseFrom("built-in sample", sampleYAML, FormatYAML)
}

// parseFrom parses data and names source in any validation error.
func parseFrom(source string, data []byte, format Format) (*Assessment, error) {
	a, err := Parse(data, format)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Source = source
		}
		return nil, err
	}
	return a, nil
}

// Parse decodes an assessment document, validates it against Schema and
// normalizes it.
func Parse(data []byte, format Format) (*Assessment, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, &ValidationError{Source: string(format), Err: err}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &ValidationError{Source: string(format), Err: err}
	}

	// Re-encode the validated document so both formats share one decoder.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode assessment: %w", err)
	}
	var a Assessment
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&a); err != nil {
		return nil, &ValidationError{Source: string(format), Err: fmt.Errorf("decode: %w", err)}
	}

	if err := normalize(&a); err != nil {
		return nil, &ValidationError{Source: string(format), Err: err}
	}
	return &a, nil
}

// decodeDocument parses data into a plain JSON value (maps, slices,
// float64, string, bool, nil).
func decodeDocument(data []byte, format Format) (any, error) {
	if format == FormatJSON {
		var doc any
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return nil, fmt.Errorf("parse json: multiple documents are not supported")
			}
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return doc, nil
	}

	var doc any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// yaml.v3 yields ints and map[string]any; round-trip through JSON so the
	// schema validator sees the same shapes as for JSON input.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return normalized, nil
}

// normalize fills defaults and checks constraints the schema cannot express.
func normalize(a *Assessment) error {
	seen := make(map[string]bool, len(a.Questions))
	for i := range a.Questions {
		q := &a.Questions[i]
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %q", i+1, q.ID)
		}
		seen[q.ID] = true

		for j := range q.Responses {
			r := &q.Responses[j]
			switch r.Kind {
			case KindMultipleChoice:
				if r.Correct < 0 || r.Correct >= len(r.Choices) {
					return fmt.Errorf("question %q response %d: correct index %d out of range", q.ID, j+1, r.Correct)
				}
			case KindText:
				if r.AnswerType == "" {
					r.AnswerType = AnswerTypeText
				}
			}
		}
	}
	return nil
}
