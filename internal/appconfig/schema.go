// internal/appconfig/schema.go
package appconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidConfig wraps every schema violation.
var ErrInvalidConfig = errors.New("config does not match schema")

// Schema describes the accepted configuration document.
func Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dataPath":      map[string]any{"type": "string"},
			"outputDir":     map[string]any{"type": "string"},
			"logFile":       map[string]any{"type": "string"},
			"debug":         map[string]any{"type": "boolean"},
			"strictNumbers": map[string]any{"type": "boolean"},
			"chartWidth":    map[string]any{"type": "integer", "minimum": 0},
			"chartHeight":   map[string]any{"type": "integer", "minimum": 0},
		},
		"additionalProperties": false,
	}
}

// Validate checks a JSON configuration document against Schema.
func Validate(document []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(Schema()), gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, ", "))
}
