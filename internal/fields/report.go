package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldError pairs a field name with the problems found on it.
type FieldError struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// ValidationReport summarizes a schema extraction run: per-field validity
// plus a structural check of the assembled value object against the schema.
type ValidationReport struct {
	TotalFields   int          `json:"total_fields"`
	ValidFields   int          `json:"valid_fields"`
	InvalidFields int          `json:"invalid_fields"`
	SuccessRate   float64      `json:"success_rate"`
	FieldErrors   []FieldError `json:"field_errors,omitempty"`
	SchemaErrors  []string     `json:"schema_errors,omitempty"`
}

// BuildReport aggregates extraction results into a report. The structural
// pass validates the extracted values as one JSON object against a
// normalized form of the schema; search-oriented properties (custom search
// patterns, pseudo types like "date" or "currency") are relaxed to plain
// strings so the structural check only covers shape, not extraction rules.
func BuildReport(results map[string]ExtractionResult, schema Schema, logger *slog.Logger) ValidationReport {
	if logger == nil {
		logger = slog.Default()
	}

	report := ValidationReport{TotalFields: len(results)}
	for _, name := range sortedKeys(results) {
		r := results[name]
		if r.Valid {
			report.ValidFields++
		} else {
			report.InvalidFields++
		}
		if len(r.Errors) > 0 {
			report.FieldErrors = append(report.FieldErrors, FieldError{Field: name, Errors: r.Errors})
		}
	}
	if report.TotalFields > 0 {
		report.SuccessRate = float64(report.ValidFields) / float64(report.TotalFields) * 100
	}

	report.SchemaErrors = structuralErrors(results, schema, logger)
	return report
}

func sortedKeys(results map[string]ExtractionResult) []string {
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonSchemaTypes are the type names JSON Schema itself understands. Anything
// else in a Property.Type is an extraction hint and degrades to "string".
var jsonSchemaTypes = map[string]bool{
	"string": true, "number": true, "integer": true,
	"boolean": true, "array": true, "object": true, "null": true,
}

func structuralErrors(results map[string]ExtractionResult, schema Schema, logger *slog.Logger) []string {
	doc := map[string]any{}
	for name, r := range results {
		if r.Value != nil {
			doc[name] = r.Value
		}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		logger.Warn("schema compilation failed, skipping structural validation", "error", err)
		return []string{fmt.Sprintf("schema compilation failed: %v", err)}
	}

	// Round-trip through JSON so typed Go values become the generic shapes
	// the validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return []string{fmt.Sprintf("marshaling extracted values: %v", err)}
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return []string{fmt.Sprintf("unmarshaling extracted values: %v", err)}
	}

	if err := compiled.Validate(generic); err != nil {
		var errs []string
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			for _, cause := range ve.Causes {
				errs = append(errs, cause.Error())
			}
			if len(errs) == 0 {
				errs = append(errs, ve.Error())
			}
		} else {
			errs = append(errs, err.Error())
		}
		return errs
	}
	return nil
}

func compileSchema(schema Schema) (*jsonschema.Schema, error) {
	props := map[string]any{}
	for name, prop := range schema.Properties {
		typ := prop.Type
		if !jsonSchemaTypes[typ] {
			typ = "string"
		}
		p := map[string]any{"type": typ}
		if len(prop.Enum) > 0 && typ == "string" {
			p["enum"] = prop.Enum
		}
		if prop.MinLength != nil {
			p["minLength"] = *prop.MinLength
		}
		if prop.MaxLength != nil {
			p["maxLength"] = *prop.MaxLength
		}
		if prop.Minimum != nil && (typ == "number" || typ == "integer") {
			p["minimum"] = *prop.Minimum
		}
		if prop.Maximum != nil && (typ == "number" || typ == "integer") {
			p["maximum"] = *prop.Maximum
		}
		props[name] = p
	}

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(schema.Required) > 0 {
		doc["required"] = schema.Required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return compiled, nil
}
