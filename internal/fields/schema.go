package fields

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// typeValuePatterns are the bare value shapes per declared type, compiled
// into candidate search patterns.
var typeValuePatterns = map[string]string{
	"string":   `.+`,
	"number":   `[\$€£¥]?\s*-?[\d,]+(?:\.\d+)?`,
	"integer":  `-?\d+`,
	"boolean":  `(?:true|false|yes|no|1|0)`,
	"array":    `.+`,
	"date":     `\d{1,4}[-/]\d{1,2}[-/]\d{1,4}`,
	"email":    `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
	"phone":    `[\d\s\-\+\(\)]{7,20}`,
	"currency": `[\$€£¥]?\s*[\d,]+\.?\d*`,
}

var (
	reNonInteger = regexp.MustCompile(`[^\d-]`)
	reNonNumber  = regexp.MustCompile(`[^\d.-]`)
)

type searchPattern struct {
	re     *regexp.Regexp
	weight float64
}

// SchemaExtractor extracts and validates fields against a JSON-Schema-like
// declaration. For each property it tries an ordered list of candidate
// patterns with descending confidence; the first pattern whose match
// validates against the declared type wins and later patterns are not tried.
type SchemaExtractor struct {
	logger *slog.Logger
}

func NewSchemaExtractor(logger *slog.Logger) *SchemaExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaExtractor{logger: logger}
}

// Extract runs every property in the schema against the text. It never
// fails; a property that cannot be extracted comes back with a nil value,
// and a required property that is absent is marked invalid.
func (e *SchemaExtractor) Extract(text string, schema Schema) map[string]ExtractionResult {
	results := make(map[string]ExtractionResult, len(schema.Properties))

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for name, prop := range schema.Properties {
		result := e.extractField(text, name, prop)
		if required[name] && result.Value == nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("required field %q not found", name))
		}
		results[name] = result
	}
	return results
}

func (e *SchemaExtractor) extractField(text, name string, prop Property) ExtractionResult {
	result := ExtractionResult{FieldName: name}

	for _, sp := range e.buildSearchPatterns(name, prop) {
		m := sp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		if len(m) > 1 {
			raw = m[1]
		}
		raw = strings.TrimSpace(raw)

		value, ok := convertValue(raw, prop.Type)
		if !ok {
			continue
		}
		result.Value = value
		result.Confidence = sp.weight
		break
	}

	// Constraints are re-checked after acceptance; a violation is recorded
	// but does not discard the value. The caller decides whether it is fatal.
	if result.Value != nil {
		result.Errors = append(result.Errors, constraintErrors(result.Value, prop)...)
	}
	result.Valid = result.Value != nil && len(result.Errors) == 0
	return result
}

// buildSearchPatterns orders candidates by descending confidence: an explicit
// custom pattern, label-colon-value on the same line, label-then-value on the
// next line, and finally a bare type-shaped match anywhere in the text.
func (e *SchemaExtractor) buildSearchPatterns(name string, prop Property) []searchPattern {
	valuePat, ok := typeValuePatterns[prop.Type]
	if !ok {
		valuePat = `.+`
	}

	var patterns []searchPattern
	add := func(expr string, weight float64) {
		re, err := regexp.Compile(expr)
		if err != nil {
			e.logger.Debug("skipping unparsable search pattern", "field", name, "pattern", expr, "error", err)
			return
		}
		patterns = append(patterns, searchPattern{re: re, weight: weight})
	}

	if prop.Pattern != "" {
		add(`(?im)`+prop.Pattern, 0.95)
	}

	variants := labelVariants(name)
	if prop.Description != "" {
		words := strings.Fields(prop.Description)
		if len(words) > 3 {
			words = words[:3]
		}
		variants = append(variants, words...)
	}
	for _, variant := range variants {
		quoted := regexp.QuoteMeta(variant)
		add(`(?im)`+quoted+`\s*[:\-=]\s*(`+valuePat+`)`, 0.90)
		add(`(?i)`+quoted+`[ \t]*\n\s*(`+valuePat+`)`, 0.85)
	}

	add(`(`+valuePat+`)`, 0.50)
	return patterns
}

// convertValue cleans and converts a matched substring to the declared type.
// A false return means the candidate is rejected and the next pattern is
// tried.
func convertValue(raw, typ string) (any, bool) {
	switch typ {
	case "integer":
		clean := reNonInteger.ReplaceAllString(raw, "")
		n, err := strconv.Atoi(clean)
		if err != nil {
			return nil, false
		}
		return n, true

	case "number":
		clean := reNonNumber.ReplaceAllString(raw, "")
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, false
		}
		return f, true

	case "boolean":
		switch strings.ToLower(raw) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
		return nil, false

	case "array":
		var arr []any
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			return arr, true
		}
		parts := strings.Split(raw, ",")
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true

	default: // string-shaped types
		if raw == "" {
			return nil, false
		}
		return raw, true
	}
}

// constraintErrors re-checks enum membership and length/range constraints on
// an accepted value.
func constraintErrors(value any, prop Property) []string {
	var errs []string

	if len(prop.Enum) > 0 {
		if s, ok := value.(string); ok {
			found := false
			for _, allowed := range prop.Enum {
				if s == allowed {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Sprintf("value %q not in allowed values %v", s, prop.Enum))
			}
		}
	}

	if s, ok := value.(string); ok {
		if prop.MinLength != nil && len(s) < *prop.MinLength {
			errs = append(errs, fmt.Sprintf("value too short (min %d)", *prop.MinLength))
		}
		if prop.MaxLength != nil && len(s) > *prop.MaxLength {
			errs = append(errs, fmt.Sprintf("value too long (max %d)", *prop.MaxLength))
		}
	}

	var num float64
	var isNum bool
	switch v := value.(type) {
	case int:
		num, isNum = float64(v), true
	case float64:
		num, isNum = v, true
	}
	if isNum {
		if prop.Minimum != nil && num < *prop.Minimum {
			errs = append(errs, fmt.Sprintf("value below minimum (%v)", *prop.Minimum))
		}
		if prop.Maximum != nil && num > *prop.Maximum {
			errs = append(errs, fmt.Sprintf("value above maximum (%v)", *prop.Maximum))
		}
	}
	return errs
}
