package fields

import (
	"log/slog"
	"regexp"
	"strings"
)

// FieldHit is the result of searching for one enumerated field by label.
type FieldHit struct {
	Field      string  `json:"field"`
	Found      bool    `json:"found"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractionStats summarizes an enumerated extraction run. Derived, never
// stored.
type ExtractionStats struct {
	Total       int     `json:"total"`
	Found       int     `json:"found"`
	Missing     int     `json:"missing"`
	SuccessRate float64 `json:"success_rate"`
}

// EnumeratedExtractor searches for `<label>[:=-] <value>` pairs by field
// name. It never fails: fields that cannot be located simply come back with
// Found=false.
type EnumeratedExtractor struct {
	logger *slog.Logger
}

func NewEnumeratedExtractor(logger *slog.Logger) *EnumeratedExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnumeratedExtractor{logger: logger}
}

// Extract looks for each requested field under its label variants: verbatim,
// underscores replaced with spaces, and underscores removed. The value may
// follow the label on the same line or on the immediately following line.
func (e *EnumeratedExtractor) Extract(text string, fieldNames []string) map[string]FieldHit {
	results := make(map[string]FieldHit, len(fieldNames))
	for _, field := range fieldNames {
		results[field] = e.extractOne(text, field)
	}
	return results
}

func (e *EnumeratedExtractor) extractOne(text, field string) FieldHit {
	hit := FieldHit{Field: field}

	for _, variant := range labelVariants(field) {
		quoted := regexp.QuoteMeta(variant)

		sameLine, err := regexp.Compile(`(?im)` + quoted + `\s*[:=\-]\s*([^\n]+)`)
		if err == nil {
			if m := sameLine.FindStringSubmatch(text); m != nil {
				hit.Found = true
				hit.Value = strings.TrimSpace(m[1])
				hit.Confidence = 0.9
				return hit
			}
		}

		nextLine, err := regexp.Compile(`(?i)` + quoted + `\s*[:=\-]?[ \t]*\n[ \t]*([^\n]+)`)
		if err == nil {
			if m := nextLine.FindStringSubmatch(text); m != nil {
				hit.Found = true
				hit.Value = strings.TrimSpace(m[1])
				hit.Confidence = 0.8
				return hit
			}
		}
	}
	return hit
}

func labelVariants(field string) []string {
	variants := []string{field}
	if spaced := strings.ReplaceAll(field, "_", " "); spaced != field {
		variants = append(variants, spaced)
	}
	if joined := strings.ReplaceAll(field, "_", ""); joined != field {
		variants = append(variants, joined)
	}
	return variants
}

// Stats derives run statistics from a set of field hits.
func Stats(hits map[string]FieldHit) ExtractionStats {
	stats := ExtractionStats{Total: len(hits)}
	for _, h := range hits {
		if h.Found {
			stats.Found++
		} else {
			stats.Missing++
		}
	}
	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Found) / float64(stats.Total) * 100
	}
	return stats
}
