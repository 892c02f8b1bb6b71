package fields

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// SemanticResult is the full output of a semantic extraction pass.
type SemanticResult struct {
	Fields    map[string]SemanticField `json:"fields"`
	Summary   string                   `json:"summary"`
	Entities  []Entity                 `json:"entities"`
	KeyPoints []string                 `json:"key_points"`
}

const maxEntities = 20

// personExclusions are document labels and layout phrases that look like
// two-word names but never are.
var personExclusions = map[string]bool{
	"bill to": true, "ship to": true, "sold to": true, "deliver to": true,
	"ship mode": true, "second class": true, "first class": true,
	"standard class": true, "balance due": true, "amount due": true,
	"total due": true, "grand total": true, "sub total": true,
	"thank you": true, "terms and": true, "notes and": true,
	"order id": true, "invoice number": true, "receipt number": true,
	"customer id": true,
}

var personProductWords = []string{"inkjet", "laser", "printer", "machine", "class"}

type entityPatternSet struct {
	entityType string
	patterns   []*regexp.Regexp
}

type contextRule struct {
	field   string
	pattern *regexp.Regexp
}

type contextGroup struct {
	name     string
	triggers []string
	rules    []contextRule
}

type queryRule struct {
	key     string
	pattern *regexp.Regexp
}

// SemanticExtractor pulls fields out by document context and natural
// language queries rather than fixed labels. All pattern tables are compiled
// once at construction; the extractor is stateless afterwards and safe for
// concurrent use.
type SemanticExtractor struct {
	entityPatterns []entityPatternSet
	contextGroups  []contextGroup
	queryRules     []queryRule
	logger         *slog.Logger
}

func NewSemanticExtractor(logger *slog.Logger) *SemanticExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SemanticExtractor{
		entityPatterns: buildEntityPatterns(),
		contextGroups:  buildContextGroups(),
		queryRules:     buildQueryRules(),
		logger:         logger,
	}
}

func buildEntityPatterns() []entityPatternSet {
	compile := func(exprs ...string) []*regexp.Regexp {
		out := make([]*regexp.Regexp, len(exprs))
		for i, e := range exprs {
			out[i] = regexp.MustCompile(e)
		}
		return out
	}
	return []entityPatternSet{
		{"person", compile(
			`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`,
			`(?:Mr\.|Mrs\.|Ms\.|Dr\.)\s+[A-Z][a-z]+`,
		)},
		{"organization", compile(
			`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Inc\.|Corp\.|LLC|Ltd\.)`,
			`[A-Z]{2,}\s+(?:Corporation|Company|Industries)`,
		)},
		{"date", compile(
			`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`,
			`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`,
			`\d{4}-\d{2}-\d{2}`,
		)},
		{"money", compile(
			`\$[\d,]+\.?\d*`,
			`[\d,]+\.?\d*\s*(?:USD|EUR|GBP)`,
			`(?:€|£|¥)[\d,]+\.?\d*`,
		)},
		{"email", compile(
			`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
		)},
		{"phone", compile(
			`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
			`\(\d{3}\)\s*\d{3}-\d{4}`,
		)},
		{"address", compile(
			`\d+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd)`,
		)},
	}
}

func buildContextGroups() []contextGroup {
	rule := func(field, expr string) contextRule {
		return contextRule{field: field, pattern: regexp.MustCompile(`(?i)` + expr)}
	}
	return []contextGroup{
		{
			name:     "payment_info",
			triggers: []string{"payment", "pay", "due", "amount", "total"},
			rules: []contextRule{
				rule("amount", `(?:total|amount|due|payment)\s*:?\s*\$?([\d,]+\.?\d*)`),
				rule("due_date", `(?:due|payment)\s+(?:date|by)\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				rule("method", `(?:pay|payment)\s+(?:by|via|method)\s*:?\s*(\w+)`),
			},
		},
		{
			name:     "contact_info",
			triggers: []string{"contact", "phone", "email", "address", "reach"},
			rules: []contextRule{
				rule("phone", `(?:phone|tel|call)\s*:?\s*([\d\s\-\(\)]+)`),
				rule("email", `(?:email|e-mail)\s*:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
				rule("address", `(?:address|location)\s*:?\s*([^\n]+)`),
			},
		},
		{
			name:     "identification",
			triggers: []string{"id", "number", "reference", "account"},
			rules: []contextRule{
				rule("id_number", `(?:id|identification|account|reference)\s*(?:number|#|no)?\s*:?\s*([A-Z0-9\-]+)`),
				rule("customer_id", `(?:customer|client)\s*(?:id|#)\s*:?\s*([A-Z0-9\-]+)`),
			},
		},
		{
			name:     "dates",
			triggers: []string{"date", "issued", "effective", "expires"},
			rules: []contextRule{
				rule("issue_date", `(?:issue|issued|created)\s+(?:date)?\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				rule("effective_date", `(?:effective|start)\s+(?:date)?\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				rule("expiry_date", `(?:expir|end)\w*\s+(?:date)?\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			},
		},
	}
}

func buildQueryRules() []queryRule {
	rule := func(key, expr string) queryRule {
		return queryRule{key: key, pattern: regexp.MustCompile(`(?i)` + expr)}
	}
	return []queryRule{
		rule("total", `total\s*:?\s*\$?([\d,]+\.?\d*)`),
		rule("date", `date\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		rule("name", `(?:name|from|to)\s*:?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		rule("number", `(?:number|#|no)\s*:?\s*([A-Z0-9\-]+)`),
		rule("amount", `(?:amount|sum|price)\s*:?\s*\$?([\d,]+\.?\d*)`),
		rule("address", `address\s*:?\s*([^\n]+)`),
		rule("email", `([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		rule("phone", `(\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`),
	}
}

// Extract runs entity recognition, context-driven field extraction, optional
// query-driven extraction, and document summarization over the text.
func (e *SemanticExtractor) Extract(text string, queries []string) SemanticResult {
	textLower := strings.ToLower(text)
	fields := make(map[string]SemanticField)

	entities := e.extractEntities(text)

	for _, group := range e.contextGroups {
		triggered := false
		for _, trigger := range group.triggers {
			if strings.Contains(textLower, trigger) {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}
		for _, r := range group.rules {
			m := r.pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			fields[r.field] = SemanticField{
				Name:       r.field,
				Value:      strings.TrimSpace(m[1]),
				Confidence: 0.85,
				Context:    group.name,
				Reasoning:  fmt.Sprintf("Found in %s context with pattern match", group.name),
			}
		}
	}

	for _, query := range queries {
		if field, ok := e.extractFromQuery(text, query); ok {
			fields[field.Name] = field
		}
	}

	capped := entities
	if len(capped) > maxEntities {
		capped = capped[:maxEntities]
	}

	return SemanticResult{
		Fields:    fields,
		Summary:   summarize(text, entities),
		Entities:  capped,
		KeyPoints: extractKeyPoints(text),
	}
}

func (e *SemanticExtractor) extractEntities(text string) []Entity {
	var entities []Entity
	for _, set := range e.entityPatterns {
		for _, re := range set.patterns {
			for _, match := range re.FindAllString(text, -1) {
				if set.entityType == "person" && isPersonFalsePositive(match) {
					continue
				}
				entities = append(entities, Entity{
					Type:       set.entityType,
					Value:      match,
					Confidence: 0.8,
				})
			}
		}
	}
	return entities
}

func isPersonFalsePositive(match string) bool {
	lower := strings.ToLower(match)
	if personExclusions[lower] {
		return true
	}
	for _, word := range personProductWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// extractFromQuery resolves a natural language query like "What is the
// invoice total?" to the first query rule whose key appears in the query.
func (e *SemanticExtractor) extractFromQuery(text, query string) (SemanticField, bool) {
	queryLower := strings.ToLower(query)
	for _, r := range e.queryRules {
		if !strings.Contains(queryLower, r.key) {
			continue
		}
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return SemanticField{
			Name:       r.key,
			Value:      strings.TrimSpace(m[1]),
			Confidence: 0.75,
			Context:    "query",
			Reasoning:  fmt.Sprintf("Extracted based on query: %s", query),
		}, true
	}
	return SemanticField{}, false
}

// ExtractWithSchema maps each property's description to a query and renames
// the hit to the property name.
func (e *SemanticExtractor) ExtractWithSchema(text string, schema Schema) map[string]SemanticField {
	fields := make(map[string]SemanticField)
	for name, prop := range schema.Properties {
		if prop.Description == "" {
			continue
		}
		if field, ok := e.extractFromQuery(text, prop.Description); ok {
			field.Name = name
			fields[name] = field
		}
	}
	return fields
}

func summarize(text string, entities []Entity) string {
	counts := map[string]int{}
	for _, e := range entities {
		counts[e.Type]++
	}

	var parts []string
	if n := counts["organization"]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d organization(s)", n))
	}
	if n := counts["person"]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d person(s)", n))
	}
	if n := counts["money"]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d monetary value(s)", n))
	}
	if n := counts["date"]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d date(s)", n))
	}

	if len(parts) > 0 {
		return fmt.Sprintf("Document contains: %s.", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("Document with %d words.", len(strings.Fields(text)))
}

var (
	reBulletPoint = regexp.MustCompile(`(?m)^\s*(?:[•\-\*]|\d+\.)\s*(.+)$`)
	reImportant   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:important|note|attention|warning)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)(?:please|must|required)\s+([^\n]+)`),
	}
)

func extractKeyPoints(text string) []string {
	var points []string

	bullets := reBulletPoint.FindAllStringSubmatch(text, 5)
	for _, m := range bullets {
		points = append(points, strings.TrimSpace(m[1]))
	}

	for _, re := range reImportant {
		for _, m := range re.FindAllStringSubmatch(text, 2) {
			points = append(points, strings.TrimSpace(m[1]))
		}
	}

	if len(points) > 10 {
		points = points[:10]
	}
	return points
}
