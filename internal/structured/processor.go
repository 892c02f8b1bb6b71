package structured

import (
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/azzindani/06-Nanonets-OCRs/internal/classify"
	"github.com/azzindani/06-Nanonets-OCRs/internal/fields"
	"github.com/azzindani/06-Nanonets-OCRs/internal/language"
	"github.com/azzindani/06-Nanonets-OCRs/internal/lineitems"
	"github.com/azzindani/06-Nanonets-OCRs/internal/markup"
)

// RawData echoes the inputs of a processing run alongside the per-page parse.
type RawData struct {
	RunID      string              `json:"run_id"`
	Text       string              `json:"text"`
	TablesHTML []string            `json:"tables_html"`
	Pages      []markup.ParsedPage `json:"pages"`
}

// StructuredOutput is the unified result of one processing run.
type StructuredOutput struct {
	DocumentType    string               `json:"document_type"`
	Confidence      float64              `json:"confidence"`
	Language        string               `json:"language"`
	ExtractedFields map[string]any       `json:"extracted_fields"`
	LineItems       []lineitems.LineItem `json:"line_items"`
	Entities        []fields.Entity      `json:"entities"`
	Raw             RawData              `json:"raw"`
}

// Config tunes the assembly pipeline.
type Config struct {
	// NormalizeInput runs OCR text cleanup before any analysis.
	NormalizeInput bool
	// MaxEntities caps the entities echoed in the output. Default 20.
	MaxEntities int
	// MinClassifyConfidence is passed through to the classifier.
	MinClassifyConfidence float64
	// SecondaryThreshold is passed through to the language detector.
	SecondaryThreshold float64
}

// Processor runs the full pipeline over OCR text: classification, language
// detection, type-driven field extraction, entity extraction, and line item
// parsing, assembled into one output. Every stage is deterministic, so
// Process never returns an error; absent signals degrade to unknown values
// and empty collections.
type Processor struct {
	cfg        Config
	classifier *classify.Classifier
	detector   *language.Detector
	semantic   *fields.SemanticExtractor
	patterns   *fields.PatternTable
	parser     *markup.Parser
	items      *lineitems.Parser
	logger     *slog.Logger
}

func NewProcessor(cfg Config, patterns *fields.PatternTable, logger *slog.Logger) *Processor {
	if cfg.MaxEntities <= 0 {
		cfg.MaxEntities = 20
	}
	if patterns == nil {
		patterns = fields.DefaultPatternTable()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:        cfg,
		classifier: classify.NewClassifier(classify.Config{MinConfidence: cfg.MinClassifyConfidence}),
		detector:   language.NewDetector(language.Config{SecondaryThreshold: cfg.SecondaryThreshold}),
		semantic:   fields.NewSemanticExtractor(logger),
		patterns:   patterns,
		parser:     markup.NewParser(),
		items:      lineitems.NewParser(logger),
		logger:     logger,
	}
}

// Process assembles the structured output for one document. When tablesHTML
// is nil the tables found in the parsed pages are used for line items
// instead.
func (p *Processor) Process(text string, tablesHTML []string) StructuredOutput {
	runID := uuid.NewString()

	if p.cfg.NormalizeInput {
		text = markup.Normalize(text)
	}

	classification := p.classifier.Classify(text)
	detection := p.detector.Detect(text)
	parsed := p.parser.Parse(text)

	itemTables := tablesHTML
	if itemTables == nil {
		for _, page := range parsed.Pages {
			itemTables = append(itemTables, page.TablesHTML...)
		}
	}

	semantic := p.semantic.Extract(text, nil)
	entities := semantic.Entities
	if len(entities) > p.cfg.MaxEntities {
		entities = entities[:p.cfg.MaxEntities]
	}

	out := StructuredOutput{
		DocumentType:    string(classification.DocumentType),
		Confidence:      round2(classification.Confidence),
		Language:        string(detection.PrimaryLanguage),
		ExtractedFields: p.extractFields(text, classification),
		LineItems:       p.items.ParseAll(itemTables),
		Entities:        entities,
		Raw: RawData{
			RunID:      runID,
			Text:       text,
			TablesHTML: orEmpty(tablesHTML),
			Pages:      parsed.Pages,
		},
	}

	p.logger.Info("processed document",
		"run_id", runID,
		"document_type", out.DocumentType,
		"language", out.Language,
		"fields", len(out.ExtractedFields),
		"line_items", len(out.LineItems),
	)
	return out
}

// extractFields applies the common pattern list, then the winning type's
// list. Values are trimmed and stripped of markdown bold markers; bill_to
// and ship_to are nested into small objects.
func (p *Processor) extractFields(text string, classification classify.Result) map[string]any {
	out := make(map[string]any)

	for _, fp := range p.patterns.Common {
		if v, ok := fields.FirstMatch(text, fp.Patterns); ok {
			if cleaned := cleanValue(v); cleaned != "" {
				out[fp.Field] = cleaned
			}
		}
	}

	for _, fp := range p.patterns.PerType[classification.DocumentType] {
		v, ok := fields.FirstMatch(text, fp.Patterns)
		if !ok {
			continue
		}
		cleaned := cleanValue(v)
		if cleaned == "" {
			continue
		}
		switch fp.Field {
		case "bill_to":
			out["bill_to"] = map[string]any{"name": cleaned}
		case "ship_to":
			out["ship_to"] = map[string]any{"location": cleaned}
		default:
			out[fp.Field] = cleaned
		}
	}
	return out
}

func cleanValue(v string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(v), "*"))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
