package language

import (
	"regexp"
	"strings"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// MultilingualResult is the outcome of language-aware field extraction.
type MultilingualResult struct {
	Language  string            `json:"language"`
	Fields    map[string]string `json:"fields"`
	Detection DetectionResult   `json:"detection"`
}

// MultiLanguageProcessor extracts labelled fields using localized label
// tables: the document's language selects which label to search for.
type MultiLanguageProcessor struct {
	detector *Detector
	labels   map[string]map[constants.Language]string
}

func NewMultiLanguageProcessor(detector *Detector) *MultiLanguageProcessor {
	if detector == nil {
		detector = NewDetector(Config{})
	}
	return &MultiLanguageProcessor{
		detector: detector,
		labels:   buildFieldLabels(),
	}
}

// FieldPattern returns the localized label for a field in the given language.
func (p *MultiLanguageProcessor) FieldPattern(field string, lang constants.Language) (string, bool) {
	byLang, ok := p.labels[field]
	if !ok {
		return "", false
	}
	if label, ok := byLang[lang]; ok {
		return label, true
	}
	label, ok := byLang[constants.LangEnglish]
	return label, ok
}

// ProcessMultilingual detects the document language, then searches for each
// requested field under its localized label. Missing fields are simply absent
// from the result; no error is raised.
func (p *MultiLanguageProcessor) ProcessMultilingual(text string, fieldNames []string) MultilingualResult {
	detection := p.detector.Detect(text)
	result := MultilingualResult{
		Language:  string(detection.PrimaryLanguage),
		Fields:    map[string]string{},
		Detection: detection,
	}

	for _, field := range fieldNames {
		label, ok := p.FieldPattern(field, detection.PrimaryLanguage)
		if !ok {
			label = strings.ReplaceAll(field, "_", " ")
		}
		if value := searchLabelled(text, label); value != "" {
			result.Fields[field] = value
		}
	}
	return result
}

// searchLabelled matches `<label> [is|es|est|ist|:|-] <value>` on one line.
func searchLabelled(text, label string) string {
	pattern := `(?i)` + regexp.QuoteMeta(label) + `\s*(?:is|es|est|ist)?\s*[:\-]?\s*([^\n.]+)`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func buildFieldLabels() map[string]map[constants.Language]string {
	return map[string]map[constants.Language]string{
		"invoice_number": {
			constants.LangEnglish:    "invoice number",
			constants.LangSpanish:    "número de factura",
			constants.LangFrench:     "numéro de facture",
			constants.LangGerman:     "rechnungsnummer",
			constants.LangItalian:    "numero di fattura",
			constants.LangPortuguese: "número da fatura",
		},
		"date": {
			constants.LangEnglish:    "date",
			constants.LangSpanish:    "fecha",
			constants.LangFrench:     "date",
			constants.LangGerman:     "datum",
			constants.LangItalian:    "data",
			constants.LangPortuguese: "data",
		},
		"total": {
			constants.LangEnglish:    "total",
			constants.LangSpanish:    "total",
			constants.LangFrench:     "total",
			constants.LangGerman:     "gesamtbetrag",
			constants.LangItalian:    "totale",
			constants.LangPortuguese: "total",
		},
		"due_date": {
			constants.LangEnglish:    "due date",
			constants.LangSpanish:    "fecha de vencimiento",
			constants.LangFrench:     "date d'échéance",
			constants.LangGerman:     "fälligkeitsdatum",
			constants.LangItalian:    "data di scadenza",
			constants.LangPortuguese: "data de vencimento",
		},
		"amount": {
			constants.LangEnglish:    "amount",
			constants.LangSpanish:    "importe",
			constants.LangFrench:     "montant",
			constants.LangGerman:     "betrag",
			constants.LangItalian:    "importo",
			constants.LangPortuguese: "valor",
		},
	}
}
