package classify

import (
	"math"
	"strings"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// Result is the outcome of classifying one document.
type Result struct {
	DocumentType  constants.DocumentType             `json:"document_type"`
	Confidence    float64                            `json:"confidence"`
	AllScores     map[constants.DocumentType]float64 `json:"all_scores"`
	KeywordsFound []string                           `json:"keywords_found"`
}

// Config tunes classification behavior.
type Config struct {
	// MinConfidence is the floor below which the winning score degrades to the
	// unknown sentinel. Default 0.15.
	MinConfidence float64
}

// Classifier scores document text against per-type keyword/pattern lexicons.
// Lexicons are compiled once at construction and never mutated, so a single
// Classifier is safe for concurrent use.
type Classifier struct {
	cfg      Config
	lexicons map[constants.DocumentType]typeLexicon
}

func NewClassifier(cfg Config) *Classifier {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.15
	}
	return &Classifier{cfg: cfg, lexicons: buildTypeLexicons()}
}

// Classify sums the weights of matching lexicon entries per type (each entry
// counts at most once) and normalizes against the type's maximum attainable
// score. Ties break by declaration order in constants.ClassifiableTypes. A
// winning score below the confidence floor yields the unknown sentinel.
func (c *Classifier) Classify(text string) Result {
	result := Result{
		DocumentType: constants.UnknownDocument,
		AllScores:    make(map[constants.DocumentType]float64, len(constants.ClassifiableTypes)),
	}

	lower := strings.ToLower(text)
	keywordsByType := make(map[constants.DocumentType][]string)

	for _, dt := range constants.ClassifiableTypes {
		lex := c.lexicons[dt]
		matched := 0.0
		for _, entry := range lex.entries {
			if entry.matches(text, lower) {
				matched += entry.weight
				keywordsByType[dt] = append(keywordsByType[dt], entry.keyword)
			}
		}
		score := 0.0
		if lex.totalWeight > 0 {
			score = matched / lex.totalWeight
		}
		result.AllScores[dt] = roundScore(score)
	}

	best := constants.UnknownDocument
	bestScore := 0.0
	for _, dt := range constants.ClassifiableTypes {
		if result.AllScores[dt] > bestScore {
			best = dt
			bestScore = result.AllScores[dt]
		}
	}

	if best == constants.UnknownDocument || bestScore < c.cfg.MinConfidence {
		return result
	}

	result.DocumentType = best
	result.Confidence = bestScore
	result.KeywordsFound = keywordsByType[best]
	return result
}

// ClassifyWithRouting additionally maps the winning type to the name of a
// predefined extraction schema for callers that route on schema identifiers.
func (c *Classifier) ClassifyWithRouting(text string) (Result, string) {
	result := c.Classify(text)
	return result, schemaNameFor(result.DocumentType)
}

// SupportedTypes returns every classifiable type name, excluding unknown.
func (c *Classifier) SupportedTypes() []string {
	return constants.DocumentTypeStrings()
}

func schemaNameFor(dt constants.DocumentType) string {
	switch dt {
	case constants.Invoice:
		return "invoice"
	case constants.Receipt:
		return "receipt"
	default:
		return "generic"
	}
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
