package language

import (
	"sort"
	"strings"
	"unicode"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// DetectionResult describes the language and script of a document.
type DetectionResult struct {
	PrimaryLanguage    constants.Language             `json:"primary_language"`
	Confidence         float64                        `json:"confidence"`
	AllScores          map[constants.Language]float64 `json:"all_scores"`
	ScriptDetected     constants.Script               `json:"script_detected"`
	IsMultilingual     bool                           `json:"is_multilingual"`
	SecondaryLanguages []constants.Language           `json:"secondary_languages"`
}

// Config tunes detection thresholds.
type Config struct {
	// SecondaryThreshold is the minimum score for a non-primary language to be
	// reported as secondary. Default 0.10.
	SecondaryThreshold float64
}

// Detector identifies a document's language in two phases: script
// classification over Unicode code points, then lexical disambiguation among
// Latin-script languages. Lexicons are built once at construction; a single
// Detector is safe for concurrent use.
type Detector struct {
	cfg      Config
	lexicons map[constants.Language]lexicon
}

func NewDetector(cfg Config) *Detector {
	if cfg.SecondaryThreshold <= 0 {
		cfg.SecondaryThreshold = 0.10
	}
	return &Detector{cfg: cfg, lexicons: buildLexicons()}
}

// Detect classifies the script of text, then scores Latin-script candidates
// against per-language lexicons. Empty or unclassifiable input yields the
// unknown sentinel with zero confidence.
func (d *Detector) Detect(text string) DetectionResult {
	if strings.TrimSpace(text) == "" {
		return DetectionResult{
			PrimaryLanguage: constants.LangUnknown,
			AllScores:       map[constants.Language]float64{},
			ScriptDetected:  constants.ScriptNone,
		}
	}

	script, fraction := classifyScript(text)
	if script == constants.ScriptNone {
		return DetectionResult{
			PrimaryLanguage: constants.LangUnknown,
			AllScores:       map[constants.Language]float64{},
			ScriptDetected:  constants.ScriptNone,
		}
	}

	scores := d.scoreLatinLanguages(text)

	if script != constants.ScriptLatin {
		primary := scriptLanguage(script)
		scores[primary] = fraction
		return DetectionResult{
			PrimaryLanguage: primary,
			Confidence:      clamp01(fraction),
			AllScores:       scores,
			ScriptDetected:  script,
		}
	}

	primary := constants.LangUnknown
	best := 0.0
	for _, lang := range latinLanguages {
		if scores[lang] > best {
			best = scores[lang]
			primary = lang
		}
	}
	if primary == constants.LangUnknown {
		return DetectionResult{
			PrimaryLanguage: constants.LangUnknown,
			AllScores:       scores,
			ScriptDetected:  script,
		}
	}

	secondary := d.secondaryLanguages(primary, scores)
	return DetectionResult{
		PrimaryLanguage:    primary,
		Confidence:         clamp01(best),
		AllScores:          scores,
		ScriptDetected:     script,
		IsMultilingual:     len(secondary) > 0,
		SecondaryLanguages: secondary,
	}
}

// SupportedLanguages returns every detectable language code, excluding unknown.
func (d *Detector) SupportedLanguages() []string {
	return constants.LanguageStrings()
}

func (d *Detector) secondaryLanguages(primary constants.Language, scores map[constants.Language]float64) []constants.Language {
	var out []constants.Language
	for _, lang := range latinLanguages {
		if lang != primary && scores[lang] >= d.cfg.SecondaryThreshold {
			out = append(out, lang)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// classifyScript tallies classifiable code points per script; the plurality
// wins. Returns the winning script and its share of classifiable characters.
func classifyScript(text string) (constants.Script, float64) {
	counts := map[constants.Script]int{}
	total := 0
	for _, r := range text {
		var s constants.Script
		switch {
		case unicode.Is(unicode.Latin, r):
			s = constants.ScriptLatin
		case unicode.Is(unicode.Cyrillic, r):
			s = constants.ScriptCyrillic
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			s = constants.ScriptJapanese
		case unicode.Is(unicode.Han, r):
			s = constants.ScriptCJK
		case unicode.Is(unicode.Hangul, r):
			s = constants.ScriptHangul
		case unicode.Is(unicode.Arabic, r):
			s = constants.ScriptArabic
		default:
			continue
		}
		counts[s]++
		total++
	}
	if total == 0 {
		return constants.ScriptNone, 0
	}

	// Kana anywhere means Japanese even when Han ideographs dominate.
	if counts[constants.ScriptJapanese] > 0 && counts[constants.ScriptCJK] > 0 {
		counts[constants.ScriptJapanese] += counts[constants.ScriptCJK]
		delete(counts, constants.ScriptCJK)
	}

	best := constants.ScriptNone
	bestCount := 0
	for _, s := range scriptOrder {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best, float64(bestCount) / float64(total)
}

var scriptOrder = []constants.Script{
	constants.ScriptLatin,
	constants.ScriptCyrillic,
	constants.ScriptCJK,
	constants.ScriptJapanese,
	constants.ScriptHangul,
	constants.ScriptArabic,
}

func scriptLanguage(s constants.Script) constants.Language {
	switch s {
	case constants.ScriptCyrillic:
		return constants.LangRussian
	case constants.ScriptCJK:
		return constants.LangChinese
	case constants.ScriptJapanese:
		return constants.LangJapanese
	case constants.ScriptHangul:
		return constants.LangKorean
	case constants.ScriptArabic:
		return constants.LangArabic
	default:
		return constants.LangUnknown
	}
}

// scoreLatinLanguages scores each Latin-script candidate by stop-word hits
// over the token count, plus a capped bonus for language-specific marks.
func (d *Detector) scoreLatinLanguages(text string) map[constants.Language]float64 {
	tokens := tokenize(text)
	scores := make(map[constants.Language]float64, len(latinLanguages))
	if len(tokens) == 0 {
		for _, lang := range latinLanguages {
			scores[lang] = 0
		}
		return scores
	}

	for _, lang := range latinLanguages {
		lex := d.lexicons[lang]
		hits := 0
		for _, tok := range tokens {
			if _, ok := lex.stopwords[tok]; ok {
				hits++
			}
		}
		markCount := 0
		for _, r := range text {
			if _, ok := lex.marks[r]; ok {
				markCount++
			}
		}
		bonus := 0.05 * float64(markCount)
		if bonus > 0.3 {
			bonus = 0.3
		}
		scores[lang] = clamp01(float64(hits)/float64(len(tokens)) + bonus)
	}
	return scores
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
