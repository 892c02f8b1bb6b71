package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

func TestDetectEnglish(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("The quick brown fox jumps over the lazy dog. This is a sample English text.")

	assert.Equal(t, constants.LangEnglish, res.PrimaryLanguage)
	assert.Greater(t, res.Confidence, 0.3)
	assert.Equal(t, constants.ScriptLatin, res.ScriptDetected)
}

func TestDetectSpanish(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("El rápido zorro marrón salta sobre el perro perezoso. ¿Qué tal?")

	assert.Equal(t, constants.LangSpanish, res.PrimaryLanguage)
	assert.Equal(t, constants.ScriptLatin, res.ScriptDetected)
}

func TestDetectFrench(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("Le renard brun rapide saute par-dessus le chien paresseux. C'est un texte en français.")

	assert.Equal(t, constants.LangFrench, res.PrimaryLanguage)
}

func TestDetectGerman(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("Der schnelle braune Fuchs springt über den faulen Hund. Das ist ein deutscher Text.")

	assert.Equal(t, constants.LangGerman, res.PrimaryLanguage)
}

func TestDetectNonLatinScripts(t *testing.T) {
	d := NewDetector(Config{})

	tests := []struct {
		name   string
		text   string
		lang   constants.Language
		script constants.Script
	}{
		{"russian", "Это текст на русском языке. Привет, как дела?", constants.LangRussian, constants.ScriptCyrillic},
		{"chinese", "这是一段中文文本。你好，世界！", constants.LangChinese, constants.ScriptCJK},
		{"japanese", "これは日本語のテキストです。こんにちは。", constants.LangJapanese, constants.ScriptJapanese},
		{"korean", "이것은 한국어 텍스트입니다. 안녕하세요.", constants.LangKorean, constants.ScriptHangul},
		{"arabic", "هذا نص باللغة العربية. مرحبا بالعالم.", constants.LangArabic, constants.ScriptArabic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Detect(tt.text)
			assert.Equal(t, tt.lang, res.PrimaryLanguage)
			assert.Equal(t, tt.script, res.ScriptDetected)
			assert.Greater(t, res.Confidence, 0.0)
		})
	}
}

func TestDetectEmptyAndWhitespace(t *testing.T) {
	d := NewDetector(Config{})

	for _, text := range []string{"", "   \n\t  "} {
		res := d.Detect(text)
		assert.Equal(t, constants.LangUnknown, res.PrimaryLanguage)
		assert.Equal(t, 0.0, res.Confidence)
		assert.Equal(t, constants.ScriptNone, res.ScriptDetected)
		assert.False(t, res.IsMultilingual)
	}
}

func TestDetectScoresWithinRange(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("The quick brown fox")

	require.NotEmpty(t, res.AllScores)
	for lang, score := range res.AllScores {
		assert.GreaterOrEqual(t, score, 0.0, "lang %s", lang)
		assert.LessOrEqual(t, score, 1.0, "lang %s", lang)
	}
}

func TestDetectMultilingualShape(t *testing.T) {
	d := NewDetector(Config{})
	res := d.Detect("Hello world. Hola mundo. Bonjour le monde.")

	for _, lang := range res.SecondaryLanguages {
		assert.NotEqual(t, res.PrimaryLanguage, lang)
	}
	if len(res.SecondaryLanguages) > 0 {
		assert.True(t, res.IsMultilingual)
	}
}

func TestDetectIdempotent(t *testing.T) {
	d := NewDetector(Config{})
	text := "Der schnelle braune Fuchs springt über den faulen Hund."
	assert.Equal(t, d.Detect(text), d.Detect(text))
}

func TestSupportedLanguages(t *testing.T) {
	d := NewDetector(Config{})
	langs := d.SupportedLanguages()

	assert.GreaterOrEqual(t, len(langs), 20)
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "es")
	assert.NotContains(t, langs, "unknown")
}

func TestProcessMultilingualEnglish(t *testing.T) {
	p := NewMultiLanguageProcessor(nil)
	text := `The invoice number is INV-001.
The date of this invoice is January 15, 2024.
The total amount due is $500.00.
Please pay by the due date to avoid late fees.`

	res := p.ProcessMultilingual(text, []string{"invoice_number", "date", "total"})
	assert.Equal(t, "en", res.Language)
	assert.Contains(t, res.Fields, "invoice_number")
	assert.Contains(t, res.Fields["invoice_number"], "INV-001")
}

func TestProcessMultilingualSpanish(t *testing.T) {
	p := NewMultiLanguageProcessor(nil)
	text := `El número de factura es FACT-001.
La fecha de esta factura es 15 de enero de 2024.
El total que debe pagar es $500.00.
Por favor pague antes de la fecha para evitar cargos.`

	res := p.ProcessMultilingual(text, []string{"invoice_number", "date", "total"})
	assert.Equal(t, "es", res.Language)
	assert.Contains(t, res.Fields, "invoice_number")
}

func TestFieldPatternLocalized(t *testing.T) {
	p := NewMultiLanguageProcessor(nil)

	en, ok := p.FieldPattern("invoice_number", constants.LangEnglish)
	require.True(t, ok)
	assert.Equal(t, "invoice number", en)

	es, ok := p.FieldPattern("invoice_number", constants.LangSpanish)
	require.True(t, ok)
	assert.Equal(t, "número de factura", es)

	_, ok = p.FieldPattern("unknown_field", constants.LangEnglish)
	assert.False(t, ok)
}
