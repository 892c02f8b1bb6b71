package constants

// Language is an ISO-639-1-like code for a detected language.
type Language string

const (
	LangEnglish    Language = "en"
	LangSpanish    Language = "es"
	LangFrench     Language = "fr"
	LangGerman     Language = "de"
	LangItalian    Language = "it"
	LangPortuguese Language = "pt"
	LangDutch      Language = "nl"
	LangPolish     Language = "pl"
	LangSwedish    Language = "sv"
	LangDanish     Language = "da"
	LangNorwegian  Language = "no"
	LangFinnish    Language = "fi"
	LangCzech      Language = "cs"
	LangTurkish    Language = "tr"
	LangRussian    Language = "ru"
	LangUkrainian  Language = "uk"
	LangChinese    Language = "zh"
	LangJapanese   Language = "ja"
	LangKorean     Language = "ko"
	LangArabic     Language = "ar"
	LangHindi      Language = "hi"
	LangThai       Language = "th"
	LangVietnamese Language = "vi"
	LangUnknown    Language = "unknown"
)

// SupportedLanguages lists every language the detector may report,
// excluding the unknown sentinel.
var SupportedLanguages = []Language{
	LangEnglish, LangSpanish, LangFrench, LangGerman, LangItalian, LangPortuguese,
	LangDutch, LangPolish, LangSwedish, LangDanish, LangNorwegian, LangFinnish,
	LangCzech, LangTurkish, LangRussian, LangUkrainian, LangChinese, LangJapanese,
	LangKorean, LangArabic, LangHindi, LangThai, LangVietnamese,
}

// LanguageStrings returns the supported language codes as plain strings.
func LanguageStrings() []string {
	result := make([]string, len(SupportedLanguages))
	for i, l := range SupportedLanguages {
		result[i] = string(l)
	}
	return result
}

// Script identifies the writing system detected in a document.
type Script string

const (
	ScriptLatin    Script = "latin"
	ScriptCyrillic Script = "cyrillic"
	ScriptCJK      Script = "cjk"
	ScriptJapanese Script = "japanese"
	ScriptHangul   Script = "hangul"
	ScriptArabic   Script = "arabic"
	ScriptNone     Script = "none"
)
