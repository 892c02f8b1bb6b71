package language

import (
	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// latinLanguages are the candidates for lexical disambiguation, in fixed
// scoring order.
var latinLanguages = []constants.Language{
	constants.LangEnglish,
	constants.LangSpanish,
	constants.LangFrench,
	constants.LangGerman,
	constants.LangItalian,
	constants.LangPortuguese,
}

type lexicon struct {
	stopwords map[string]struct{}
	marks     map[rune]struct{}
}

func newLexicon(stopwords []string, marks string) lexicon {
	lex := lexicon{
		stopwords: make(map[string]struct{}, len(stopwords)),
		marks:     make(map[rune]struct{}),
	}
	for _, w := range stopwords {
		lex.stopwords[w] = struct{}{}
	}
	for _, r := range marks {
		lex.marks[r] = struct{}{}
	}
	return lex
}

func buildLexicons() map[constants.Language]lexicon {
	return map[constants.Language]lexicon{
		constants.LangEnglish: newLexicon([]string{
			"the", "and", "of", "to", "in", "is", "that", "for", "with", "this",
			"was", "are", "have", "from", "not", "you", "your", "over", "by", "a",
		}, ""),
		constants.LangSpanish: newLexicon([]string{
			"el", "la", "los", "las", "de", "que", "en", "un", "una", "por",
			"con", "para", "su", "al", "lo", "como", "más", "pero", "sus", "sobre",
		}, "áéíóúñ¿¡"),
		constants.LangFrench: newLexicon([]string{
			"le", "la", "les", "des", "un", "une", "et", "est", "en", "que",
			"qui", "dans", "pour", "pas", "sur", "par", "avec", "ce", "il", "au",
		}, "àâçèéêëîïôùûœ"),
		constants.LangGerman: newLexicon([]string{
			"der", "die", "das", "und", "ist", "den", "ein", "eine", "von", "mit",
			"für", "auf", "nicht", "im", "dem", "des", "sich", "auch", "ich", "zu",
		}, "äöüß"),
		constants.LangItalian: newLexicon([]string{
			"il", "la", "di", "che", "e", "un", "per", "con", "non", "sono",
			"della", "questo", "una", "gli", "del", "si", "nel", "come", "anche", "più",
		}, "àèìòù"),
		constants.LangPortuguese: newLexicon([]string{
			"o", "a", "os", "as", "de", "que", "e", "do", "da", "em",
			"um", "uma", "para", "com", "não", "se", "na", "no", "por", "mais",
		}, "ãõâêôç"),
	}
}
