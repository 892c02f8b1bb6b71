package classify

import (
	"regexp"
	"strings"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// lexiconEntry is one scoring signal: either a literal keyword matched
// case-insensitively, or a compiled pattern. A matching entry contributes its
// weight at most once per document, so repeated boilerplate cannot dominate.
type lexiconEntry struct {
	keyword string
	pattern *regexp.Regexp
	weight  float64
}

func (e lexiconEntry) matches(text, lower string) bool {
	if e.pattern != nil {
		return e.pattern.MatchString(text)
	}
	return strings.Contains(lower, e.keyword)
}

type typeLexicon struct {
	entries     []lexiconEntry
	totalWeight float64
}

func keyword(k string, w float64) lexiconEntry {
	return lexiconEntry{keyword: k, weight: w}
}

func pattern(name, expr string, w float64) lexiconEntry {
	return lexiconEntry{keyword: name, pattern: regexp.MustCompile(expr), weight: w}
}

func newTypeLexicon(entries ...lexiconEntry) typeLexicon {
	lex := typeLexicon{entries: entries}
	for _, e := range entries {
		lex.totalWeight += e.weight
	}
	return lex
}

func buildTypeLexicons() map[constants.DocumentType]typeLexicon {
	return map[constants.DocumentType]typeLexicon{
		constants.Invoice: newTypeLexicon(
			keyword("invoice", 3),
			pattern("invoice number", `(?i)invoice\s*(?:number|no\.?|#)`, 3),
			keyword("bill to", 1.5),
			keyword("payment terms", 1),
			keyword("due date", 1),
			keyword("subtotal", 0.75),
			keyword("amount due", 0.75),
		),
		constants.Receipt: newTypeLexicon(
			keyword("receipt", 3),
			keyword("cashier", 2),
			pattern("paid by", `(?i)paid\s+(?:by|via|with)`, 2),
			keyword("transaction", 1),
			keyword("change due", 0.5),
			keyword("change", 0.5),
			keyword("thank you for shopping", 1),
		),
		constants.Contract: newTypeLexicon(
			keyword("agreement", 3),
			keyword("contract", 3),
			keyword("whereas", 1.5),
			pattern("hereby agree", `(?i)hereby\s+agrees?`, 1.5),
			pattern("in witness whereof", `(?i)in\s+witness\s+whereof`, 1.5),
			keyword("parties", 1),
			pattern("entered into", `(?i)entered\s+into`, 1),
		),
		constants.Form: newTypeLexicon(
			keyword("application form", 3),
			pattern("please fill", `(?i)please\s+(?:fill|complete)`, 2),
			keyword("applicant", 2),
			keyword("checkbox", 1),
			keyword("signature", 1),
			pattern("field label", `(?m)^[A-Za-z ]{2,30}:\s*_{3,}`, 1),
		),
		constants.Letter: newTypeLexicon(
			pattern("dear", `(?im)^\s*dear\b`, 3),
			keyword("sincerely", 3),
			keyword("regards", 2),
			keyword("yours truly", 1),
			keyword("best wishes", 1),
		),
		constants.Report: newTypeLexicon(
			keyword("executive summary", 3),
			keyword("findings", 2),
			keyword("conclusion", 2),
			keyword("analysis", 1.5),
			keyword("report", 1.5),
		),
		constants.IDDocument: newTypeLexicon(
			keyword("passport", 3),
			pattern("driver's license", `(?i)driver'?s?\s+licen[sc]e`, 3),
			keyword("date of birth", 1.5),
			keyword("nationality", 1.5),
			pattern("id card", `(?i)\bid(?:entity)?\s+card\b`, 2),
			keyword("expiration date", 1),
		),
		constants.BankStatement: newTypeLexicon(
			keyword("bank statement", 3),
			keyword("statement period", 2),
			keyword("opening balance", 2),
			keyword("closing balance", 2),
			keyword("deposit", 1),
			keyword("withdrawal", 1),
		),
		constants.TaxDocument: newTypeLexicon(
			pattern("tax form", `(?i)\bform\s+(?:1040|1099|w-?2|w-?4)\b`, 3),
			keyword("tax year", 2),
			keyword("taxable income", 2),
			keyword("tax return", 2),
			keyword("irs", 2),
			keyword("withholding", 1),
		),
		constants.Medical: newTypeLexicon(
			keyword("patient", 3),
			keyword("diagnosis", 2),
			keyword("prescription", 2),
			keyword("medication", 1),
			keyword("treatment", 1),
			keyword("dosage", 1),
			pattern("facility", `(?i)\b(?:hospital|clinic)\b`, 1),
		),
	}
}
