package fields

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

// FieldPatterns is an ordered list of search patterns for one field. The
// first pattern that matches wins; each pattern must have exactly one
// capture group.
type FieldPatterns struct {
	Field    string
	Patterns []*regexp.Regexp
}

// PatternTable holds label-driven extraction patterns: common fields applied
// to every document, plus per-type field lists. Field order within a list is
// significant and is preserved from construction or the YAML source.
type PatternTable struct {
	Common  []FieldPatterns
	PerType map[constants.DocumentType][]FieldPatterns
}

func fp(field string, exprs ...string) FieldPatterns {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		patterns[i] = regexp.MustCompile(`(?im)` + e)
	}
	return FieldPatterns{Field: field, Patterns: patterns}
}

// DefaultPatternTable is the built-in pattern set covering the classifiable
// document types.
func DefaultPatternTable() *PatternTable {
	return &PatternTable{
		Common: []FieldPatterns{
			fp("date",
				`(?:Date|Dated?)\s*:?\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`,
				`(?:Date|Dated?)\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`,
			),
			fp("total",
				`(?:Total|Grand Total|Amount Due|Balance Due)\s*:?\s*\*?\*?\s*\$?([\d,]+\.?\d*)`,
			),
		},
		PerType: map[constants.DocumentType][]FieldPatterns{
			constants.Invoice: {
				fp("invoice_number",
					`(?:Invoice|INV)\s*#?\s*:?\s*(\w+)`,
					`#\s*(\d+)`,
				),
				fp("bill_to",
					`Bill\s+To\s*:?\s*\*?\*?([^*\n]+?)(?:\n\n|\nShip)`,
					`Bill\s+To\s*:?\s*\*?\*?\s*([A-Za-z][A-Za-z\s]+?)(?:\n|Ship)`,
				),
				fp("ship_to", `Ship\s+To\s*:?\s*\*?\*?\s*([^\n]+)`),
				fp("subtotal", `Subtotal\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("discount", `Discount\s*(?:\([^)]+\))?\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("tax", `Tax\s*(?:\([^)]+\))?\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("shipping", `Shipping\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("ship_mode", `Ship\s+Mode\s*:?\s*([^\n]+)`),
				fp("order_id", `Order\s+ID\s*:?\s*([^\n]+)`),
				fp("notes", `Notes\s*:?\s*([^\n]+)`),
				fp("terms", `Terms\s*:?\s*([^\n]+)`),
			},
			constants.Receipt: {
				fp("receipt_number", `(?:Receipt|Transaction)\s*#?\s*:?\s*(\w+)`),
				fp("store", `^([A-Za-z\s]+?)(?:\n|Receipt)`),
				fp("cashier", `Cashier\s*:?\s*([^\n]+)`),
				fp("payment_method", `(?:Paid|Payment)\s+(?:by|via)\s*:?\s*([^\n]+)`),
			},
			constants.Contract: {
				fp("contract_date", `(?:dated?|entered into)\s+(?:as of\s+)?([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
				fp("parties", `(?:between|parties?)\s*:?\s*([^\n]+)`),
				fp("effective_date", `effective\s+(?:date)?\s*:?\s*([^\n]+)`),
			},
			constants.BankStatement: {
				fp("account_number",
					`(?:Account|Acct)\s*#?\s*:?\s*([X\d\-]+)`,
					`Account\s+Number\s*:?\s*([^\n]+)`,
				),
				fp("statement_period", `(?:Statement\s+Period|Period)\s*:?\s*([^\n]+)`),
				fp("opening_balance", `(?:Opening|Beginning)\s+Balance\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("closing_balance", `(?:Closing|Ending)\s+Balance\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("total_deposits", `(?:Total\s+)?Deposits\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("total_withdrawals", `(?:Total\s+)?Withdrawals\s*:?\s*\$?([\d,]+\.?\d*)`),
			},
			constants.IDDocument: {
				fp("document_number",
					`(?:ID|License|Passport)\s*#?\s*:?\s*([A-Z0-9\-]+)`,
					`(?:Number|No\.?)\s*:?\s*([A-Z0-9\-]+)`,
				),
				fp("full_name", `(?:Name|Full\s+Name)\s*:?\s*([A-Za-z\s]+)`),
				fp("date_of_birth", `(?:DOB|Date\s+of\s+Birth|Birth\s+Date)\s*:?\s*([^\n]+)`),
				fp("expiration_date", `(?:Exp|Expires?|Expiration)\s*:?\s*([^\n]+)`),
				fp("issue_date", `(?:Issued?|Issue\s+Date)\s*:?\s*([^\n]+)`),
				fp("address", `(?:Address|Addr)\s*:?\s*([^\n]+)`),
			},
			constants.Medical: {
				fp("patient_name", `(?:Patient|Name)\s*:?\s*([A-Za-z\s]+)`),
				fp("patient_id",
					`(?:Patient|Medical)\s*(?:ID|#)\s*:?\s*([^\n]+)`,
					`MRN\s*:?\s*([^\n]+)`,
				),
				fp("provider", `(?:Provider|Physician|Doctor)\s*:?\s*([^\n]+)`),
				fp("diagnosis", `(?:Diagnosis|Dx)\s*:?\s*([^\n]+)`),
				fp("visit_date", `(?:Visit|Service)\s+Date\s*:?\s*([^\n]+)`),
				fp("facility", `(?:Facility|Hospital|Clinic)\s*:?\s*([^\n]+)`),
			},
			constants.TaxDocument: {
				fp("tax_year", `(?:Tax\s+Year|Year)\s*:?\s*(\d{4})`),
				fp("form_type", `Form\s+(\d+[A-Z\-]*)`),
				fp("taxpayer_name", `(?:Taxpayer|Name)\s*:?\s*([^\n]+)`),
				fp("ssn", `(?:SSN|Social\s+Security)\s*:?\s*([X\d\-]+)`),
				fp("gross_income", `(?:Gross\s+Income|Total\s+Income)\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("tax_due", `(?:Tax\s+Due|Amount\s+Owed)\s*:?\s*\$?([\d,]+\.?\d*)`),
				fp("refund", `(?:Refund|Amount\s+Refunded)\s*:?\s*\$?([\d,]+\.?\d*)`),
			},
		},
	}
}

// FirstMatch returns the capture of the first pattern in the list that
// matches, or false when none do.
func FirstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

type patternTableFile struct {
	Common yaml.Node            `yaml:"common"`
	Types  map[string]yaml.Node `yaml:"types"`
}

// LoadPatternTable reads a pattern table from a YAML file shaped as
//
//	common:
//	  date: ["(?:Date)\\s*:?\\s*(\\S+)"]
//	types:
//	  invoice:
//	    invoice_number: ["..."]
//
// Mapping order in the file becomes pattern order in the table.
func LoadPatternTable(path string) (*PatternTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern table: %w", err)
	}

	var file patternTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing pattern table: %w", err)
	}

	table := &PatternTable{PerType: make(map[constants.DocumentType][]FieldPatterns)}

	table.Common, err = decodeFieldPatterns(&file.Common)
	if err != nil {
		return nil, fmt.Errorf("common patterns: %w", err)
	}

	for typeName, node := range file.Types {
		docType, ok := constants.ParseDocumentType(typeName)
		if !ok {
			return nil, fmt.Errorf("unknown document type %q", typeName)
		}
		node := node
		fps, err := decodeFieldPatterns(&node)
		if err != nil {
			return nil, fmt.Errorf("patterns for %s: %w", typeName, err)
		}
		table.PerType[docType] = fps
	}
	return table, nil
}

// decodeFieldPatterns walks a YAML mapping node directly so field order in
// the file is preserved.
func decodeFieldPatterns(node *yaml.Node) ([]FieldPatterns, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of field names to pattern lists")
	}

	var out []FieldPatterns
	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value
		var exprs []string
		if err := node.Content[i+1].Decode(&exprs); err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		patterns := make([]*regexp.Regexp, 0, len(exprs))
		for _, e := range exprs {
			re, err := regexp.Compile(`(?im)` + e)
			if err != nil {
				return nil, fmt.Errorf("field %q pattern %q: %w", field, e, err)
			}
			patterns = append(patterns, re)
		}
		out = append(out, FieldPatterns{Field: field, Patterns: patterns})
	}
	return out, nil
}
