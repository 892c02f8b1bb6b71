package constants

import (
	"strings"
)

// DocumentType is the closed classification of a document's purpose.
type DocumentType string

const (
	Invoice         DocumentType = "invoice"
	Receipt         DocumentType = "receipt"
	Contract        DocumentType = "contract"
	Form            DocumentType = "form"
	Letter          DocumentType = "letter"
	Report          DocumentType = "report"
	IDDocument      DocumentType = "id_document"
	BankStatement   DocumentType = "bank_statement"
	TaxDocument     DocumentType = "tax_document"
	Medical         DocumentType = "medical"
	UnknownDocument DocumentType = "unknown"
)

// ClassifiableTypes lists every type a classifier may select, in declaration
// order. Declaration order is the tie-break order when scores are equal.
var ClassifiableTypes = []DocumentType{
	Invoice,
	Receipt,
	Contract,
	Form,
	Letter,
	Report,
	IDDocument,
	BankStatement,
	TaxDocument,
	Medical,
}

// DocumentTypeStrings returns the classifiable types as plain strings,
// excluding the unknown sentinel.
func DocumentTypeStrings() []string {
	result := make([]string, len(ClassifiableTypes))
	for i, dt := range ClassifiableTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocumentType maps a free-form label onto the closed enumeration.
func ParseDocumentType(input string) (DocumentType, bool) {
	if input == "" {
		return UnknownDocument, false
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, dt := range ClassifiableTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return UnknownDocument, false
}
