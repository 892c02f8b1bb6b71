package fields

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func floatPtr(f float64) *float64 { return &f }

// PredefinedSchemas returns the built-in extraction schemas keyed by name.
// The classifier routes invoices and receipts here; everything else falls
// through to pattern-table extraction.
func PredefinedSchemas() map[string]Schema {
	return map[string]Schema{
		"invoice": {
			Required: []string{"invoice_number", "total_amount"},
			Properties: map[string]Property{
				"invoice_number": {
					Type:        "string",
					Description: "Invoice number or ID",
					Pattern:     `(?:invoice|inv|#)\s*[:\-]?\s*([A-Z0-9\-]+)`,
				},
				"invoice_date": {
					Type:        "string",
					Description: "Invoice date",
					Pattern:     `(?:date|dated)\s*[:\-]?\s*(\d{1,4}[-/]\d{1,2}[-/]\d{1,4})`,
				},
				"due_date": {
					Type:        "string",
					Description: "Payment due date",
				},
				"vendor_name": {
					Type:        "string",
					Description: "Vendor or supplier name",
				},
				"total_amount": {
					Type:        "number",
					Description: "Total invoice amount",
					Minimum:     floatPtr(0),
					Pattern:     `(?:total|amount|sum|due)\s*[:\-]?\s*[\$€£]?\s*([\d,]+\.?\d*)`,
				},
				"tax_amount": {
					Type:        "number",
					Description: "Tax amount",
					Minimum:     floatPtr(0),
					Pattern:     `(?:tax|vat|gst)\s*[:\-]?\s*[\$€£]?\s*([\d,]+\.?\d*)`,
				},
				"currency": {
					Type: "string",
					Enum: []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"},
				},
			},
		},
		"receipt": {
			Required: []string{"total_amount"},
			Properties: map[string]Property{
				"store_name": {
					Type:        "string",
					Description: "Store or merchant name",
				},
				"date": {
					Type:        "string",
					Description: "Transaction date",
				},
				"total_amount": {
					Type:        "number",
					Description: "Total amount",
					Minimum:     floatPtr(0),
				},
				"payment_method": {
					Type: "string",
					Enum: []string{"cash", "credit", "debit", "check"},
				},
				"receipt_number": {
					Type: "string",
				},
			},
		},
	}
}

// SchemaByName looks up a predefined schema. The second return is false for
// unknown names, including the "generic" routing fallback.
func SchemaByName(name string) (Schema, bool) {
	s, ok := PredefinedSchemas()[name]
	return s, ok
}

// LoadSchema reads a user-supplied schema from a YAML file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("reading schema: %w", err)
	}
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return Schema{}, fmt.Errorf("parsing schema: %w", err)
	}
	if len(schema.Properties) == 0 {
		return Schema{}, fmt.Errorf("schema %s declares no properties", path)
	}
	return schema, nil
}

// Values flattens extraction results to a plain map of the non-nil values.
func Values(results map[string]ExtractionResult) map[string]any {
	out := make(map[string]any, len(results))
	for name, r := range results {
		if r.Value != nil {
			out[name] = r.Value
		}
	}
	return out
}
