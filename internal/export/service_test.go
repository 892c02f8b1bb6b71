package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/azzindani/06-Nanonets-OCRs/internal/lineitems"
	"github.com/azzindani/06-Nanonets-OCRs/internal/structured"
)

func sampleOutput() structured.StructuredOutput {
	return structured.StructuredOutput{
		DocumentType: "invoice",
		Language:     "en",
		ExtractedFields: map[string]any{
			"invoice_number": "1001",
			"total":          "945.00",
		},
		LineItems: []lineitems.LineItem{
			{Description: "Widget A", Quantity: "10", Rate: "$50.00", Amount: "$500.00"},
			{Description: "Widget B", Quantity: "5", Rate: "$75.00", Amount: "$375.00", SKU: "TEC-MA-10001", Category: "Technology"},
		},
		Raw: structured.RawData{RunID: "test-run"},
	}
}

func TestLineItemsCSV(t *testing.T) {
	s := NewService(nil)
	data, err := s.LineItemsCSV(sampleOutput())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Description,Quantity,Rate,Amount,SKU,Category", lines[0])
	assert.Equal(t, "Widget A,10,$50.00,$500.00,,", lines[1])
	assert.Equal(t, "Widget B,5,$75.00,$375.00,TEC-MA-10001,Technology", lines[2])
}

func TestLineItemsCSVEmpty(t *testing.T) {
	s := NewService(nil)
	data, err := s.LineItemsCSV(structured.StructuredOutput{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "Description,Quantity,Rate,Amount,SKU,Category", lines[0])
}

func TestLineItemsXLSX(t *testing.T) {
	s := NewService(nil)
	data, err := s.LineItemsXLSX(sampleOutput())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	desc, err := f.GetCellValue("Line Items", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Widget A", desc)

	sku, err := f.GetCellValue("Line Items", "E3")
	require.NoError(t, err)
	assert.Equal(t, "TEC-MA-10001", sku)

	docType, err := f.GetCellValue("Fields", "B2")
	require.NoError(t, err)
	assert.Equal(t, "invoice", docType)

	field, err := f.GetCellValue("Fields", "A4")
	require.NoError(t, err)
	assert.Equal(t, "invoice_number", field)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 200)
	got := truncate(long, 140)
	assert.Equal(t, 140, len(got)-len("…")+1)
	assert.True(t, strings.HasSuffix(got, "…"))
}
