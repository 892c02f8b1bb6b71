package lineitems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceTable = `<table>
<tr><th>Item</th><th>Quantity</th><th>Rate</th><th>Amount</th></tr>
<tr><td>Widget A</td><td>10</td><td>$50.00</td><td>$500.00</td></tr>
<tr><td>Widget B</td><td>5</td><td>$75.00</td><td>$375.00</td></tr>
</table>`

func TestParseInvoiceTable(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(invoiceTable)

	require.Len(t, items, 2)
	assert.Equal(t, "Widget A", items[0].Description)
	assert.Equal(t, "10", items[0].Quantity)
	assert.Equal(t, "$50.00", items[0].Rate)
	assert.Equal(t, "$500.00", items[0].Amount)
	assert.Equal(t, "Widget B", items[1].Description)
}

func TestParseHeaderSynonyms(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(`<table>
<tr><th>Product</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>
<tr><td>Stapler</td><td>2</td><td>$4.00</td><td>$8.00</td></tr>
</table>`)

	require.Len(t, items, 1)
	assert.Equal(t, "Stapler", items[0].Description)
	assert.Equal(t, "2", items[0].Quantity)
	assert.Equal(t, "$4.00", items[0].Rate)
	assert.Equal(t, "$8.00", items[0].Amount)
}

func TestParseDescriptionWithSKU(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(`<table>
<tr><th>Description</th><th>Amount</th></tr>
<tr><td>Canon Copier
Technology, TEC-MA-10001</td><td>$600.00</td></tr>
</table>`)

	require.Len(t, items, 1)
	assert.Equal(t, "Canon Copier", items[0].Description)
	assert.Equal(t, "TEC-MA-10001", items[0].SKU)
	assert.Equal(t, "Technology", items[0].Category)
}

func TestParseSkipsMismatchedRows(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(`<table>
<tr><th>Item</th><th>Amount</th></tr>
<tr><td>Good Row</td><td>$1.00</td></tr>
<tr><td>Only One Cell</td></tr>
</table>`)

	require.Len(t, items, 1)
	assert.Equal(t, "Good Row", items[0].Description)
}

func TestParseSkipsRowsWithoutDescription(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(`<table>
<tr><th>Quantity</th><th>Amount</th></tr>
<tr><td>3</td><td>$9.00</td></tr>
</table>`)

	assert.Empty(t, items)
}

func TestParseHeaderOnlyTable(t *testing.T) {
	p := NewParser(nil)
	assert.Empty(t, p.Parse(`<table><tr><th>Item</th></tr></table>`))
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(nil)
	assert.Empty(t, p.Parse(""))
	assert.Empty(t, p.Parse("<p>not a table</p>"))
}

func TestParseAllConcatenatesInOrder(t *testing.T) {
	p := NewParser(nil)
	second := `<table>
<tr><th>Item</th><th>Amount</th></tr>
<tr><td>Later Item</td><td>$2.00</td></tr>
</table>`

	items := p.ParseAll([]string{invoiceTable, second})
	require.Len(t, items, 3)
	assert.Equal(t, "Widget A", items[0].Description)
	assert.Equal(t, "Later Item", items[2].Description)
}
