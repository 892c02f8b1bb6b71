package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `--- Page 1 ---
This is some text with a table:
<table><tr><th>Item</th><th>Qty</th></tr><tr><td>Widget</td><td>2</td></tr></table>

And an equation: $E = mc^2$

<img>A sample image description</img>

<watermark>CONFIDENTIAL</watermark>
<page_number>1</page_number>

☑ Task completed
☐ Task pending
`

func TestParseSinglePage(t *testing.T) {
	p := NewParser()
	out := p.Parse(samplePage)

	require.Len(t, out.Pages, 1)
	page := out.Pages[0]

	assert.Equal(t, 1, page.PageNumber)
	assert.Len(t, page.TablesHTML, 1)
	assert.Len(t, page.TablesCSV, 1)
	assert.Equal(t, []string{"E = mc^2"}, page.LatexEquations)
	assert.Equal(t, []string{"A sample image description"}, page.ImageDescriptions)
	assert.Equal(t, []string{"CONFIDENTIAL"}, page.Watermarks)
	assert.Equal(t, []string{"1"}, page.PageNumbersExtracted)
	require.Len(t, page.Checkboxes, 2)
	assert.Equal(t, Checkbox{Checked: true, Label: "Task completed"}, page.Checkboxes[0])
	assert.Equal(t, Checkbox{Checked: false, Label: "Task pending"}, page.Checkboxes[1])
}

func TestParseNumbersPagesByPosition(t *testing.T) {
	raw := "--- Page 7 ---\nfirst\n--- Page 3 ---\nsecond\n--- Page 99 ---\nthird"
	out := NewParser().Parse(raw)

	require.Len(t, out.Pages, 3)
	for i, page := range out.Pages {
		assert.Equal(t, i+1, page.PageNumber)
	}
	assert.Equal(t, "first", out.Pages[0].RawText)
	assert.Equal(t, "second", out.Pages[1].RawText)
	assert.Equal(t, "third", out.Pages[2].RawText)
}

func TestParseDropsEmptySegments(t *testing.T) {
	raw := "--- Page 1 ---\n   \n--- Page 2 ---\ncontent"
	out := NewParser().Parse(raw)

	require.Len(t, out.Pages, 1)
	assert.Equal(t, "content", out.Pages[0].RawText)
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, NewParser().Parse("").Pages)
	assert.Empty(t, NewParser().Parse("  \n\t ").Pages)
}

func TestParseWithoutDelimiterYieldsOnePage(t *testing.T) {
	out := NewParser().Parse("just a plain document")
	require.Len(t, out.Pages, 1)
	assert.Equal(t, 1, out.Pages[0].PageNumber)
}

func TestExtractTablesRoundTrip(t *testing.T) {
	content := `before
<table><tr><td>A</td><td>B</td></tr></table>
middle
<table><tr><th>X</th></tr><tr><td>1</td></tr></table>
after`
	htmlTables, csvTables := ExtractTables(content)
	require.Len(t, htmlTables, 2)
	require.Len(t, csvTables, 2)

	// Re-parsing captured fragments yields the same table count.
	for _, fragment := range htmlTables {
		again, _ := ExtractTables(fragment)
		assert.Len(t, again, 1)
	}

	assert.Equal(t, "A,B\n", csvTables[0])
	assert.Equal(t, "X\n1\n", csvTables[1])
}

func TestExtractTablesConversionFailureIsInline(t *testing.T) {
	htmlTables, csvTables := ExtractTables(`<table></table>`)
	require.Len(t, htmlTables, 1)
	require.Len(t, csvTables, 1)
	assert.True(t, strings.HasPrefix(csvTables[0], "Error converting table to CSV:"))
}

func TestExtractEquationsAllClasses(t *testing.T) {
	content := `display: $$a + b = c$$
inline: $x^2$
\begin{equation}y = mx\end{equation}
\begin{align*}z &= 1\end{align*}`
	eqs := ExtractEquations(content)
	assert.Equal(t, []string{"a + b = c", "x^2", "y = mx", "z &= 1"}, eqs)
}

func TestExtractEquationsDisplayNotDoubleCounted(t *testing.T) {
	eqs := ExtractEquations("$$E = mc^2$$")
	assert.Equal(t, []string{"E = mc^2"}, eqs)
}

func TestExtractCheckboxesCheckedListedFirst(t *testing.T) {
	content := "☐ Pending one\n☑ Done one\n☐ Pending two"
	boxes := ExtractCheckboxes(content)
	require.Len(t, boxes, 3)
	assert.Equal(t, Checkbox{Checked: true, Label: "Done one"}, boxes[0])
	assert.Equal(t, Checkbox{Checked: false, Label: "Pending one"}, boxes[1])
	assert.Equal(t, Checkbox{Checked: false, Label: "Pending two"}, boxes[2])
}

func TestCheckboxLabelStopsAtNextMarker(t *testing.T) {
	boxes := ExtractCheckboxes("☑ First ☐ Second")
	require.Len(t, boxes, 2)
	assert.Equal(t, "First", boxes[0].Label)
	assert.Equal(t, "Second", boxes[1].Label)
}

func TestNormalizeKeepsMarkup(t *testing.T) {
	raw := "Line one\r\nLine\ttwo   with   spaces\n\n\n\n\n<watermark>DRAFT</watermark>"
	got := Normalize(raw)
	assert.Contains(t, got, "<watermark>DRAFT</watermark>")
	assert.Contains(t, got, "Line two with spaces")
	assert.NotContains(t, got, "\r")
	assert.Equal(t, "", Normalize(""))
}
