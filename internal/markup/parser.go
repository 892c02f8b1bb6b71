package markup

import (
	"regexp"
	"strings"
)

// Checkbox is a single checkbox marker with its trailing label.
type Checkbox struct {
	Checked bool   `json:"checked"`
	Label   string `json:"label"`
}

// ParsedPage holds the semantic markup extracted from one page of OCR text.
// Pages are immutable once produced.
type ParsedPage struct {
	PageNumber           int        `json:"page_number"`
	RawText              string     `json:"raw_text"`
	TablesHTML           []string   `json:"tables_html"`
	TablesCSV            []string   `json:"tables_csv"`
	LatexEquations       []string   `json:"latex_equations"`
	ImageDescriptions    []string   `json:"image_descriptions"`
	Watermarks           []string   `json:"watermarks"`
	PageNumbersExtracted []string   `json:"page_numbers_extracted"`
	Checkboxes           []Checkbox `json:"checkboxes"`
}

// ParsedOutput is the complete parse of a multi-page OCR document.
type ParsedOutput struct {
	Pages []ParsedPage `json:"pages"`
}

var (
	rePageDelim = regexp.MustCompile(`(?:^|\n)[ \t]*--- Page \d+ ---[ \t]*(?:\n|$)`)

	reDisplayMath = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	reInlineMath  = regexp.MustCompile(`\$([^$]+)\$`)
	reEquationEnv = regexp.MustCompile(`(?s)\\begin\{equation\*?\}(.*?)\\end\{equation\*?\}`)
	reAlignEnv    = regexp.MustCompile(`(?s)\\begin\{align\*?\}(.*?)\\end\{align\*?\}`)

	reImage      = regexp.MustCompile(`(?s)<img>(.*?)</img>`)
	reWatermark  = regexp.MustCompile(`<watermark>(.*?)</watermark>`)
	rePageNumber = regexp.MustCompile(`<page_number>(.*?)</page_number>`)

	reChecked   = regexp.MustCompile(`☑\s*([^\n☐☑]*)`)
	reUnchecked = regexp.MustCompile(`☐\s*([^\n☐☑]*)`)
)

// Parser splits raw OCR output into pages and extracts embedded markup.
// It is stateless; a single instance is safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse cuts raw OCR output on `--- Page N ---` delimiters and parses each
// surviving segment. Pages are numbered by position in the surviving segment
// sequence; the literal N in the delimiter is not echoed back.
func (p *Parser) Parse(raw string) ParsedOutput {
	segments := rePageDelim.Split(raw, -1)

	var pages []ParsedPage
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		pages = append(pages, p.parsePage(seg, len(pages)+1))
	}
	return ParsedOutput{Pages: pages}
}

func (p *Parser) parsePage(text string, pageNumber int) ParsedPage {
	page := ParsedPage{
		PageNumber: pageNumber,
		RawText:    text,
	}
	page.TablesHTML, page.TablesCSV = ExtractTables(text)
	page.LatexEquations = ExtractEquations(text)
	page.ImageDescriptions = extractTagged(text, reImage)
	page.Watermarks = extractTagged(text, reWatermark)
	page.PageNumbersExtracted = extractTagged(text, rePageNumber)
	page.Checkboxes = ExtractCheckboxes(text)
	return page
}

// ExtractEquations collects LaTeX equations from four pattern classes:
// display math, inline math, equation environments, and align environments.
// Display spans are redacted before the inline pass so a $$...$$ block is
// never double-counted as an inline match.
func ExtractEquations(content string) []string {
	var equations []string

	appendMatches := func(matches [][]string) {
		for _, m := range matches {
			if eq := strings.TrimSpace(m[1]); eq != "" {
				equations = append(equations, eq)
			}
		}
	}

	appendMatches(reDisplayMath.FindAllStringSubmatch(content, -1))

	// Blank out display spans, then look for inline math in what remains.
	redacted := reDisplayMath.ReplaceAllStringFunc(content, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
	appendMatches(reInlineMath.FindAllStringSubmatch(redacted, -1))

	appendMatches(reEquationEnv.FindAllStringSubmatch(content, -1))
	appendMatches(reAlignEnv.FindAllStringSubmatch(content, -1))

	return equations
}

// ExtractCheckboxes finds ☑/☐ markers and their labels. Labels extend to the
// next checkbox marker or newline. Detection runs two passes, so all checked
// boxes are listed before all unchecked ones regardless of document order.
func ExtractCheckboxes(content string) []Checkbox {
	var boxes []Checkbox
	for _, m := range reChecked.FindAllStringSubmatch(content, -1) {
		boxes = append(boxes, Checkbox{Checked: true, Label: strings.TrimSpace(m[1])})
	}
	for _, m := range reUnchecked.FindAllStringSubmatch(content, -1) {
		boxes = append(boxes, Checkbox{Checked: false, Label: strings.TrimSpace(m[1])})
	}
	return boxes
}

func extractTagged(content string, re *regexp.Regexp) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}
