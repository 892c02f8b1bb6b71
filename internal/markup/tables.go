package markup

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reTable = regexp.MustCompile(`(?is)<table\b[^>]*>.*?</table>`)

// ExtractTables captures every <table>...</table> fragment verbatim and
// converts each to CSV on a best-effort basis. The CSV slice is 1:1 with the
// HTML slice; a fragment that cannot be converted gets an explanatory error
// string in its CSV slot instead of aborting the page.
func ExtractTables(content string) ([]string, []string) {
	fragments := reTable.FindAllString(content, -1)

	var htmlTables, csvTables []string
	for _, fragment := range fragments {
		htmlTables = append(htmlTables, fragment)

		converted, err := TableToCSV(fragment)
		if err != nil {
			csvTables = append(csvTables, fmt.Sprintf("Error converting table to CSV: %v", err))
			continue
		}
		csvTables = append(csvTables, converted)
	}
	return htmlTables, csvTables
}

// TableToCSV renders an HTML table fragment as CSV, one record per <tr>.
func TableToCSV(tableHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return "", fmt.Errorf("parse table html: %w", err)
	}

	var records [][]string
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var record []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			record = append(record, strings.TrimSpace(cell.Text()))
		})
		if len(record) > 0 {
			records = append(records, record)
		}
	})
	if len(records) == 0 {
		return "", errors.New("table has no rows")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}
