package lineitems

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LineItem is one row of a priced table: an invoice line, a receipt entry,
// a statement transaction.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Amount      string `json:"amount,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Category    string `json:"category,omitempty"`
}

var reSKU = regexp.MustCompile(`[A-Z]+-[A-Z]+-\d+`)

// Parser maps HTML table rows onto line items by header name. It is
// stateless and safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// ParseAll parses every table and concatenates the items in table order.
func (p *Parser) ParseAll(tablesHTML []string) []LineItem {
	var items []LineItem
	for _, table := range tablesHTML {
		items = append(items, p.Parse(table)...)
	}
	return items
}

// Parse extracts line items from one HTML table. The first row supplies the
// headers; rows whose cell count differs from the header count are skipped,
// as are rows without a recognizable description. Malformed HTML yields no
// items rather than an error.
func (p *Parser) Parse(tableHTML string) []LineItem {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		p.logger.Debug("unparsable table html", "error", err)
		return nil
	}

	rows := doc.Find("tr")
	if rows.Length() < 2 {
		return nil
	}

	var headers []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})

	var items []LineItem
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() != len(headers) {
			return
		}

		var item LineItem
		cells.Each(func(i int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			switch headers[i] {
			case "item", "description", "product":
				fillDescription(&item, text)
			case "quantity", "qty":
				item.Quantity = text
			case "rate", "price", "unit price":
				item.Rate = text
			case "amount", "total", "subtotal":
				item.Amount = text
			}
		})

		if item.Description != "" {
			items = append(items, item)
		}
	})
	return items
}

// fillDescription splits a multi-line description cell. The first line is
// the description proper; a second line may carry an SKU and a category.
func fillDescription(item *LineItem, text string) {
	parts := strings.Split(text, "\n")
	item.Description = strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return
	}

	extra := strings.TrimSpace(parts[1])
	sku := reSKU.FindString(extra)
	if sku == "" {
		return
	}
	item.SKU = sku

	category := strings.Replace(extra, sku, "", 1)
	category = strings.Trim(strings.TrimSpace(category), ",")
	category = strings.TrimSpace(category)
	if category != "" {
		item.Category = category
	}
}
