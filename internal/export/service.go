package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/azzindani/06-Nanonets-OCRs/internal/structured"
)

// Service renders processed documents into tabular exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var lineItemHeaders = []string{
	"Description",
	"Quantity",
	"Rate",
	"Amount",
	"SKU",
	"Category",
}

// LineItemsCSV renders the document's line items as CSV bytes, header first.
func (s *Service) LineItemsCSV(out structured.StructuredOutput) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(lineItemHeaders); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, item := range out.LineItems {
		record := []string{
			item.Description,
			item.Quantity,
			item.Rate,
			item.Amount,
			item.SKU,
			item.Category,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"run_id", out.Raw.RunID,
		"rows", len(out.LineItems),
	)
	return buf.Bytes(), nil
}

// LineItemsXLSX returns an XLSX workbook (as bytes) with one sheet of line
// items and one sheet of extracted summary fields.
func (s *Service) LineItemsXLSX(out structured.StructuredOutput) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const itemsSheet = "Line Items"
	if index, _ := f.GetSheetIndex(itemsSheet); index == -1 {
		if _, err := f.NewSheet(itemsSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(itemsSheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range lineItemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}

	row := 2
	for _, item := range out.LineItems {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(itemsSheet, cell, v)
		}
		write(1, truncate(item.Description, 140))
		write(2, item.Quantity)
		write(3, item.Rate)
		write(4, item.Amount)
		write(5, item.SKU)
		write(6, item.Category)
		row++
	}

	_ = f.SetColWidth(itemsSheet, "A", "A", 48)
	_ = f.SetColWidth(itemsSheet, "B", "D", 14)
	_ = f.SetColWidth(itemsSheet, "E", "F", 22)

	const fieldsSheet = "Fields"
	if _, err := f.NewSheet(fieldsSheet); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(fieldsSheet, "A1", "Field")
	_ = f.SetCellValue(fieldsSheet, "B1", "Value")
	_ = f.SetCellValue(fieldsSheet, "A2", "document_type")
	_ = f.SetCellValue(fieldsSheet, "B2", out.DocumentType)
	_ = f.SetCellValue(fieldsSheet, "A3", "language")
	_ = f.SetCellValue(fieldsSheet, "B3", out.Language)

	fieldRow := 4
	for _, name := range sortedFieldNames(out.ExtractedFields) {
		cellA, _ := excelize.CoordinatesToCellName(1, fieldRow)
		cellB, _ := excelize.CoordinatesToCellName(2, fieldRow)
		_ = f.SetCellValue(fieldsSheet, cellA, name)
		_ = f.SetCellValue(fieldsSheet, cellB, truncate(fmt.Sprintf("%v", out.ExtractedFields[name]), 140))
		fieldRow++
	}
	_ = f.SetColWidth(fieldsSheet, "A", "A", 22)
	_ = f.SetColWidth(fieldsSheet, "B", "B", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"run_id", out.Raw.RunID,
		"rows", len(out.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func sortedFieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
