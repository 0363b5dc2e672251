// Package report renders resolved invoice line items into the Excel workbook
// handed back to customs clearance.
package report

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/velotrack/sku-resolver/internal/domain/resolution"
)

const sheetName = "Ürün Tanımları"

// Column order is fixed; downstream tooling reads positions, not headers.
var headers = []string{
	"Fatura Numarası",
	"SKU",
	"Faturadaki İsmi",
	"Türkçe Tanım",
	"GTİP Tanımı",
	"Tanımlandı",
}

var columnWidths = []float64{18, 14, 40, 45, 45, 12}

// Writer renders line items into xlsx workbooks.
type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write renders the items into an xlsx workbook. An empty item slice still
// produces a valid workbook with the header row.
func (w *Writer) Write(items []resolution.LineItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("styling header row: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			item.InvoiceNumber,
			item.Code,
			invoiceName(item),
			item.Record.Turkish,
			item.Record.GTIPOrTurkish(),
			resolvedLabel(item.Resolved),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}

	w.logger.Info("report rendered",
		slog.Int("rows", len(items)),
		slog.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// invoiceName prefers the text found next to the code on the invoice; records
// resolved without context show their classified name instead.
func invoiceName(item resolution.LineItem) string {
	if item.Context != "" {
		return item.Context
	}
	return item.Record.Name
}

func resolvedLabel(resolved bool) string {
	if resolved {
		return "Evet"
	}
	return "Hayır"
}
