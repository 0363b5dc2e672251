package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
)

// Sheet names that usually carry the invoice line items.
var preferredSheetNames = []string{
	"invoice", "fatura", "items", "lines", "data", "sheet1",
}

// parseExcel decodes a workbook into one page per non-empty sheet. The
// preferred sheet is listed first so context association scans it first.
func (p *Parser) parseExcel(fileName string, data []byte) (*extract.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContent, err)
	}
	defer f.Close()

	pages := make([]extract.Page, 0, len(f.GetSheetList()))
	for _, sheet := range orderSheets(f.GetSheetList()) {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s: %v", ErrCorruptContent, sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		number := len(pages) + 1
		pages = append(pages, extract.Page{
			Number: number,
			Text:   sheetText(rows),
			Tables: []extract.Table{{Page: number, Rows: rows}},
		})
	}
	if len(pages) == 0 {
		return nil, ErrEmptyFile
	}

	return &extract.Document{FileName: fileName, Pages: pages}, nil
}

// orderSheets moves the first preferred-named sheet to the front, keeping the
// workbook order otherwise.
func orderSheets(sheets []string) []string {
	for _, preferred := range preferredSheetNames {
		for i, sheet := range sheets {
			if strings.EqualFold(sheet, preferred) && i > 0 {
				ordered := make([]string, 0, len(sheets))
				ordered = append(ordered, sheet)
				ordered = append(ordered, sheets[:i]...)
				ordered = append(ordered, sheets[i+1:]...)
				return ordered
			} else if strings.EqualFold(sheet, preferred) {
				return sheets
			}
		}
	}
	return sheets
}

func sheetText(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := strings.TrimSpace(strings.Join(row, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
