package parser

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
)

// parsePDF extracts per-page text with MuPDF. PDFs yield text only; table
// structure is recovered downstream from line patterns.
func (p *Parser) parsePDF(fileName string, data []byte) (*extract.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContent, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, ErrEmptyFile
	}

	pages := make([]extract.Page, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrCorruptContent, i+1, err)
		}
		pages = append(pages, extract.Page{
			Number: i + 1,
			Text:   strings.TrimSpace(text),
		})
	}

	return &extract.Document{FileName: fileName, Pages: pages}, nil
}
