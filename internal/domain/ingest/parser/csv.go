package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
	"github.com/velotrack/sku-resolver/internal/domain/ingest/sniffer"
)

// parseCSV decodes a delimited file into a single-page document with one
// table. The sniffer finds the delimiter and header row; metadata lines above
// the header are kept in the page text so invoice numbers stay findable.
func (p *Parser) parseCSV(fileName string, data []byte) (*extract.Document, error) {
	cfg, err := sniffer.DetectConfig(data)
	if err != nil {
		if errors.Is(err, sniffer.ErrEmptyFile) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptContent, err)
	}

	// SkipLines is a raw line index, so slice the metadata off before the
	// csv reader sees the data (it silently drops blank lines).
	text := strings.TrimPrefix(string(data), "\uFEFF")
	lines := strings.Split(text, "\n")
	body := strings.Join(lines[cfg.SkipLines:], "\n")

	reader := csv.NewReader(strings.NewReader(body))
	reader.Comma = cfg.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // tolerate malformed lines
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return &extract.Document{
		FileName: fileName,
		Pages: []extract.Page{{
			Number: 1,
			Text:   strings.TrimSpace(text),
			Tables: []extract.Table{{Page: 1, Rows: rows}},
		}},
	}, nil
}
