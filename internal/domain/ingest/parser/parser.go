// Package parser turns uploaded invoice files into the document model the
// extraction pipeline consumes. PDF, CSV and Excel inputs are supported.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
)

var (
	// ErrUnsupportedFormat means the file extension is not one we parse.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCorruptContent means the file matched a supported format but could
	// not be decoded.
	ErrCorruptContent = errors.New("corrupt file content")
	// ErrEmptyFile means the file decoded but carried no content at all.
	ErrEmptyFile = errors.New("file has no content")
)

// SupportedExtensions lists the file extensions Parse accepts, lowercase with
// the leading dot.
var SupportedExtensions = []string{".pdf", ".csv", ".txt", ".xlsx", ".xls"}

// Parser decodes uploaded invoice files into documents.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse decodes the file content based on its extension. The returned
// document always carries the original file name.
func (p *Parser) Parse(fileName string, data []byte) (*extract.Document, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var (
		doc *extract.Document
		err error
	)
	switch ext {
	case ".pdf":
		doc, err = p.parsePDF(fileName, data)
	case ".csv", ".txt":
		doc, err = p.parseCSV(fileName, data)
	case ".xlsx", ".xls":
		doc, err = p.parseExcel(fileName, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("parsed invoice file",
		slog.String("file", fileName),
		slog.String("format", ext),
		slog.Int("pages", len(doc.Pages)),
		slog.Int("tables", len(doc.Tables())))
	return doc, nil
}

// Supported reports whether the file name has a parseable extension.
func Supported(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}
