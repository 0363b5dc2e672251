// Package extract locates product codes and their surrounding text inside
// parsed invoice documents.
package extract

import "strings"

// Table is a grid of cell strings as produced by the document parsers.
// Cells may be empty; rows may have uneven lengths.
type Table struct {
	Page int
	Rows [][]string
}

// Page holds the extracted content of a single document page.
type Page struct {
	Number int
	Text   string
	Tables []Table
}

// Document is the parser-independent representation of an invoice file.
// The ingest parsers produce it; everything downstream consumes it.
type Document struct {
	FileName string
	Pages    []Page
}

// Text concatenates all page text with newlines between pages.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Tables returns every table across all pages in page order.
func (d *Document) Tables() []Table {
	var tables []Table
	for _, p := range d.Pages {
		tables = append(tables, p.Tables...)
	}
	return tables
}
