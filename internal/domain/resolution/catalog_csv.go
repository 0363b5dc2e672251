package resolution

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// LoadCatalogEntries reads curated catalog rows from a CSV stream. The header
// must carry the lowercase column names from the CatalogEntry csv tags; only
// code and turkish are required per row.
func LoadCatalogEntries(r io.Reader) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("reading catalog csv: %w", err)
	}

	out := make([]CatalogEntry, 0, len(entries))
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog csv row %d: missing code", i+1)
		}
		if e.Turkish == "" {
			return nil, fmt.Errorf("catalog csv row %d (%s): missing turkish description", i+1, e.Code)
		}
		out = append(out, e)
	}
	return out, nil
}

// ExtendedCatalog merges the built-in entries with rows from a CSV stream.
// Built-in entries win on code collisions.
func ExtendedCatalog(r io.Reader) (*Catalog, error) {
	extra, err := LoadCatalogEntries(r)
	if err != nil {
		return nil, err
	}
	return NewCatalog(append(append([]CatalogEntry{}, catalogEntries...), extra...)), nil
}
