package resolution

import "strings"

// CatalogEntry is a hand-curated record for a known product code. Entries are
// authored once and never mutated at runtime.
type CatalogEntry struct {
	Code        string `csv:"code"`
	Name        string `csv:"name"`
	Category    string `csv:"category"`
	ProductType string `csv:"product_type"`
	Subcategory string `csv:"subcategory"`
	Turkish     string `csv:"turkish"`
	GTIP        string `csv:"gtip"`
	Series      string `csv:"series"`
}

// Catalog is the static code-to-record mapping loaded once at startup.
type Catalog struct {
	entries map[string]CatalogEntry
	codes   []string
}

// NewCatalog builds a catalog from the given entries. Codes are matched
// case-insensitively on the normalized uppercase form.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries: make(map[string]CatalogEntry, len(entries)),
		codes:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToUpper(strings.TrimSpace(e.Code))
		if _, dup := c.entries[key]; dup {
			continue
		}
		c.entries[key] = e
		c.codes = append(c.codes, key)
	}
	return c
}

// DefaultCatalog returns the built-in catalog of known Trek and Bontrager
// product codes.
func DefaultCatalog() *Catalog {
	return NewCatalog(catalogEntries)
}

// Lookup returns the record for an exact code match, provenance database.
func (c *Catalog) Lookup(code string) (ProductRecord, bool) {
	entry, ok := c.entries[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return ProductRecord{}, false
	}
	return entry.record(), true
}

// Contains reports whether the code has a curated entry.
func (c *Catalog) Contains(code string) bool {
	_, ok := c.entries[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes returns all catalog codes in declaration order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Entries returns all catalog entries in declaration order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.entries[code])
	}
	return out
}

// Len returns the number of curated entries.
func (c *Catalog) Len() int { return len(c.entries) }

func (e CatalogEntry) record() ProductRecord {
	return ProductRecord{
		Name:        e.Name,
		Category:    e.Category,
		ProductType: e.ProductType,
		Subcategory: e.Subcategory,
		Turkish:     e.Turkish,
		GTIP:        e.GTIP,
		Series:      e.Series,
		Provenance:  ProvenanceDatabase,
	}
}
