// Package resolution turns extracted product codes into classified product
// records through a cascade of catalog lookup, heuristic classification and
// remote lookup, with a guaranteed generic fallback.
package resolution

import "fmt"

// Provenance records which pipeline stage produced a ProductRecord.
type Provenance string

const (
	ProvenanceDatabase Provenance = "database"
	ProvenanceContext  Provenance = "context"
	ProvenancePattern  Provenance = "pattern"
	ProvenanceRemote   Provenance = "remote"
	ProvenanceFallback Provenance = "fallback"
)

// Generic classification markers used by fallback and unmatched-title records.
const (
	genericCategory    = "Trek Ürünü"
	genericSubcategory = "Belirlenmemiş"
	genericTurkish     = "Trek bisiklet ürünü (kategori belirlenemedi)"
	genericGTIP        = "Bisiklet ile ilgili ürün"
)

// ProductRecord is the resolved description of a product code.
type ProductRecord struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	ProductType string     `json:"product_type"`
	Subcategory string     `json:"subcategory"`
	Turkish     string     `json:"turkish"`
	GTIP        string     `json:"gtip_description"`
	Series      string     `json:"series"`
	Provenance  Provenance `json:"provenance"`
	SourceURL   string     `json:"source_url,omitempty"`
}

// Resolved reports whether the record counts as properly identified rather
// than guessed. Database, pattern and context hits always count; remote hits
// count only when the retrieved title produced a non-generic classification.
func (r ProductRecord) Resolved() bool {
	switch r.Provenance {
	case ProvenanceDatabase, ProvenancePattern, ProvenanceContext:
		return true
	case ProvenanceRemote:
		return r.Category != genericCategory
	default:
		return false
	}
}

// GTIPOrTurkish returns the tariff description, falling back to the Turkish
// description when no dedicated tariff text exists.
func (r ProductRecord) GTIPOrTurkish() string {
	if r.GTIP != "" {
		return r.GTIP
	}
	return r.Turkish
}

// FallbackRecord synthesizes the terminal generic record for a code no stage
// could classify. It always succeeds and preserves the original code.
func FallbackRecord(code string) ProductRecord {
	return ProductRecord{
		Name:        fmt.Sprintf("Trek Ürünü #%s", code),
		Category:    genericCategory,
		ProductType: genericCategory,
		Subcategory: genericSubcategory,
		Turkish:     genericTurkish,
		GTIP:        genericGTIP,
		Series:      "Trek",
		Provenance:  ProvenanceFallback,
	}
}

// LineItem is one row of pipeline output for a processed invoice.
type LineItem struct {
	InvoiceNumber string        `json:"invoice_number"`
	Code          string        `json:"code"`
	Context       string        `json:"context"`
	Record        ProductRecord `json:"record"`
	Resolved      bool          `json:"resolved"`
}
