package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	uploadPrefixRe = regexp.MustCompile(`^\d{8}_\d{6}_`)

	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice[_\s#-]*(\d+)`),
		regexp.MustCompile(`(?i)INV[_\s#-]*(\d+)`),
		regexp.MustCompile(`(?i)Fatura[_\s#-]*(\d+)`),
		regexp.MustCompile(`(\d{6,})`),
	}
)

// InvoiceNumber finds the invoice number for a document, preferring the file
// name over page content. Upload timestamp prefixes and the extension are
// stripped before matching. Falls back to the cleaned file name itself.
func InvoiceNumber(doc *Document) string {
	name := uploadPrefixRe.ReplaceAllString(filepath.Base(doc.FileName), "")
	name = strings.TrimSuffix(name, filepath.Ext(name))

	if num := matchInvoiceNumber(name); num != "" {
		return num
	}
	if len(doc.Pages) > 0 {
		if num := matchInvoiceNumber(doc.Pages[0].Text); num != "" {
			return num
		}
	}
	return name
}

func matchInvoiceNumber(s string) string {
	for _, re := range invoiceNumberPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}
