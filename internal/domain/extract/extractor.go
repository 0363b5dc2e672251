package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Column headers that mark the product-code column of an invoice table.
// Checked in order against lowercased cell text.
var codeHeaderKeywords = []string{
	"item number", "item #", "item#", "item no", "item code",
	"product code", "sku", "code", "model", "part number",
}

// Words that pass the shape checks but are never product codes.
var stopWords = map[string]struct{}{
	"SEARCH": {}, "ITEM": {}, "TOTAL": {}, "DISCOUNT": {}, "TAX": {}, "SHIPPING": {}, "INVOICE": {},
	"DATE": {}, "CUSTOMER": {}, "ADDRESS": {}, "PHONE": {}, "EMAIL": {}, "QUANTITY": {}, "PRICE": {},
	"AMOUNT": {}, "SUBTOTAL": {}, "PAYMENT": {}, "DESCRIPTION": {}, "UNIT": {}, "QTY": {},
	"AUTHORIZED": {}, "REGULATIONS": {}, "CONTROLLED": {}, "PERCENTAGE": {}, "BISIKLET": {},
	"ISTANBUL": {}, "TREKBIKES": {}, "AQUAMARINE": {}, "COMPANY": {}, "STREET": {}, "CITY": {},
	"STATE": {}, "ORDER": {}, "BILL": {}, "SHIP": {}, "FROM": {}, "NAME": {}, "LINE": {},
}

var (
	alphanumericRe = regexp.MustCompile(`(?i)^[A-Z0-9]+$`)
	smallNumberRe  = regexp.MustCompile(`^\d{1,3}$`)
	yearRe         = regexp.MustCompile(`^\d{4}$`)

	// Text patterns tried in order once the table passes come up empty.
	// Labeled forms first, then a bare alphanumeric run.
	textCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Item\s*(?:Number|#|No\.?)?[:]?\s*)([A-Z0-9]{4,8})`),
		regexp.MustCompile(`(?i)(?:SKU[:]?\s*)([A-Z0-9]{4,8})`),
		regexp.MustCompile(`(?i)(?:Code[:]?\s*)([A-Z0-9]{4,8})`),
		regexp.MustCompile(`(?i)\b([A-Z0-9]{5,7})\b`),
	}
)

// IsValidCode reports whether candidate has the shape of a product code:
// 4-10 alphanumeric characters with at least one digit, excluding stop
// words, small quantities and plausible year values.
func IsValidCode(candidate string) bool {
	if len(candidate) < 4 || len(candidate) > 10 {
		return false
	}
	if _, ok := stopWords[strings.ToUpper(candidate)]; ok {
		return false
	}
	if !strings.ContainsAny(candidate, "0123456789") {
		return false
	}
	if !alphanumericRe.MatchString(candidate) {
		return false
	}
	if smallNumberRe.MatchString(candidate) {
		return false
	}
	if yearRe.MatchString(candidate) {
		if y, err := strconv.Atoi(candidate); err == nil && y >= 2000 && y < 2030 {
			return false
		}
	}
	return true
}

// ExtractCodes pulls product codes out of a parsed document. Three passes,
// each tried only when the previous one found nothing: a header-driven table
// scan, a cell-by-cell table scan, and regex matching over the full text.
// The result is deduplicated in first-seen order.
func ExtractCodes(doc *Document) []string {
	codes := codesFromHeaderedTables(doc.Tables())
	if len(codes) == 0 {
		codes = codesFromTableCells(doc.Tables())
	}
	if len(codes) == 0 {
		codes = codesFromText(doc.Text())
	}
	return dedupeCodes(codes)
}

// Every table is scanned; multi-page invoices carry one table per page and
// codes accumulate across all of them.
func codesFromHeaderedTables(tables []Table) []string {
	var codes []string
	for _, table := range tables {
		codes = append(codes, codesFromHeaderedTable(table)...)
	}
	return codes
}

func codesFromHeaderedTable(table Table) []string {
	var codes []string
	for rowIdx, row := range table.Rows {
		for colIdx, cell := range row {
			if !isCodeHeader(cell) {
				continue
			}
			for _, dataRow := range table.Rows[rowIdx+1:] {
				if colIdx < len(dataRow) {
					candidate := strings.TrimSpace(dataRow[colIdx])
					if IsValidCode(candidate) {
						codes = append(codes, candidate)
					}
				}
			}
			return codes
		}
	}
	return codes
}

func codesFromTableCells(tables []Table) []string {
	var codes []string
	for _, table := range tables {
		for _, row := range table.Rows {
			for _, cell := range row {
				candidate := strings.TrimSpace(cell)
				if IsValidCode(candidate) {
					codes = append(codes, candidate)
				}
			}
		}
	}
	return codes
}

func codesFromText(text string) []string {
	var codes []string
	for _, re := range textCodePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if IsValidCode(m[1]) {
				codes = append(codes, m[1])
			}
		}
	}
	return codes
}

func isCodeHeader(cell string) bool {
	lower := strings.ToLower(cell)
	for _, kw := range codeHeaderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func dedupeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	unique := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok || len(code) < 4 {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	return unique
}
