package extract

import "strings"

// Scan caps for context association. Invoice line items sit early in the
// document, so deep scans only add noise and cost.
const (
	maxContextPages     = 3
	maxTablesPerPage    = 2
	maxRowsPerTable     = 20
	maxContextWords     = 5
	minContextLength    = 3
	maxContextCellChars = 100
)

// AssociateContext maps each extracted code to the descriptive text found
// next to it: trailing cells of the table row the code sits in, or the words
// following the code on its text line. The first association found for a
// code wins. Codes with no nearby text are absent from the result.
func AssociateContext(doc *Document, codes []string) map[string]string {
	contexts := make(map[string]string)
	pending := func() bool { return len(contexts) < len(codes) }

	for p, page := range doc.Pages {
		if p >= maxContextPages || !pending() {
			break
		}
		for t, table := range page.Tables {
			if t >= maxTablesPerPage || !pending() {
				break
			}
			associateFromTable(table, codes, contexts)
		}
		if pending() {
			associateFromText(page.Text, codes, contexts)
		}
	}
	return contexts
}

func associateFromTable(table Table, codes []string, contexts map[string]string) {
	for r, row := range table.Rows {
		if r >= maxRowsPerTable {
			break
		}
		rowText := strings.Join(row, " ")
		for _, code := range codes {
			if _, done := contexts[code]; done || !strings.Contains(rowText, code) {
				continue
			}
			for i, cell := range row {
				if !strings.Contains(cell, code) {
					continue
				}
				for _, next := range row[i+1:] {
					desc := strings.TrimSpace(next)
					if len(desc) > minContextLength && len(desc) < maxContextCellChars && !isNumericText(desc) {
						contexts[code] = desc
						break
					}
				}
				break
			}
		}
	}
}

func associateFromText(text string, codes []string, contexts map[string]string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, code := range codes {
			if _, done := contexts[code]; done || !strings.Contains(line, code) {
				continue
			}
			parts := strings.Fields(line)
			idx := -1
			for i, part := range parts {
				if part == code {
					idx = i
					break
				}
			}
			if idx < 0 || idx >= len(parts)-1 {
				continue
			}
			var words []string
			for _, part := range parts[idx+1:] {
				if isNumericText(part) {
					continue
				}
				words = append(words, part)
				if len(words) >= maxContextWords {
					break
				}
			}
			if joined := strings.Join(words, " "); len(joined) > minContextLength {
				contexts[code] = joined
			}
		}
	}
}

// isNumericText treats dot and comma as digit punctuation so amounts like
// "1.299,00" count as numeric.
func isNumericText(s string) bool {
	stripped := strings.NewReplacer(".", "", ",", "").Replace(s)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
