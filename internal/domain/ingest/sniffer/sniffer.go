// Package sniffer detects the layout of delimited invoice files: the field
// delimiter, the header row, and a fingerprint for recognizing repeat
// suppliers.
package sniffer

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
)

// Header keywords common to supplier invoices and packing lists
// (English and Turkish).
var headerKeywords = []string{
	"item number", "item no", "item code", "item #", "item#",
	"product code", "part number", "sku", "code", "model",
	"description", "açıklama", "ürün", "malzeme",
	"qty", "quantity", "adet", "miktar",
	"price", "fiyat", "amount", "tutar", "total", "unit",
}

// FileConfig holds the detected layout of a delimited invoice file.
type FileConfig struct {
	Delimiter   rune
	SkipLines   int // metadata lines before the header row
	Headers     []string
	Fingerprint string // SHA256 of normalized headers
}

var (
	ErrEmptyFile        = errors.New("file is empty")
	ErrNoHeadersFound   = errors.New("could not find data headers")
	ErrInvalidDelimiter = errors.New("could not detect valid delimiter")
)

// DetectConfig analyzes a delimited file and returns its layout.
func DetectConfig(data []byte) (*FileConfig, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyFile
	}

	lines := strings.Split(string(data), "\n")
	delimiter, skipLines, err := findHeaderRow(lines)
	if err != nil {
		return nil, err
	}

	headerLine := cleanLine(lines[skipLines], skipLines == 0)
	reader := csv.NewReader(strings.NewReader(headerLine))
	reader.Comma = delimiter
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	return &FileConfig{
		Delimiter:   delimiter,
		SkipLines:   skipLines,
		Headers:     headers,
		Fingerprint: generateFingerprint(headers),
	}, nil
}

// findHeaderRow locates the header row and its delimiter. Lines containing
// invoice header keywords win; otherwise the widest line does.
func findHeaderRow(lines []string) (rune, int, error) {
	fallbackIndex := -1
	fallbackDelimiter := rune(0)
	fallbackCount := 0

	keywordIndex := -1
	keywordDelimiter := rune(0)
	keywordCount := 0
	keywordBest := 0

	for i, line := range lines {
		if i > 20 {
			break
		}

		line = cleanLine(line, i == 0)
		if line == "" {
			continue
		}
		lineLower := strings.ToLower(line)

		delimiter, count := detectDelimiter(line)
		if count < 1 {
			continue
		}

		matches := 0
		for _, kw := range headerKeywords {
			if strings.Contains(lineLower, kw) {
				matches++
			}
		}

		if matches > 0 {
			score := count*10 + matches
			if keywordIndex == -1 || score > keywordBest {
				keywordBest = score
				keywordCount = count
				keywordDelimiter = delimiter
				keywordIndex = i
			}
		} else if count > fallbackCount {
			fallbackCount = count
			fallbackDelimiter = delimiter
			fallbackIndex = i
		}
	}

	if keywordIndex >= 0 && keywordCount >= 1 {
		return keywordDelimiter, keywordIndex, nil
	}
	if fallbackCount >= 1 {
		return fallbackDelimiter, fallbackIndex, nil
	}
	return 0, 0, ErrNoHeadersFound
}

func cleanLine(line string, firstLine bool) string {
	line = strings.TrimRight(line, "\r")
	if firstLine {
		line = strings.TrimPrefix(line, "\uFEFF")
	}
	return strings.TrimSpace(line)
}

func detectDelimiter(line string) (rune, int) {
	delimiters := []rune{';', '\t', ',', '|'}
	bestDelimiter := rune(0)
	bestCount := 0
	for _, d := range delimiters {
		count := strings.Count(line, string(d))
		if count > bestCount {
			bestCount = count
			bestDelimiter = d
		}
	}
	return bestDelimiter, bestCount
}

// generateFingerprint hashes the normalized header names so repeat invoice
// layouts from the same supplier can be recognized.
func generateFingerprint(headers []string) string {
	var normalized []string
	for _, h := range headers {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, h)
		if clean != "" {
			normalized = append(normalized, clean)
		}
	}
	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}
