package resolution

import (
	"fmt"
	"strings"
)

// PatternClassifier infers a product family from the lexical shape of a code
// alone. The rule order mirrors the historical branch order of the curated
// rule set; overlapping prefixes (W5 before W524, W32 before W3) resolve by
// that order.
type PatternClassifier struct {
	catalog *Catalog
}

func NewPatternClassifier(catalog *Catalog) *PatternClassifier {
	return &PatternClassifier{catalog: catalog}
}

type patternRule struct {
	matches func(code string) bool
	build   func(p *PatternClassifier, code, context string) (ProductRecord, bool)
}

var patternRules = []patternRule{
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "532") && len(c) == 7 },
		build: func(_ *PatternClassifier, code, context string) (ProductRecord, bool) {
			lower := strings.ToLower(context)
			if strings.HasPrefix(code, "5329") || strings.Contains(lower, "electric") || strings.Contains(lower, "e-bike") {
				return ProductRecord{
					Name:        fmt.Sprintf("Trek Elektrikli Bisiklet #%s", code),
					Category:    "Elektrikli Bisiklet",
					ProductType: "Elektrikli Bisiklet",
					Subcategory: "Elektrikli Bisiklet",
					Turkish:     "Elektrikli bisiklet, elektrik motorlu, pedal çevirmeli",
					GTIP:        "Elektrikli bisiklet (elektrik motorlu, pedal çevirmeli)",
					Series:      "Trek",
					Provenance:  ProvenancePattern,
				}, true
			}
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Bisiklet #%s", code),
				Category:    "Bisiklet",
				ProductType: "Bisiklet",
				Subcategory: "Genel Bisiklet",
				Turkish:     "Bisiklet (motor olmayan, pedal çevirmeli)",
				GTIP:        "Bisiklet (motor olmayan, pedal çevirmeli)",
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "531") && len(c) == 7 },
		build:   buildPart("Trek Bisiklet Parçası #%s", "Yedek Parça", "Bisiklet yedek parçası/bileşeni", "Trek"),
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "528") && len(c) == 7 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Bisiklet Aksesuarı #%s", code),
				Category:    "Bisiklet Aksesuarı",
				ProductType: "Bisiklet Aksesuarı",
				Subcategory: "Aksesuar Tutucusu",
				Turkish:     "Bisiklet aksesuarı, montaj parçası",
				GTIP:        "Bisiklet aksesuarı",
				Series:      "Bontrager",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "527") && len(c) == 7 },
		build:   buildPart("Trek Bisiklet Parçası #%s", "Yedek Parça", "Bisiklet yedek parçası/bileşeni", "Trek"),
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "526") && len(c) == 7 },
		build:   buildPart("Trek Bisiklet Parçası #%s", "Yedek Parça", "Bisiklet yedek parçası/bileşeni", "Trek"),
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "533") && len(c) == 7 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Özel Ürün #%s", code),
				Category:    "Trek Özel Ürün",
				ProductType: "Trek Özel Ürün",
				Subcategory: "Özel Seri",
				Turkish:     "Trek özel seri bisiklet ürünü",
				GTIP:        "Bisiklet ile ilgili özel ürün",
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W5") && len(c) >= 7 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return bontragerAccessory(code), true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W524") && len(c) >= 6 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return ProductRecord{
				Name:        fmt.Sprintf("Bontrager Parça #%s", code),
				Category:    "Bisiklet Parçası",
				ProductType: "Bisiklet Parçası",
				Subcategory: "Bontrager Parça",
				Turkish:     "Bontrager marka bisiklet parçası",
				GTIP:        "Bisiklet yedek parçası",
				Series:      "Bontrager",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W32") && len(c) >= 6 },
		build: func(p *PatternClassifier, code, _ string) (ProductRecord, bool) {
			// Known hanger codes carry curated records.
			if rec, ok := p.catalog.Lookup(code); ok {
				return rec, true
			}
			return ProductRecord{
				Name:        fmt.Sprintf("Trek MTB Parçası #%s", code),
				Category:    "Bisiklet Parçası",
				ProductType: "Bisiklet Parçası",
				Subcategory: "MTB Parçası",
				Turkish:     "Trek dağ bisikleti yedek parçası",
				GTIP:        "Bisiklet yedek parçası (dağ bisikleti için)",
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W58") && len(c) >= 6 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return bontragerAccessory(code), true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W3") && len(c) >= 6 },
		build: func(p *PatternClassifier, code, _ string) (ProductRecord, bool) {
			if rec, ok := p.catalog.Lookup(code); ok {
				return rec, true
			}
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Parça #%s", code),
				Category:    "Bisiklet Parçası",
				ProductType: "Bisiklet Parçası",
				Subcategory: "Trek Parça",
				Turkish:     "Trek bisiklet yedek parçası",
				GTIP:        "Bisiklet yedek parçası",
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool { return strings.HasPrefix(c, "W4") && len(c) >= 6 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Parça #%s", code),
				Category:    "Bisiklet Parçası",
				ProductType: "Bisiklet Parçası",
				Subcategory: "Trek Parça",
				Turkish:     "Trek bisiklet yedek parçası",
				GTIP:        "Bisiklet yedek parçası",
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
	{
		matches: func(c string) bool {
			return (strings.HasPrefix(c, "W1") || strings.HasPrefix(c, "W2")) && len(c) >= 6
		},
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return genericWPart(code, "Trek/Bontrager bisiklet parçası"), true
		},
	},
	{
		matches: func(c string) bool {
			for _, prefix := range []string{"W6", "W7", "W8", "W9"} {
				if strings.HasPrefix(c, prefix) {
					return len(c) >= 6
				}
			}
			return false
		},
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			return genericWPart(code, "Trek/Bontrager bisiklet parçası"), true
		},
	},
	{
		matches: func(c string) bool { return isDigits(c) && len(c) == 6 },
		build:   buildPart("Trek/Bontrager Parça #%s", "Yedek Parça", "Bisiklet yedek parçası", "Trek"),
	},
	{
		matches: func(c string) bool { return isDigits(c) && len(c) == 5 },
		build: func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
			if strings.HasPrefix(code, "41") || strings.HasPrefix(code, "47") {
				return ProductRecord{
					Name:        fmt.Sprintf("Trek Fuel EXe Elektrikli Bisiklet #%s", code),
					Category:    "Elektrikli Dağ Bisikleti",
					ProductType: "Elektrikli Bisiklet",
					Subcategory: "Elektrikli Dağ Bisikleti",
					Turkish:     "Trek Fuel EXe elektrikli dağ bisikleti",
					GTIP:        "Elektrikli bisiklet (elektrik motorlu, pedal çevirmeli)",
					Series:      "Fuel EXe",
					Provenance:  ProvenancePattern,
				}, true
			}
			return ProductRecord{
				Name:        fmt.Sprintf("Trek Özel Ürün #%s", code),
				Category:    genericCategory,
				ProductType: genericCategory,
				Subcategory: "Özel Kod",
				Turkish:     "Trek bisiklet ürünü",
				GTIP:        genericGTIP,
				Series:      "Trek",
				Provenance:  ProvenancePattern,
			}, true
		},
	},
}

// Classify returns a record inferred from the code shape, or a miss when no
// family rule applies.
func (p *PatternClassifier) Classify(code, context string) (ProductRecord, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, rule := range patternRules {
		if rule.matches(code) {
			return rule.build(p, code, context)
		}
	}
	return ProductRecord{}, false
}

func buildPart(nameFormat, subcategory, turkish, series string) func(*PatternClassifier, string, string) (ProductRecord, bool) {
	return func(_ *PatternClassifier, code, _ string) (ProductRecord, bool) {
		return ProductRecord{
			Name:        fmt.Sprintf(nameFormat, code),
			Category:    "Bisiklet Parçası",
			ProductType: "Bisiklet Parçası",
			Subcategory: subcategory,
			Turkish:     turkish,
			GTIP:        "Bisiklet yedek parçası",
			Series:      series,
			Provenance:  ProvenancePattern,
		}, true
	}
}

func bontragerAccessory(code string) ProductRecord {
	return ProductRecord{
		Name:        fmt.Sprintf("Bontrager Aksesuar #%s", code),
		Category:    "Bisiklet Aksesuarı",
		ProductType: "Bisiklet Aksesuarı",
		Subcategory: "Bontrager Aksesuar",
		Turkish:     "Bontrager marka bisiklet aksesuarı",
		GTIP:        "Bisiklet aksesuarı",
		Series:      "Bontrager",
		Provenance:  ProvenancePattern,
	}
}

func genericWPart(code, turkish string) ProductRecord {
	return ProductRecord{
		Name:        fmt.Sprintf("Trek/Bontrager Parça #%s", code),
		Category:    "Bisiklet Parçası",
		ProductType: "Bisiklet Parçası",
		Subcategory: "Parça",
		Turkish:     turkish,
		GTIP:        "Bisiklet yedek parçası",
		Series:      "Trek",
		Provenance:  ProvenancePattern,
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
