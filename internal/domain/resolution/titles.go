package resolution

import (
	"regexp"
	"strings"
)

// titleRule classifies a retrieved product title by keyword. Rules run in
// declaration order; searchPage extends the match to the surrounding page
// text for signals that rarely sit in the title itself.
type titleRule struct {
	keywords     []string
	searchPage   bool
	excludeFrame bool
	category     string
	productType  string
	subcategory  string // empty means derive from the bike model name
	turkish      string
	gtip         string
}

var titleRules = []titleRule{
	{
		keywords: []string{"lit", "light", "lamp", "led", "beam", "aydınlatma", "ışık"}, searchPage: true,
		category: "Bisiklet Aydınlatması", productType: "Bisiklet Işığı", subcategory: "Aydınlatma",
		turkish: "Bisiklet ışığı/aydınlatma sistemi", gtip: "Bisiklet ışığı (aydınlatma ekipmanı)",
	},
	{
		keywords: []string{"helmet", "helm", "kask", "hlmt"},
		category: "Bisiklet Kask", productType: "Kask", subcategory: "Güvenlik Ekipmanı",
		turkish: "Koruyucu kask, bisiklet için", gtip: "Koruyucu kask (bisiklet için)",
	},
	{
		keywords: []string{"tire", "tyre", "wheel", "rim", "hub", "spoke", "lastik", "tekerlek"},
		category: "Bisiklet Tekerlek/Lastik", productType: "Bisiklet Tekerlek", subcategory: "Tekerlek Sistemi",
		turkish: "Bisiklet tekerleği/lastiği", gtip: "Bisiklet tekerleği veya lastiği",
	},
	{
		keywords: []string{"brake", "brk", "disc", "pad", "caliper", "fren", "balata"},
		category: "Bisiklet Fren Sistemi", productType: "Bisiklet Fren", subcategory: "Fren Sistemi",
		turkish: "Bisiklet fren sistemi/balata", gtip: "Bisiklet fren sistemi",
	},
	{
		keywords: []string{"gear", "shift", "derailleur", "cassette", "chain", "cog", "vites", "zincir"},
		category: "Bisiklet Vites Sistemi", productType: "Bisiklet Vites", subcategory: "Vites Sistemi",
		turkish: "Bisiklet vites sistemi/zincir", gtip: "Bisiklet vites sistemi",
	},
	{
		keywords: []string{"saddle", "seat", "post", "clamp", "sele", "oturma"},
		category: "Bisiklet Selesi", productType: "Bisiklet Selesi", subcategory: "Sele Sistemi",
		turkish: "Bisiklet selesi/oturma yeri", gtip: "Bisiklet selesi",
	},
	{
		keywords: []string{"e-bike", "electric", "elektrik", "exe", "powerfly", "verve+", "allant+", "domane+", "rail"}, searchPage: true,
		category: "Elektrikli Bisiklet", productType: "Elektrikli Bisiklet",
		turkish: "Elektrikli bisiklet, elektrik motorlu, pedal çevirmeli",
		gtip:    "Elektrikli bisiklet (elektrik motorlu, pedal çevirmeli)",
	},
	{
		keywords: []string{"bike", "bisiklet", "domane", "madone", "emonda", "checkpoint", "crockett", "boone"}, excludeFrame: true,
		category: "Bisiklet", productType: "Bisiklet",
		turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		gtip:    "Bisiklet (motor olmayan, pedal çevirmeli)",
	},
	{
		keywords: []string{"frame", "frameset", "kadro", "çerçeve"},
		category: "Bisiklet Kadrosu", productType: "Bisiklet Kadrosu", subcategory: "Çerçeve",
		turkish: "Bisiklet kadrosu/çerçevesi, alüminyum/karbon", gtip: "Bisiklet kadrosu (çerçeve)",
	},
	{
		keywords: []string{"mount", "holder", "bracket", "adapter", "blendr", "tutuc", "aksesuar"},
		category: "Bisiklet Aksesuarı", productType: "Bisiklet Aksesuarı", subcategory: "Aksesuar Tutucusu",
		turkish: "Bisiklet aksesuar tutucusu, plastik/metal", gtip: "Bisiklet aksesuar tutucusu",
	},
	{
		keywords: []string{"chain", "brake", "gear", "derailleur", "cassette", "tire", "tube", "zincir", "fren"},
		category: "Bisiklet Parçası", productType: "Bisiklet Parçası", subcategory: "Yedek Parça",
		turkish: "Bisiklet yedek parçası", gtip: "Bisiklet yedek parçası",
	},
}

// ClassifyTitle classifies a product title retrieved from the remote catalog
// site, using the surrounding page text for a few broader signals. Always
// returns a record; unmatched titles get the generic classification, which
// marks the result as not properly identified.
func ClassifyTitle(title, pageText string) ProductRecord {
	titleLower := strings.ToLower(title)
	pageLower := strings.ToLower(pageText)

	for _, rule := range titleRules {
		if !rule.matchesText(titleLower, pageLower) {
			continue
		}
		sub := rule.subcategory
		if sub == "" {
			sub = bikeSubcategory(titleLower)
		}
		return ProductRecord{
			Name:        title,
			Category:    rule.category,
			ProductType: rule.productType,
			Subcategory: sub,
			Turkish:     rule.turkish,
			GTIP:        rule.gtip,
			Series:      seriesFromName(title),
			Provenance:  ProvenanceRemote,
		}
	}
	return ProductRecord{
		Name:        title,
		Category:    genericCategory,
		ProductType: genericCategory,
		Subcategory: genericSubcategory,
		Turkish:     "Trek bisiklet ürünü",
		GTIP:        genericGTIP,
		Series:      seriesFromName(title),
		Provenance:  ProvenanceRemote,
	}
}

func (r titleRule) matchesText(titleLower, pageLower string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(titleLower, kw) || (r.searchPage && strings.Contains(pageLower, kw)) {
			if r.excludeFrame && strings.Contains(titleLower, "frame") {
				return false
			}
			return true
		}
	}
	return false
}

func bikeSubcategory(nameLower string) string {
	switch {
	case containsAny(nameLower, "mountain", "mtb", "fuel", "remedy", "slash"):
		return "Dağ Bisikleti"
	case containsAny(nameLower, "road", "domane", "madone", "emonda"):
		return "Yol Bisikleti"
	case containsAny(nameLower, "hybrid", "fx", "verve", "dual"):
		return "Hibrit Bisiklet"
	case containsAny(nameLower, "city", "urban", "district"):
		return "Şehir Bisikleti"
	default:
		return "Genel Bisiklet"
	}
}

var seriesPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)fuel\s*exe?`),
	regexp.MustCompile(`(?i)domane`),
	regexp.MustCompile(`(?i)madone`),
	regexp.MustCompile(`(?i)emonda`),
	regexp.MustCompile(`(?i)fx`),
	regexp.MustCompile(`(?i)verve`),
	regexp.MustCompile(`(?i)remedy`),
	regexp.MustCompile(`(?i)slash`),
	regexp.MustCompile(`(?i)powerfly`),
	regexp.MustCompile(`(?i)rail`),
	regexp.MustCompile(`(?i)allant`),
	regexp.MustCompile(`(?i)checkpoint`),
}

func seriesFromName(name string) string {
	for _, re := range seriesPatterns {
		if m := re.FindString(name); m != "" {
			return titleCase(m)
		}
	}
	return "Trek"
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
