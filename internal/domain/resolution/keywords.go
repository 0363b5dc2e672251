package resolution

import (
	"fmt"
	"regexp"
	"strings"
)

// keywordRule maps bicycle-part abbreviations to a classification. Rules are
// evaluated in declaration order; the first rule with any matching candidate
// token wins, regardless of where that token appeared in the context.
type keywordRule struct {
	abbrevs     []string
	namePrefix  string
	category    string
	productType string
	subcategory string
	turkish     string
	gtip        string
	series      string
}

var keywordRules = []keywordRule{
	{[]string{"SAD"}, "Bontrager Sele", "Bisiklet Selesi", "Bisiklet Selesi", "Sele",
		"Bisiklet selesi", "Bisiklet selesi (oturma yeri)", "Bontrager"},
	{[]string{"CHN"}, "Trek Zincir", "Bisiklet Vites Sistemi", "Bisiklet Zinciri", "Zincir",
		"Bisiklet zinciri", "Bisiklet zinciri", "Trek"},
	{[]string{"PED"}, "Trek Pedal", "Bisiklet Pedalı", "Bisiklet Pedalı", "Pedal",
		"Bisiklet pedalı", "Bisiklet pedalı", "Trek"},
	{[]string{"GRP"}, "Bontrager Tutacak", "Bisiklet Aksesuarı", "Gidon Tutacağı", "Grip/Tutacak",
		"Gidon tutacağı/grip", "Bisiklet gidon tutacağı", "Bontrager"},
	{[]string{"HAN", "HBR"}, "Trek Gidon", "Bisiklet Gidon", "Bisiklet Gidon", "Gidon",
		"Bisiklet gidonu", "Bisiklet gidonu", "Trek"},
	{[]string{"STE"}, "Trek Potans", "Bisiklet Potansı", "Bisiklet Potansı", "Potans",
		"Bisiklet potansı/stem", "Bisiklet potansı", "Trek"},
	{[]string{"TIR"}, "Trek Lastik", "Bisiklet Tekerlek/Lastik", "Bisiklet Lastiği", "Lastik",
		"Bisiklet lastiği", "Bisiklet lastiği", "Trek"},
	{[]string{"WHL"}, "Trek Tekerlek", "Bisiklet Tekerlek/Lastik", "Bisiklet Tekerleği", "Tekerlek",
		"Bisiklet tekerleği", "Bisiklet tekerleği", "Trek"},
	{[]string{"BRK"}, "Trek Fren", "Bisiklet Fren Sistemi", "Bisiklet Fren", "Fren",
		"Bisiklet fren sistemi", "Bisiklet fren sistemi", "Trek"},
	{[]string{"LCK"}, "Bontrager Kilit", "Bisiklet Güvenlik", "Bisiklet Kilidi", "Kilit",
		"Bisiklet kilidi", "Bisiklet kilidi (güvenlik ekipmanı)", "Bontrager"},
	{[]string{"LIT", "LED", "LMP"}, "Trek Işık", "Bisiklet Aydınlatması", "Bisiklet Işığı", "Aydınlatma",
		"Bisiklet ışığı/aydınlatma sistemi", "Bisiklet ışığı (aydınlatma ekipmanı)", "Trek"},
	{[]string{"BTL", "CGE", "WAT", "BOT"}, "Bontrager Şişe Tutucu", "Bisiklet Aksesuarı", "Şişe Tutucusu", "Su Şişesi Tutucusu",
		"Bisiklet su şişesi tutucusu", "Bisiklet su şişesi tutucusu", "Bontrager"},
	{[]string{"GER"}, "Trek Vites Sistemi", "Bisiklet Vites Sistemi", "Vites Sistemi", "Vites Sistemi",
		"Bisiklet vites sistemi", "Bisiklet vites sistemi", "Trek"},
	{[]string{"DER"}, "Trek Derailleur", "Bisiklet Vites Sistemi", "Derailleur", "Derailleur",
		"Bisiklet derailleur", "Bisiklet derailleur", "Trek"},
	{[]string{"CAS"}, "Trek Kaset", "Bisiklet Vites Sistemi", "Kaset", "Kaset",
		"Bisiklet kaset", "Bisiklet kaset", "Trek"},
	{[]string{"SPK"}, "Trek Jant Teli", "Bisiklet Tekerlek", "Jant Teli", "Jant Teli",
		"Bisiklet jant teli", "Bisiklet jant teli", "Trek"},
	{[]string{"VAL"}, "Trek Valf", "Bisiklet Parçası", "Valf", "Valf",
		"Bisiklet valf", "Bisiklet valf", "Trek"},
	{[]string{"CAP"}, "Trek Kapak", "Bisiklet Parçası", "Kapak", "Kapak",
		"Bisiklet kapak", "Bisiklet kapak", "Trek"},
	{[]string{"BAR"}, "Trek Gidon", "Bisiklet Gidon", "Gidon", "Gidon",
		"Bisiklet gidonu", "Bisiklet gidonu", "Trek"},
	{[]string{"STP"}, "Trek Stop", "Bisiklet Parçası", "Stop", "Stop",
		"Bisiklet durdurucu", "Bisiklet durdurucu", "Trek"},
	{[]string{"MTB"}, "Trek Dağ Bisikleti Parçası", "Bisiklet Parçası", "Dağ Bisikleti Parçası", "Dağ Bisikleti Parçası",
		"Dağ bisikleti parçası", "Dağ bisikleti parçası", "Trek"},
}

var threeLetterWordRe = regexp.MustCompile(`\b[A-Z]{3}\b`)

// ClassifyContext classifies a code from the invoice text found next to it.
// Candidate tokens are the context's first three characters, any bare
// three-letter words, and the three-letter prefix of every word of at least
// three characters. Returns a miss when the context is empty or no
// abbreviation rule matches.
func ClassifyContext(context string) (ProductRecord, bool) {
	if context == "" {
		return ProductRecord{}, false
	}
	candidates := contextCandidates(context)
	for _, rule := range keywordRules {
		for _, abbr := range rule.abbrevs {
			if _, ok := candidates[abbr]; ok {
				return rule.record(context), true
			}
		}
	}
	return ProductRecord{}, false
}

func contextCandidates(context string) map[string]struct{} {
	upper := strings.ToUpper(context)
	candidates := make(map[string]struct{})
	if len(upper) >= 3 {
		candidates[upper[:3]] = struct{}{}
	} else {
		candidates[upper] = struct{}{}
	}
	for _, m := range threeLetterWordRe.FindAllString(upper, -1) {
		candidates[m] = struct{}{}
	}
	for _, word := range strings.Fields(upper) {
		if len(word) >= 3 {
			candidates[word[:3]] = struct{}{}
		}
	}
	return candidates
}

func (r keywordRule) record(context string) ProductRecord {
	return ProductRecord{
		Name:        fmt.Sprintf("%s - %s", r.namePrefix, context),
		Category:    r.category,
		ProductType: r.productType,
		Subcategory: r.subcategory,
		Turkish:     r.turkish,
		GTIP:        r.gtip,
		Series:      r.series,
		Provenance:  ProvenanceContext,
	}
}
