package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyContext(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		category string
	}{
		{"saddle prefix", "SADDLE AEOLUS COMP 145MM", "Bisiklet Selesi"},
		{"saddle word prefix mid-context", "Bontrager Saddle Pro", "Bisiklet Selesi"},
		{"chain abbreviation", "CHN KMC X11 126L", "Bisiklet Vites Sistemi"},
		{"pedal", "PEDAL SET LINE PRO", "Bisiklet Pedalı"},
		{"grip", "GRP XR TRAIL COMP", "Bisiklet Aksesuarı"},
		{"handlebar HAN", "HANDLEBAR ELITE AERO", "Bisiklet Gidon"},
		{"handlebar HBR", "HBR 720MM ALLOY", "Bisiklet Gidon"},
		{"stem", "STEM PRO BLENDR", "Bisiklet Potansı"},
		{"tire", "TIRE XR4 TEAM ISSUE", "Bisiklet Tekerlek/Lastik"},
		{"wheel", "WHL AEOLUS PRO 37", "Bisiklet Tekerlek/Lastik"},
		{"brake", "BRK PAD SET SHIMANO", "Bisiklet Fren Sistemi"},
		{"lock", "LCK KEYED CABLE", "Bisiklet Güvenlik"},
		{"light LED word", "LED REAR FLARE RT", "Bisiklet Aydınlatması"},
		{"bottle cage", "BTL CAGE ELITE", "Bisiklet Aksesuarı"},
		{"derailleur", "DER XT SHADOW PLUS", "Bisiklet Vites Sistemi"},
		{"cassette", "CAS 11-34 10SPD", "Bisiklet Vites Sistemi"},
		{"spoke", "SPK DT SWISS 292MM", "Bisiklet Tekerlek"},
		{"mtb part", "MTB CHAINSTAY PROTECTOR", "Bisiklet Parçası"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := ClassifyContext(tt.context)
			require.True(t, ok)
			assert.Equal(t, tt.category, record.Category)
			assert.Equal(t, ProvenanceContext, record.Provenance)
			assert.Contains(t, record.Name, tt.context)
		})
	}
}

func TestClassifyContext_TableOrderBreaksTies(t *testing.T) {
	// Both SAD (saddle) and BAR (handlebar) candidates appear; the saddle
	// rule is declared earlier, so it wins even though BAR comes first in
	// the text.
	record, ok := ClassifyContext("BAR TAPE SADDLE COMBO")
	require.True(t, ok)
	assert.Equal(t, "Bisiklet Selesi", record.Category)
}

func TestClassifyContext_Miss(t *testing.T) {
	for _, context := range []string{"", "XQ", "UNRELATED TEXT", "99 123 456"} {
		t.Run(context, func(t *testing.T) {
			_, ok := ClassifyContext(context)
			assert.False(t, ok)
		})
	}
}
