package report

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/velotrack/sku-resolver/internal/domain/resolution"
)

func testWriter() *Writer {
	return NewWriter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWrite(t *testing.T) {
	items := []resolution.LineItem{
		{
			InvoiceNumber: "2024-00155",
			Code:          "581633",
			Context:       "AEOLUS COMP SADDLE",
			Record: resolution.ProductRecord{
				Name:       "Bontrager Aeolus Comp Sele 145mm Siyah",
				Turkish:    "Bontrager Aeolus Comp bisiklet selesi, 145mm genişlik, siyah renk",
				GTIP:       "Bisiklet selesi",
				Provenance: resolution.ProvenanceDatabase,
			},
			Resolved: true,
		},
		{
			InvoiceNumber: "2024-00155",
			Code:          "XX99ZZ",
			Record:        resolution.FallbackRecord("XX99ZZ"),
			Resolved:      false,
		},
	}

	data, err := testWriter().Write(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ürün Tanımları")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Fatura Numarası", rows[0][0])
	assert.Equal(t, "Tanımlandı", rows[0][5])

	assert.Equal(t, "2024-00155", rows[1][0])
	assert.Equal(t, "581633", rows[1][1])
	assert.Equal(t, "AEOLUS COMP SADDLE", rows[1][2])
	assert.Equal(t, "Bisiklet selesi", rows[1][4])
	assert.Equal(t, "Evet", rows[1][5])

	// Fallback rows show the synthesized name and the Turkish description in
	// the tariff column.
	assert.Equal(t, "Trek Ürünü #XX99ZZ", rows[2][2])
	assert.Equal(t, "Bisiklet ile ilgili ürün", rows[2][4])
	assert.Equal(t, "Hayır", rows[2][5])
}

func TestWrite_EmptyItems(t *testing.T) {
	data, err := testWriter().Write(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ürün Tanımları")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
	assert.NotContains(t, f.GetSheetList(), "Sheet1")
}
