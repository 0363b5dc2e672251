package parser

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testParser() *Parser {
	return NewParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := testParser().Parse("invoice.docx", []byte("whatever"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_CSV(t *testing.T) {
	data := []byte("Item Number,Description,Qty\nW5259050,Bontrager Saddle,1\n5329077,Fuel EXe 9.5,2\n")

	doc, err := testParser().Parse("invoice.csv", data)

	require.NoError(t, err)
	assert.Equal(t, "invoice.csv", doc.FileName)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Tables, 1)

	rows := doc.Pages[0].Tables[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "Item Number", rows[0][0])
	assert.Equal(t, "W5259050", rows[1][0])
	assert.Contains(t, doc.Pages[0].Text, "Fuel EXe")
}

func TestParse_CSVKeepsMetadataInText(t *testing.T) {
	data := []byte("Invoice 2024-00155\n\nSKU;Description\nABC1234;Widget\n")

	doc, err := testParser().Parse("upload.csv", data)

	require.NoError(t, err)
	rows := doc.Pages[0].Tables[0].Rows
	require.Len(t, rows, 2, "metadata lines above the header are not table rows")
	assert.Equal(t, "SKU", rows[0][0])
	assert.Contains(t, doc.Pages[0].Text, "Invoice 2024-00155")
}

func TestParse_CSVEmpty(t *testing.T) {
	_, err := testParser().Parse("invoice.csv", []byte("\n\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_Excel(t *testing.T) {
	doc, err := testParser().Parse("invoice.xlsx", buildWorkbook(t))

	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	rows := doc.Pages[0].Tables[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "Item Number", rows[0][0])
	assert.Equal(t, "581633", rows[2][0])
	assert.Contains(t, doc.Pages[0].Text, "Aeolus")
}

func TestParse_ExcelEmpty(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	_, err := testParser().Parse("invoice.xlsx", buf.Bytes())
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_ExcelCorrupt(t *testing.T) {
	_, err := testParser().Parse("invoice.xlsx", []byte("this is not a zip archive"))
	assert.ErrorIs(t, err, ErrCorruptContent)
}

func TestParse_PDFEmpty(t *testing.T) {
	_, err := testParser().Parse("invoice.pdf", nil)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_PDFCorrupt(t *testing.T) {
	_, err := testParser().Parse("invoice.pdf", []byte("%PDF-garbage"))
	assert.ErrorIs(t, err, ErrCorruptContent)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.pdf"))
	assert.True(t, Supported("b.XLSX"))
	assert.True(t, Supported("c.csv"))
	assert.False(t, Supported("d.docx"))
	assert.False(t, Supported("noextension"))
}

func buildWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]any{
		{"Item Number", "Description", "Qty"},
		{"W5259050", "Bontrager Saddle", 1},
		{"581633", "Bontrager Aeolus Comp Saddle", 2},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return buf.Bytes()
}
