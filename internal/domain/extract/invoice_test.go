package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "from file name with invoice prefix",
			doc:  &Document{FileName: "Invoice_123456.pdf"},
			want: "123456",
		},
		{
			name: "upload timestamp stripped first",
			doc:  &Document{FileName: "20250812_143501_INV-987654.pdf"},
			want: "987654",
		},
		{
			name: "turkish label",
			doc:  &Document{FileName: "Fatura 445566.pdf"},
			want: "445566",
		},
		{
			name: "bare digit run",
			doc:  &Document{FileName: "trek_20250601_order.pdf"},
			want: "20250601",
		},
		{
			name: "from first page text",
			doc: &Document{
				FileName: "upload.pdf",
				Pages:    []Page{{Text: "TREK BICYCLE\nInvoice #778899\nBill To:"}},
			},
			want: "778899",
		},
		{
			name: "falls back to cleaned file name",
			doc:  &Document{FileName: "scan.pdf"},
			want: "scan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceNumber(tt.doc))
		})
	}
}
