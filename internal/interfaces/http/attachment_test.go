package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDisposition(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{
			name: "Invoice_1001_John Smith.pdf",
			want: `attachment; filename="Invoice_1001_John Smith.pdf"; filename*=UTF-8''Invoice_1001_John%20Smith.pdf`,
		},
		{
			name: "Invoice_1001_José 🚜 Ñandú.pdf",
			want: `attachment; filename="Invoice_1001_Jose _ Nandu.pdf"; ` +
				`filename*=UTF-8''Invoice_1001_Jos%C3%A9%20%F0%9F%9A%9C%20%C3%91and%C3%BA.pdf`,
		},
		{
			name: `Invoice_7_"Quoted" Co.pdf`,
			want: `attachment; filename="Invoice_7__Quoted_ Co.pdf"; filename*=UTF-8''Invoice_7_%22Quoted%22%20Co.pdf`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contentDisposition(tc.name))
		})
	}
}
