// Package money formatea importes para mostrarlos en la factura.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format devuelve el importe con símbolo, separador de miles y dos decimales.
// Ej: 1234.5 → "$1,234.50". El redondeo ocurre solo aquí.
func Format(d decimal.Decimal) string {
	rounded := d.Round(2)
	fixed := rounded.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(intPart) + "." + frac
}

// Percent formatea una tasa sin ceros sobrantes: 7 → "7%", 8.250 → "8.25%".
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// groupThousands inserta comas de miles en un string numérico sin signo.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
