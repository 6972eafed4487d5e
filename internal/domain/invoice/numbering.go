package invoice

import (
	"strconv"
	"strings"
)

// NextNumber sugiere el número siguiente a last incrementando su sufijo numérico
// y conservando el prefijo y el relleno con ceros: "1001" → "1002",
// "INV-009" → "INV-010". Si last está vacío o no termina en dígitos devuelve fallback.
func NextNumber(last, fallback string) string {
	last = strings.TrimSpace(last)
	end := len(last)
	start := end
	for start > 0 && last[start-1] >= '0' && last[start-1] <= '9' {
		start--
	}
	if start == end {
		return fallback
	}
	digits := last[start:end]
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return fallback
	}
	next := strconv.FormatUint(n+1, 10)
	if pad := len(digits) - len(next); pad > 0 {
		next = strings.Repeat("0", pad) + next
	}
	return last[:start] + next
}
