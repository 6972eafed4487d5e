package http

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sendPDF responde el PDF como descarga con el nombre original, también si
// lleva acentos: filename="..." en ASCII y filename*=UTF-8''... (RFC 6266 / 5987).
func sendPDF(c *fiber.Ctx, fileName string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(fileName))
	return c.Send(pdf)
}

func contentDisposition(fileName string) string {
	return `attachment; filename="` + asciiFileName(fileName) + `"; filename*=UTF-8''` + encodeRFC5987(fileName)
}

// asciiFileName "José Ñandú" → "Jose Nandu"; lo que no tiene equivalente ASCII queda como "_".
func asciiFileName(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, name)
	if err != nil {
		plain = name
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '"' || r == '\\':
			return '_'
		case r < 0x20 || r > 0x7e:
			return '_'
		default:
			return r
		}
	}, plain)
}

// encodeRFC5987 codifica en porcentaje todo byte que no sea attr-char.
func encodeRFC5987(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isAttrChar(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0f])
	}
	return b.String()
}

func isAttrChar(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", ch) >= 0
}
