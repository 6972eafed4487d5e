// Package textenc prepara cadenas para las fuentes estándar del PDF, que solo
// conocen una página de códigos de un byte. Nunca devuelve error: lo que no se
// puede codificar se sustituye.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Substitute carácter que reemplaza a los runes no representables.
const Substitute = '?'

// Sanitizer valida y sustituye texto contra una página de códigos.
type Sanitizer struct {
	cm *charmap.Charmap
}

// New construye un Sanitizer para la página de códigos cm.
func New(cm *charmap.Charmap) *Sanitizer {
	return &Sanitizer{cm: cm}
}

// Windows1252 página de códigos de las fuentes base de FPDF (Helvetica, Times, Courier).
func Windows1252() *Sanitizer {
	return New(charmap.Windows1252)
}

// Sanitize convierte v a texto, repara UTF-8 inválido e intenta una codificación
// estricta; si falla, reemplaza cada rune no soportado por Substitute.
// El resultado sigue siendo UTF-8.
func (s *Sanitizer) Sanitize(v any) string {
	text := strings.ToValidUTF8(toText(v), string(Substitute))
	if _, err := s.cm.NewEncoder().String(text); err == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := s.cm.EncodeRune(r); ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(Substitute)
	}
	return b.String()
}

// Encode devuelve los bytes en la página de códigos, listos para el lienzo.
func (s *Sanitizer) Encode(v any) string {
	text := s.Sanitize(v)
	out, err := s.cm.NewEncoder().String(text)
	if err != nil {
		// Sanitize ya dejó solo runes codificables; no debería ocurrir.
		return text
	}
	return out
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}
