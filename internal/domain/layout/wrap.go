package layout

import "strings"

// MeasureFunc devuelve el ancho de s con la fuente activa del lienzo.
type MeasureFunc func(s string) float64

// Wrap reparte text en líneas de ancho máximo maxWidth de forma voraz: cada
// palabra se agrega a la línea actual mientras quepa; si no, la línea se cierra
// y la palabra abre la siguiente. Una palabra más ancha que maxWidth queda sola
// en su línea (no se parte). Texto vacío produce cero líneas.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
