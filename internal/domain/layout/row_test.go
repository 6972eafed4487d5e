package layout_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicer/internal/domain/layout"
)

// monoMeasure simula una fuente monoespaciada de 2 unidades por carácter.
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 2
}

// ──────────────────────────────────────────────────────────────────────────────
// Wrap
// ──────────────────────────────────────────────────────────────────────────────

func TestWrap_TextoVacio_SinLineas(t *testing.T) {
	for _, width := range []float64{0, 1, 10, 95, 1000} {
		assert.Empty(t, layout.Wrap("", width, monoMeasure), "ancho %v", width)
		assert.Empty(t, layout.Wrap("   ", width, monoMeasure), "ancho %v", width)
	}
}

func TestWrap_CadaLineaCabeEnElAncho(t *testing.T) {
	text := "Premium hardwood mulch delivered and spread across all front and back " +
		"yard beds including edging cleanup weed barrier fabric and final blowing of walkways"
	const width = 95.0

	lines := layout.Wrap(text, width, monoMeasure)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, monoMeasure(line), width, "línea %q", line)
	}
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "),
		"el envolvido no debe perder ni reordenar palabras")
}

func TestWrap_PalabraLargaQuedaSola(t *testing.T) {
	lines := layout.Wrap("a supercalifragilistic b", 20, monoMeasure)
	assert.Equal(t, []string{"a", "supercalifragilistic", "b"}, lines)
}

func TestWrap_EspaciosRepetidosSeAbsorben(t *testing.T) {
	lines := layout.Wrap("  Delivery   Fee  ", 95, monoMeasure)
	assert.Equal(t, []string{"Delivery Fee"}, lines)
}

func TestWrap_TabulacionesYSaltosSonSeparadores(t *testing.T) {
	lines := layout.Wrap("Delivery\tFee\nMulch", 200, monoMeasure)
	assert.Equal(t, []string{"Delivery Fee Mulch"}, lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// RowHeight
// ──────────────────────────────────────────────────────────────────────────────

func TestRowHeight_PisoDeUnaLinea(t *testing.T) {
	for _, h := range []float64{1, 5, 7.5} {
		assert.Equal(t, layout.RowHeight(1, h, 2), layout.RowHeight(0, h, 2))
	}
}

func TestRowHeight_Formula(t *testing.T) {
	for n := 1; n <= 6; n++ {
		assert.InDelta(t, float64(n)*5+2, layout.RowHeight(n, 5, 2), 1e-9)
	}
	tbl := layout.DefaultTable()
	assert.InDelta(t, 17.0, tbl.RowHeight(3), 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// LayoutRow / RenderRow
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultTable_AnchoImprimible(t *testing.T) {
	tbl := layout.DefaultTable()
	assert.InDelta(t, 190.0, tbl.Width(), 1e-9)

	cols := tbl.Columns()
	require.Len(t, cols, 4)
	assert.Equal(t, "Description", cols[0].Title)
	assert.Equal(t, layout.AlignCenter, cols[1].Align)
	assert.Equal(t, layout.AlignRight, cols[3].Align)
}

func TestLayoutRow_TresLineasComparteAlto(t *testing.T) {
	tbl := layout.DefaultTable()
	// 12 palabras de 10 letras: caben 4 por línea (43 caracteres = 86 unidades ≤ 95).
	desc := strings.TrimSpace(strings.Repeat("mulchmulch ", 12))
	cells := layout.Cells{Description: desc, Quantity: "10", UnitPrice: "$25.00", Total: "$250.00"}

	row := tbl.LayoutRow(10, 100, cells, monoMeasure)

	assert.InDelta(t, 3*tbl.LineHeight+tbl.Padding, row.Height, 1e-9)
	assert.Equal(t, layout.Point{X: 10, Y: 117}, row.Next)

	borders := row.Borders()
	require.Len(t, borders, 4)
	wantX := []float64{10, 110, 135, 170}
	wantW := []float64{100, 25, 35, 30}
	for i, b := range borders {
		assert.InDelta(t, row.Height, b.H, 1e-9, "borde %d debe compartir el alto de la fila", i)
		assert.InDelta(t, 100.0, b.Y, 1e-9)
		assert.InDelta(t, wantX[i], b.X, 1e-9)
		assert.InDelta(t, wantW[i], b.W, 1e-9)
	}

	texts := row.Texts()
	require.Len(t, texts, 6)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 12.0, texts[i].X, 1e-9)
		assert.InDelta(t, 101+float64(i)*5, texts[i].Y, 1e-9)
		assert.InDelta(t, 96.0, texts[i].W, 1e-9)
		assert.Equal(t, layout.AlignLeft, texts[i].Align)
	}
	for i, want := range []string{"10", "$25.00", "$250.00"} {
		sib := texts[3+i]
		assert.Equal(t, want, sib.Text)
		assert.InDelta(t, 106.0, sib.Y, 1e-9, "texto centrado verticalmente")
		assert.InDelta(t, tbl.LineHeight, sib.H, 1e-9)
	}
	assert.Equal(t, layout.AlignCenter, texts[3].Align)
	assert.Equal(t, layout.AlignRight, texts[4].Align)
	assert.Equal(t, layout.AlignRight, texts[5].Align)
}

func TestRenderRow_SinLineasMantieneBordes(t *testing.T) {
	tbl := layout.DefaultTable()
	h := tbl.RowHeight(0)

	row := tbl.RenderRow(10, 50, layout.Cells{Quantity: "1"}, nil, h)

	assert.Len(t, row.Borders(), 4)
	assert.Len(t, row.Texts(), 3)
	assert.InDelta(t, 7.0, row.Height, 1e-9)
	assert.Equal(t, layout.CommandBorder, row.Commands[0].Kind, "el borde de la descripción va primero")
}
