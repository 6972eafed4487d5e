// Package layout calcula la geometría de las filas de la tabla de la factura.
//
// Una fila ocupa el alto que necesite la descripción envuelta; las otras tres
// columnas comparten ese mismo alto y centran su única línea verticalmente:
//
//	┌──────────────────────────────┬───────┬───────────┬─────────┐
//	│ Mulch installation for the   │       │           │         │
//	│ front and back yard beds,    │ 10    │   $25.00  │ $250.00 │
//	│ edging included              │       │           │         │
//	└──────────────────────────────┴───────┴───────────┴─────────┘
//
// El paquete no dibuja nada: produce comandos posicionados que el ensamblador
// aplica sobre el lienzo. No tiene modos de fallo.
package layout

// Align alineación horizontal de un texto dentro de su celda (mismos códigos que FPDF).
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// CommandKind tipo de primitiva de dibujo.
type CommandKind int

const (
	CommandBorder CommandKind = iota + 1 // rectángulo sin relleno
	CommandText                          // una línea de texto sin borde
)

// Command primitiva posicionada. Para CommandText, (W, H) es la celda del texto.
type Command struct {
	Kind  CommandKind
	X, Y  float64
	W, H  float64
	Text  string
	Align Align
}

// Point posición del cursor.
type Point struct {
	X, Y float64
}

// RenderedRow resultado de maquetar una línea de factura.
type RenderedRow struct {
	Commands []Command
	Height   float64
	Next     Point // cursor para la siguiente fila: (x, y+Height)
}

// Borders devuelve solo los rectángulos de la fila, en orden de columna.
func (r RenderedRow) Borders() []Command {
	return r.filter(CommandBorder)
}

// Texts devuelve solo los textos de la fila, en orden de dibujo.
func (r RenderedRow) Texts() []Command {
	return r.filter(CommandText)
}

func (r RenderedRow) filter(kind CommandKind) []Command {
	out := make([]Command, 0, len(r.Commands))
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Cells textos ya formateados de las cuatro columnas.
type Cells struct {
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
}

// Column cabecera de una columna de la tabla.
type Column struct {
	Title string
	Width float64
	Align Align
}

// Table geometría fija de la tabla de líneas (unidades del lienzo, mm).
type Table struct {
	DescriptionWidth float64
	QuantityWidth    float64
	UnitPriceWidth   float64
	TotalWidth       float64

	WrapWidth  float64 // ancho útil para envolver la descripción
	LineHeight float64
	Padding    float64 // se suma al alto de las líneas
	TopPadding float64 // desplazamiento de la primera línea dentro de la celda
	TextInset  float64 // margen izquierdo/derecho del texto de la descripción
}

// DefaultTable columnas {100, 25, 35, 30} sobre 190 mm de ancho imprimible.
func DefaultTable() Table {
	return Table{
		DescriptionWidth: 100,
		QuantityWidth:    25,
		UnitPriceWidth:   35,
		TotalWidth:       30,
		WrapWidth:        95,
		LineHeight:       5,
		Padding:          2,
		TopPadding:       1,
		TextInset:        2,
	}
}

// Width ancho total de la tabla.
func (t Table) Width() float64 {
	return t.DescriptionWidth + t.QuantityWidth + t.UnitPriceWidth + t.TotalWidth
}

// Columns cabeceras en orden de dibujo.
func (t Table) Columns() []Column {
	return []Column{
		{Title: "Description", Width: t.DescriptionWidth, Align: AlignLeft},
		{Title: "Qty", Width: t.QuantityWidth, Align: AlignCenter},
		{Title: "Unit Price", Width: t.UnitPriceWidth, Align: AlignRight},
		{Title: "Total", Width: t.TotalWidth, Align: AlignRight},
	}
}

// RowHeight alto de una fila con lineCount líneas: nunca menos de una línea.
func RowHeight(lineCount int, lineHeight, padding float64) float64 {
	return float64(max(lineCount, 1))*lineHeight + padding
}

// RowHeight alto de fila con la geometría de la tabla.
func (t Table) RowHeight(lineCount int) float64 {
	return RowHeight(lineCount, t.LineHeight, t.Padding)
}

// RenderRow emite los bordes de las cuatro columnas con alto rowHeight, las
// líneas de la descripción de arriba hacia abajo y el texto de cantidad, precio
// y total centrado verticalmente.
func (t Table) RenderRow(x, y float64, cells Cells, lines []string, rowHeight float64) RenderedRow {
	cmds := make([]Command, 0, len(lines)+7)
	cmds = append(cmds, Command{Kind: CommandBorder, X: x, Y: y, W: t.DescriptionWidth, H: rowHeight})

	textWidth := t.DescriptionWidth - 2*t.TextInset
	for i, line := range lines {
		cmds = append(cmds, Command{
			Kind:  CommandText,
			X:     x + t.TextInset,
			Y:     y + t.TopPadding + float64(i)*t.LineHeight,
			W:     textWidth,
			H:     t.LineHeight,
			Text:  line,
			Align: AlignLeft,
		})
	}

	centerY := y + (rowHeight-t.LineHeight)/2
	colX := x + t.DescriptionWidth
	siblings := []struct {
		width float64
		text  string
		align Align
	}{
		{t.QuantityWidth, cells.Quantity, AlignCenter},
		{t.UnitPriceWidth, cells.UnitPrice, AlignRight},
		{t.TotalWidth, cells.Total, AlignRight},
	}
	for _, s := range siblings {
		cmds = append(cmds,
			Command{Kind: CommandBorder, X: colX, Y: y, W: s.width, H: rowHeight},
			Command{Kind: CommandText, X: colX, Y: centerY, W: s.width, H: t.LineHeight, Text: s.text, Align: s.align},
		)
		colX += s.width
	}

	return RenderedRow{
		Commands: cmds,
		Height:   rowHeight,
		Next:     Point{X: x, Y: y + rowHeight},
	}
}

// LayoutRow envuelve la descripción, calcula el alto y maqueta la fila.
func (t Table) LayoutRow(x, y float64, cells Cells, measure MeasureFunc) RenderedRow {
	lines := Wrap(cells.Description, t.WrapWidth, measure)
	return t.RenderRow(x, y, cells, lines, t.RowHeight(len(lines)))
}
