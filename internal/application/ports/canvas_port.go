package ports

import "io"

// Canvas define el puerto de salida de dibujo: un lienzo con cursor al estilo FPDF.
// El ensamblador de la factura solo conoce este contrato; cada librería PDF
// concreta (gofpdf, un lienzo de pruebas, ...) aporta su adaptador.
//
// Unidades en mm, origen arriba a la izquierda. Las alineaciones usan los códigos
// "L", "C" y "R"; border "1" dibuja el marco de la celda y "" ninguno.
type Canvas interface {
	SetFont(family, style string, size float64)
	SetFillColor(r, g, b int)

	SetXY(x, y float64)
	SetX(x float64)
	// SetY mueve el cursor vertical y lo lleva al margen izquierdo.
	// Un valor negativo se cuenta desde el borde inferior.
	SetY(y float64)
	GetXY() (x, y float64)
	Ln(h float64)

	// Cell dibuja una celda de texto. ln=1 baja a la siguiente línea, 0 deja el
	// cursor a la derecha de la celda. El texto llega ya saneado.
	Cell(w, h float64, text, border string, ln int, align string, fill bool)
	Rect(x, y, w, h float64, style string)
	Line(x1, y1, x2, y2 float64)

	// MeasureText ancho del texto con la fuente activa.
	MeasureText(text string) float64

	// EmbedImage dibuja la imagen del archivo en (x, y) con ancho w y alto
	// proporcional. Devuelve false si no se pudo leer o incrustar; en ese caso el
	// documento sigue siendo válido.
	EmbedImage(path string, x, y, w float64) bool
}

// Document lienzo con ciclo de vida de documento: páginas, cabecera/pie y salida.
type Document interface {
	Canvas

	// SetHeaderFunc / SetFooterFunc se invocan en cada página nueva y al cerrarla.
	SetHeaderFunc(fn func())
	SetFooterFunc(fn func())
	AddPage()
	PageNo() int

	// Output cierra el documento y escribe los bytes del PDF.
	Output(w io.Writer) error
}

// DocumentFactory crea un documento nuevo por petición; los documentos no se comparten.
type DocumentFactory interface {
	NewDocument() Document
}
