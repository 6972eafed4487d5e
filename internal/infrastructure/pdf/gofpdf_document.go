// Package pdf implementa el lienzo de la factura sobre gofpdf.
//
// Página A4 vertical en mm, márgenes de 10 mm (los de FPDF por defecto):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO (10,8,w=33)   │  INVOICE / Empresa / Dirección         │
//	│  ─────────────────────────────────────────────────────────  │  y=45
//	│  Bill To / Address          Date / Invoice #                 │
//	│  TABLA: Description | Qty | Unit Price | Total               │
//	│  TOTALES: Subtotal / Tax / TOTAL DUE                         │
//	│  ▒▒▒ Payment Instructions ▒▒▒                                │
//	│                         Page N                               │
//	└─────────────────────────────────────────────────────────────┘
//
// Las fuentes base de FPDF usan Windows-1252: todo texto se convierte con
// textenc antes de medirse o dibujarse.
package pdf

import (
	"fmt"
	"image"
	_ "image/jpeg" // registra el decodificador para DecodeConfig
	_ "image/png"
	"io"
	"os"

	"github.com/phpdave11/gofpdf"

	"github.com/jhoicas/invoicer/internal/application/ports"
	"github.com/jhoicas/invoicer/pkg/textenc"
)

// Verificar en tiempo de compilación que los adaptadores implementan los puertos.
var (
	_ ports.Document        = (*GofpdfDocument)(nil)
	_ ports.DocumentFactory = (*GofpdfFactory)(nil)
)

// GofpdfFactory crea un documento gofpdf nuevo por petición.
type GofpdfFactory struct {
	title   string
	author  string
	encoder *textenc.Sanitizer
}

// NewGofpdfFactory construye la fábrica. author aparece en los metadatos del PDF.
func NewGofpdfFactory(author string) *GofpdfFactory {
	return &GofpdfFactory{title: "Invoice", author: author, encoder: textenc.Windows1252()}
}

// NewDocument implementa ports.DocumentFactory.
func (f *GofpdfFactory) NewDocument() ports.Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(f.title, true)
	if f.author != "" {
		pdf.SetAuthor(f.author, true)
		pdf.SetCreator(f.author, true)
	}
	return &GofpdfDocument{pdf: pdf, encoder: f.encoder}
}

// GofpdfDocument adaptador de ports.Document sobre *gofpdf.Fpdf.
type GofpdfDocument struct {
	pdf     *gofpdf.Fpdf
	encoder *textenc.Sanitizer
}

func (d *GofpdfDocument) SetFont(family, style string, size float64) {
	d.pdf.SetFont(family, style, size)
}

func (d *GofpdfDocument) SetFillColor(r, g, b int) { d.pdf.SetFillColor(r, g, b) }

func (d *GofpdfDocument) SetXY(x, y float64)        { d.pdf.SetXY(x, y) }
func (d *GofpdfDocument) SetX(x float64)            { d.pdf.SetX(x) }
func (d *GofpdfDocument) SetY(y float64)            { d.pdf.SetY(y) }
func (d *GofpdfDocument) GetXY() (float64, float64) { return d.pdf.GetXY() }
func (d *GofpdfDocument) Ln(h float64)              { d.pdf.Ln(h) }

// Cell dibuja el texto convertido a Windows-1252.
func (d *GofpdfDocument) Cell(w, h float64, text, border string, ln int, align string, fill bool) {
	d.pdf.CellFormat(w, h, d.encoder.Encode(text), border, ln, align, fill, 0, "")
}

func (d *GofpdfDocument) Rect(x, y, w, h float64, style string) { d.pdf.Rect(x, y, w, h, style) }

func (d *GofpdfDocument) Line(x1, y1, x2, y2 float64) { d.pdf.Line(x1, y1, x2, y2) }

// MeasureText mide sobre los mismos bytes que luego dibuja Cell.
func (d *GofpdfDocument) MeasureText(text string) float64 {
	return d.pdf.GetStringWidth(d.encoder.Encode(text))
}

// EmbedImage incrusta un PNG/JPEG. gofpdf deja el documento en estado de error
// si la imagen falla; aquí se detecta el formato antes y, si aun así falla, se
// limpia el error para que el resto de la factura se genere.
func (d *GofpdfDocument) EmbedImage(path string, x, y, w float64) bool {
	if d.pdf.Err() {
		return false
	}
	imageType, err := detectImageType(path)
	if err != nil {
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	if info := d.pdf.RegisterImageOptions(path, opts); info == nil || d.pdf.Err() {
		d.pdf.ClearError()
		return false
	}
	d.pdf.ImageOptions(path, x, y, w, 0, false, opts, 0, "")
	if d.pdf.Err() {
		d.pdf.ClearError()
		return false
	}
	return true
}

func (d *GofpdfDocument) SetHeaderFunc(fn func()) { d.pdf.SetHeaderFunc(fn) }
func (d *GofpdfDocument) SetFooterFunc(fn func()) { d.pdf.SetFooterFunc(fn) }
func (d *GofpdfDocument) AddPage()                { d.pdf.AddPage() }
func (d *GofpdfDocument) PageNo() int             { return d.pdf.PageNo() }

// Output cierra el documento y escribe el PDF.
func (d *GofpdfDocument) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	return nil
}

// detectImageType lee solo la cabecera de la imagen y devuelve el tipo de gofpdf.
func detectImageType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf: abrir imagen: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("pdf: leer imagen: %w", err)
	}
	switch format {
	case "png":
		return "PNG", nil
	case "jpeg":
		return "JPG", nil
	default:
		return "", fmt.Errorf("pdf: formato de imagen no soportado: %s", format)
	}
}
