package billing_test

import (
	"io"
	"unicode/utf8"

	"github.com/jhoicas/invoicer/internal/application/ports"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeDocument: lienzo en memoria que emula el cursor de FPDF (A4, márgenes 10)
// y registra cada primitiva para que los tests inspeccionen el dibujo.
// ──────────────────────────────────────────────────────────────────────────────

const (
	fakePageW  = 210.0
	fakePageH  = 297.0
	fakeMargin = 10.0
)

type op struct {
	Name   string // cell, rect, line, image
	X, Y   float64
	W, H   float64
	Text   string
	Border string
	Align  string
	Style  string
	Fill   bool
	Page   int
}

type fakeDocument struct {
	ops    []op
	x, y   float64
	page   int
	header func()
	footer func()

	imageOK    bool
	imageCalls []string
	outputErr  error
	closed     bool
}

var _ ports.Document = (*fakeDocument)(nil)

type fakeFactory struct {
	docs    []*fakeDocument
	imageOK bool
	outErr  error
}

func (f *fakeFactory) NewDocument() ports.Document {
	d := &fakeDocument{imageOK: f.imageOK, outputErr: f.outErr}
	f.docs = append(f.docs, d)
	return d
}

func (d *fakeDocument) SetFont(string, string, float64) {}
func (d *fakeDocument) SetFillColor(int, int, int)      {}

func (d *fakeDocument) SetXY(x, y float64) { d.x, d.y = x, y }
func (d *fakeDocument) SetX(x float64)     { d.x = x }
func (d *fakeDocument) SetY(y float64) {
	if y < 0 {
		y = fakePageH + y
	}
	d.x, d.y = fakeMargin, y
}
func (d *fakeDocument) GetXY() (float64, float64) { return d.x, d.y }
func (d *fakeDocument) Ln(h float64) {
	d.x = fakeMargin
	d.y += h
}

func (d *fakeDocument) Cell(w, h float64, text, border string, ln int, align string, fill bool) {
	if w == 0 {
		w = fakePageW - fakeMargin - d.x
	}
	d.ops = append(d.ops, op{Name: "cell", X: d.x, Y: d.y, W: w, H: h, Text: text, Border: border, Align: align, Fill: fill, Page: d.page})
	if ln == 1 {
		d.x = fakeMargin
		d.y += h
		return
	}
	d.x += w
}

func (d *fakeDocument) Rect(x, y, w, h float64, style string) {
	d.ops = append(d.ops, op{Name: "rect", X: x, Y: y, W: w, H: h, Style: style, Page: d.page})
}

func (d *fakeDocument) Line(x1, y1, x2, y2 float64) {
	d.ops = append(d.ops, op{Name: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Page: d.page})
}

func (d *fakeDocument) MeasureText(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * 2
}

func (d *fakeDocument) EmbedImage(path string, x, y, w float64) bool {
	d.imageCalls = append(d.imageCalls, path)
	if d.imageOK {
		d.ops = append(d.ops, op{Name: "image", X: x, Y: y, W: w, Text: path, Page: d.page})
	}
	return d.imageOK
}

func (d *fakeDocument) SetHeaderFunc(fn func()) { d.header = fn }
func (d *fakeDocument) SetFooterFunc(fn func()) { d.footer = fn }

func (d *fakeDocument) AddPage() {
	if d.page > 0 && d.footer != nil {
		d.footer()
	}
	d.page++
	d.x, d.y = fakeMargin, fakeMargin
	if d.header != nil {
		d.header()
	}
}

func (d *fakeDocument) PageNo() int { return d.page }

func (d *fakeDocument) Output(w io.Writer) error {
	if !d.closed && d.footer != nil {
		d.footer()
	}
	d.closed = true
	if d.outputErr != nil {
		return d.outputErr
	}
	_, err := io.WriteString(w, "%PDF-1.3 fake")
	return err
}

// ── consultas ─────────────────────────────────────────────────────────────────

func (d *fakeDocument) cells() []op { return d.byName("cell") }

func (d *fakeDocument) rects(style string) []op {
	var out []op
	for _, o := range d.byName("rect") {
		if o.Style == style {
			out = append(out, o)
		}
	}
	return out
}

func (d *fakeDocument) byName(name string) []op {
	var out []op
	for _, o := range d.ops {
		if o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

func (d *fakeDocument) cellTexts() []string {
	var out []string
	for _, c := range d.cells() {
		out = append(out, c.Text)
	}
	return out
}

func (d *fakeDocument) findCell(text string) (op, bool) {
	for _, c := range d.cells() {
		if c.Text == text {
			return c, true
		}
	}
	return op{}, false
}
