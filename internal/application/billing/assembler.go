package billing

import (
	"strconv"
	"strings"

	"github.com/jhoicas/invoicer/internal/application/ports"
	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/jhoicas/invoicer/internal/domain/invoice"
	"github.com/jhoicas/invoicer/internal/domain/layout"
	"github.com/jhoicas/invoicer/pkg/money"
	"github.com/jhoicas/invoicer/pkg/textenc"
)

// Geometría fija de la página A4 (mm).
const (
	fontFamily = "Helvetica"

	pageLeft       = 10.0
	printableWidth = 190.0
	companyOffsetX = 50.0 // bloque de la empresa, a la derecha del logo
	separatorY     = 45.0

	logoX     = 10.0
	logoY     = 8.0
	logoWidth = 33.0

	labelWidth  = 160.0 // etiquetas de totales
	amountWidth = 30.0

	paymentIndent      = 15.0
	paymentPanelHeight = 15.0

	shade = 240

	dateLayout = "January 02, 2006"
)

// AssembleInput factura ya validada, con valores por defecto aplicados.
type AssembleInput struct {
	Invoice  *entity.Invoice
	Totals   invoice.Totals
	LogoPath string // vacío = sin logo
}

// AssembleResult lo que efectivamente se dibujó.
type AssembleResult struct {
	Rows      int
	LogoDrawn bool
}

// Assembler dibuja la factura en orden fijo: cabecera, datos del cliente,
// tabla, totales e instrucciones de pago. Cada texto pasa por el Sanitizer
// antes de llegar al lienzo, así el documento siempre se completa.
type Assembler struct {
	company   entity.CompanyProfile
	table     layout.Table
	sanitizer *textenc.Sanitizer
}

// NewAssembler construye el ensamblador con los datos de la empresa emisora.
func NewAssembler(company entity.CompanyProfile, table layout.Table, sanitizer *textenc.Sanitizer) *Assembler {
	return &Assembler{company: company, table: table, sanitizer: sanitizer}
}

// Assemble dibuja la factura completa sobre doc. No falla: los errores de
// codificación se sustituyen y un logo ilegible simplemente no se dibuja.
func (a *Assembler) Assemble(doc ports.Document, in AssembleInput) AssembleResult {
	var res AssembleResult
	headerDrawn := false

	doc.SetHeaderFunc(func() {
		logo := a.drawHeader(doc, in.LogoPath)
		if !headerDrawn {
			res.LogoDrawn = logo
			headerDrawn = true
		}
	})
	doc.SetFooterFunc(func() { a.drawFooter(doc) })
	doc.AddPage()

	a.drawClientBlock(doc, in.Invoice.Header)
	a.drawTableHeader(doc)
	res.Rows = a.drawRows(doc, in.Invoice.BillableItems())
	a.drawTotals(doc, in.Invoice.Header, in.Totals)
	a.drawPaymentPanel(doc)
	return res
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// drawHeader: logo (si hay), título y datos de la empresa en companyOffsetX.
// El bloque de la empresa reserva el espacio del logo aunque no se dibuje.
func (a *Assembler) drawHeader(c ports.Canvas, logoPath string) bool {
	drawn := false
	if logoPath != "" {
		drawn = c.EmbedImage(logoPath, logoX, logoY, logoWidth)
	}

	c.SetXY(companyOffsetX, 10)
	c.SetFont(fontFamily, "B", 16)
	a.cell(c, 0, 10, "INVOICE", "", 1, "R", false)

	c.SetX(companyOffsetX)
	c.SetFont(fontFamily, "B", 12)
	a.cell(c, 0, 5, a.company.Name, "", 1, "L", false)

	c.SetX(companyOffsetX)
	c.SetFont(fontFamily, "", 10)
	a.cell(c, 0, 5, a.company.Address, "", 1, "L", false)

	c.SetX(companyOffsetX)
	a.cell(c, 0, 5, a.company.City, "", 1, "L", false)

	c.Ln(20)
	return drawn
}

func (a *Assembler) drawFooter(doc ports.Document) {
	doc.SetY(-15)
	doc.SetFont(fontFamily, "I", 8)
	a.cell(doc, 0, 10, "Page "+strconv.Itoa(doc.PageNo()), "", 0, "C", false)
}

// drawClientBlock: separador, cliente a la izquierda y metadatos a la derecha.
func (a *Assembler) drawClientBlock(c ports.Canvas, h entity.InvoiceHeader) {
	c.SetFont(fontFamily, "", 11)
	c.Line(pageLeft, separatorY, pageLeft+printableWidth, separatorY)
	c.Ln(10)

	a.cell(c, 100, 5, "Bill To: "+h.ClientName, "", 0, "", false)
	a.cell(c, 90, 5, "Date: "+h.Date.Format(dateLayout), "", 1, "R", false)

	a.cell(c, 100, 5, "Address: "+singleLine(h.ClientAddress), "", 0, "", false)
	a.cell(c, 90, 5, "Invoice #: "+h.Number, "", 1, "R", false)
	c.Ln(15)
}

// drawTableHeader: fila de títulos con fondo gris claro.
func (a *Assembler) drawTableHeader(c ports.Canvas) {
	c.SetFont(fontFamily, "B", 10)
	c.SetFillColor(shade, shade, shade)
	cols := a.table.Columns()
	for i, col := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		a.cell(c, col.Width, 8, col.Title, "1", ln, string(col.Align), true)
	}
}

// drawRows: una fila por línea facturable; el cursor avanza lo que mida cada fila.
func (a *Assembler) drawRows(c ports.Canvas, items []entity.LineItem) int {
	c.SetFont(fontFamily, "", 10)
	measure := func(s string) float64 { return c.MeasureText(a.sanitizer.Sanitize(s)) }

	x, y := c.GetXY()
	rows := 0
	for _, it := range items {
		row := a.table.LayoutRow(x, y, layout.Cells{
			Description: a.sanitizer.Sanitize(it.Description),
			Quantity:    it.Quantity.String(),
			UnitPrice:   money.Format(it.UnitPrice),
			Total:       money.Format(it.LineTotal()),
		}, measure)
		a.apply(c, row)

		x, y = row.Next.X, row.Next.Y
		c.SetXY(x, y)
		rows++
	}
	return rows
}

func (a *Assembler) apply(c ports.Canvas, row layout.RenderedRow) {
	for _, cmd := range row.Commands {
		switch cmd.Kind {
		case layout.CommandBorder:
			c.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "D")
		case layout.CommandText:
			c.SetXY(cmd.X, cmd.Y)
			a.cell(c, cmd.W, cmd.H, cmd.Text, "", 0, string(cmd.Align), false)
		}
	}
}

func (a *Assembler) drawTotals(c ports.Canvas, h entity.InvoiceHeader, t invoice.Totals) {
	c.Ln(5)
	c.SetFont(fontFamily, "", 10)
	a.cell(c, labelWidth, 6, "Subtotal:", "", 0, "R", false)
	a.cell(c, amountWidth, 6, money.Format(t.Subtotal), "", 1, "R", false)

	a.cell(c, labelWidth, 6, "Tax ("+money.Percent(h.TaxRate)+"):", "", 0, "R", false)
	a.cell(c, amountWidth, 6, money.Format(t.Tax), "", 1, "R", false)

	c.SetFont(fontFamily, "B", 12)
	a.cell(c, labelWidth, 8, "TOTAL DUE:", "", 0, "R", false)
	a.cell(c, amountWidth, 8, money.Format(t.GrandTotal), "", 1, "R", false)
}

func (a *Assembler) drawPaymentPanel(c ports.Canvas) {
	c.Ln(15)
	c.SetFillColor(shade, shade, shade)
	_, y := c.GetXY()
	c.Rect(pageLeft, y, printableWidth, paymentPanelHeight, "F")

	c.SetXY(paymentIndent, y+5)
	c.SetFont(fontFamily, "B", 10)
	a.cell(c, 0, 5, "Payment Instructions:", "", 1, "", false)

	c.SetX(paymentIndent)
	c.SetFont(fontFamily, "", 10)
	a.cell(c, 0, 5, "Make checks payable to: "+a.company.Payee(), "", 1, "", false)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// cell es el único camino de texto hacia el lienzo.
func (a *Assembler) cell(c ports.Canvas, w, h float64, text any, border string, ln int, align string, fill bool) {
	c.Cell(w, h, a.sanitizer.Sanitize(text), border, ln, align, fill)
}

// singleLine junta una dirección de varias líneas: "123 Palm Tree Ln\nLakeland" → "123 Palm Tree Ln, Lakeland".
func singleLine(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
