package http

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicer/internal/application/billing"
	"github.com/jhoicas/invoicer/internal/application/dto"
	"github.com/jhoicas/invoicer/internal/domain"
)

const formTemplate = "invoice_form.html"

// Filas de ejemplo del formulario vacío.
var sampleRows = []formRow{
	{Description: "Mulch Installation", Quantity: "0", Price: "0.00"},
	{Description: "Premium Mulch Materials", Quantity: "0", Price: "0.00"},
	{Description: "Delivery Fee", Quantity: "1", Price: "0.00"},
}

// formView datos que pinta la plantilla; se reutiliza al volver a mostrar el formulario con errores.
type formView struct {
	Title         string
	Error         string
	ClientName    string
	ClientAddress string
	InvoiceNumber string
	InvoiceDate   string
	TaxRate       string
	Items         []formRow
	MaxLogoMB     int
}

type formRow struct {
	Description string
	Quantity    string
	Price       string
}

// FormHandler formulario HTML: GET / lo muestra, POST /invoice devuelve el PDF.
type FormHandler struct {
	uc           *billing.RenderInvoiceUseCase
	tmpl         *template.Template
	title        string
	maxLogoBytes int
}

// NewFormHandler construye el handler.
func NewFormHandler(uc *billing.RenderInvoiceUseCase, tmpl *template.Template, title string, maxLogoBytes int) *FormHandler {
	return &FormHandler{uc: uc, tmpl: tmpl, title: title, maxLogoBytes: maxLogoBytes}
}

// Show muestra el formulario con número siguiente, fecha de hoy y filas de ejemplo.
// GET /
func (h *FormHandler) Show(c *fiber.Ctx) error {
	view := formView{
		InvoiceNumber: h.uc.NextInvoiceNumber(c.UserContext()),
		InvoiceDate:   h.uc.Today().Format("2006-01-02"),
		TaxRate:       "0",
		Items:         append([]formRow(nil), sampleRows...),
	}
	return h.render(c, fiber.StatusOK, view)
}

// Submit valida el formulario y descarga el PDF. Los errores de validación
// vuelven a mostrar el formulario con HTTP 400 y los valores enviados.
// POST /invoice
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	view := formView{
		ClientName:    c.FormValue("client_name"),
		ClientAddress: c.FormValue("client_address"),
		InvoiceNumber: c.FormValue("invoice_number"),
		InvoiceDate:   c.FormValue("invoice_date"),
		TaxRate:       c.FormValue("tax_rate"),
		Items:         formRows(c),
	}

	req, err := h.parse(c, view)
	if err != nil {
		view.Error = formMessage(err)
		return h.render(c, fiber.StatusBadRequest, view)
	}

	out, err := h.uc.RenderInvoice(c.UserContext(), req)
	if err != nil {
		if isValidation(err) {
			view.Error = formMessage(err)
			return h.render(c, fiber.StatusBadRequest, view)
		}
		view.Error = "The invoice could not be generated, please try again."
		return h.render(c, fiber.StatusInternalServerError, view)
	}

	return sendPDF(c, out.FileName, out.PDF)
}

func (h *FormHandler) parse(c *fiber.Ctx, view formView) (dto.RenderInvoiceRequest, error) {
	req := dto.RenderInvoiceRequest{
		ClientName:    view.ClientName,
		ClientAddress: view.ClientAddress,
		InvoiceNumber: view.InvoiceNumber,
		InvoiceDate:   view.InvoiceDate,
	}

	var err error
	if req.TaxRate, err = parseAmount(view.TaxRate); err != nil {
		return req, fmt.Errorf("%w: tax rate is not a number", domain.ErrInvalidInput)
	}
	for i, row := range view.Items {
		// Las filas sin descripción no se facturan: sus números no se validan.
		if strings.TrimSpace(row.Description) == "" {
			continue
		}
		item := dto.LineItemRequest{Description: row.Description}
		if item.Quantity, err = parseAmount(row.Quantity); err != nil {
			return req, fmt.Errorf("%w: row %d: quantity %q is not a number", domain.ErrInvalidInput, i+1, row.Quantity)
		}
		if item.Price, err = parseAmount(row.Price); err != nil {
			return req, fmt.Errorf("%w: row %d: price %q is not a number", domain.ErrInvalidInput, i+1, row.Price)
		}
		req.Items = append(req.Items, item)
	}

	if req.Logo, err = h.readLogo(c); err != nil {
		return req, err
	}
	return req, nil
}

// readLogo lee el archivo "logo" si se subió; nil si no hay.
func (h *FormHandler) readLogo(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("logo")
	if err != nil || fh.Size == 0 {
		return nil, nil
	}
	if fh.Size > int64(h.maxLogoBytes) {
		return nil, fmt.Errorf("%w: logo is larger than %d MB", domain.ErrInvalidInput, h.maxLogoBytes>>20)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read the logo", domain.ErrInvalidInput)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, int64(h.maxLogoBytes)))
}

func (h *FormHandler) render(c *fiber.Ctx, status int, view formView) error {
	view.Title = h.title
	view.MaxLogoMB = h.maxLogoBytes >> 20
	if len(view.Items) == 0 {
		view.Items = []formRow{{}}
	}
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, formTemplate, view); err != nil {
		return fmt.Errorf("plantilla: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formRows junta item_description/item_qty/item_price por índice.
func formRows(c *fiber.Ctx) []formRow {
	desc := formValues(c, "item_description")
	qty := formValues(c, "item_qty")
	price := formValues(c, "item_price")

	n := max(len(desc), len(qty), len(price))
	rows := make([]formRow, n)
	for i := range rows {
		rows[i] = formRow{Description: at(desc, i), Quantity: at(qty, i), Price: at(price, i)}
	}
	return rows
}

// formValues valores repetidos de un campo, multipart o urlencoded.
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[key]
	}
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// parseAmount: vacío = 0; acepta "$1,234.50".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func formMessage(err error) string {
	if errors.Is(err, domain.ErrClientNameRequired) {
		return "Please enter a Client Name."
	}
	return err.Error()
}
