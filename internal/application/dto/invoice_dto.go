package dto

import "github.com/shopspring/decimal"

// RenderInvoiceRequest datos del formulario para POST /api/invoices/pdf.
// Logo viaja en base64 en JSON; en el formulario HTML llega como archivo.
type RenderInvoiceRequest struct {
	ClientName    string            `json:"client_name"`
	ClientAddress string            `json:"client_address"`
	InvoiceNumber string            `json:"invoice_number,omitempty"` // vacío = siguiente número
	InvoiceDate   string            `json:"invoice_date,omitempty"`   // YYYY-MM-DD; vacío = hoy
	TaxRate       decimal.Decimal   `json:"tax_rate"`                 // porcentaje
	Items         []LineItemRequest `json:"items"`
	Logo          []byte            `json:"logo,omitempty"` // PNG o JPEG
}

// LineItemRequest una fila de la tabla de líneas.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// IssuedInvoiceResponse entrada del historial de facturas generadas.
type IssuedInvoiceResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"invoice_number"`
	ClientName  string          `json:"client_name"`
	InvoiceDate string          `json:"invoice_date"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	CreatedAt   string          `json:"created_at"`
}

// NextNumberResponse respuesta de GET /api/invoices/next-number.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}
