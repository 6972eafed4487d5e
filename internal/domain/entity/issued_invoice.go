package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssuedInvoice registro de una factura generada (solo cabecera y totales, nunca las líneas).
type IssuedInvoice struct {
	ID          string
	Number      string
	ClientName  string
	InvoiceDate time.Time
	ItemCount   int
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	GrandTotal  decimal.Decimal
	CreatedAt   time.Time
}
