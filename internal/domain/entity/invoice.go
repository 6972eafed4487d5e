package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInvoiceNumber se usa cuando el formulario no trae número y no hay historial.
const DefaultInvoiceNumber = "1001"

// InvoiceHeader datos escalares de la factura tomados del formulario.
type InvoiceHeader struct {
	ClientName    string
	ClientAddress string
	Number        string
	Date          time.Time
	TaxRate       decimal.Decimal // porcentaje, ej. 7 = 7%
}

// Invoice cabecera + líneas listas para dibujar. No se persiste.
type Invoice struct {
	Header InvoiceHeader
	Items  []LineItem
}

// BillableItems devuelve las líneas con descripción (las vacías no se facturan).
func (inv *Invoice) BillableItems() []LineItem {
	out := make([]LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		if it.IsBlank() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FileName nombre de descarga: Invoice_{numero}_{cliente}.pdf
// Los separadores de ruta se cambian por "-" para que el nombre no se recorte.
func (inv *Invoice) FileName() string {
	name := "Invoice_" + inv.Header.Number + "_" + strings.TrimSpace(inv.Header.ClientName) + ".pdf"
	return pathSeparators.Replace(name)
}

var pathSeparators = strings.NewReplacer("/", "-", "\\", "-")
