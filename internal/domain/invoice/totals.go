// Package invoice contiene las reglas de dominio de la factura: totales y validación.
package invoice

import (
	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals montos exactos de la factura. Se redondean solo al mostrarse.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals Subtotal = Σ cantidad × precio de las líneas no vacías;
// Tax = Subtotal × taxRate / 100; GrandTotal = Subtotal + Tax.
func ComputeTotals(items []entity.LineItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.IsBlank() {
			continue
		}
		subtotal = subtotal.Add(it.LineTotal())
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}
