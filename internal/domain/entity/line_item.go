package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem una fila facturable. Inmutable una vez entregada al motor de layout.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// LineTotal cantidad × precio unitario, sin redondeo.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// IsBlank true si la descripción está vacía o solo tiene espacios.
func (li LineItem) IsBlank() bool {
	return strings.TrimSpace(li.Description) == ""
}
