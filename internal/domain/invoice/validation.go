package invoice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/invoicer/internal/domain"
	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Validate revisa la factura antes de dibujarla. Devuelve todos los problemas
// encontrados unidos con errors.Join; errors.Is funciona con los sentinelas de domain.
// Las líneas vacías no se validan porque no se facturan.
func Validate(inv *entity.Invoice) error {
	if inv == nil {
		return fmt.Errorf("%w: missing invoice", domain.ErrInvalidInput)
	}
	var errs []error

	if strings.TrimSpace(inv.Header.ClientName) == "" {
		errs = append(errs, domain.ErrClientNameRequired)
	}
	if inv.Header.TaxRate.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: tax rate cannot be negative (%s)",
			domain.ErrInvalidInput, inv.Header.TaxRate.String()))
	}
	for i, it := range inv.Items {
		if it.IsBlank() {
			continue
		}
		if it.Quantity.LessThan(decimal.Zero) {
			errs = append(errs, fmt.Errorf("%w: row %d: negative quantity (%s)",
				domain.ErrInvalidInput, i+1, it.Quantity.String()))
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			errs = append(errs, fmt.Errorf("%w: row %d: negative price (%s)",
				domain.ErrInvalidInput, i+1, it.UnitPrice.String()))
		}
	}
	return errors.Join(errs...)
}
