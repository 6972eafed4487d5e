package repository

import (
	"context"

	"github.com/jhoicas/invoicer/internal/domain/entity"
)

// IssuedInvoiceRepository define el puerto de persistencia del historial de facturas generadas.
// Solo guarda cabecera y totales; las líneas nunca se persisten.
type IssuedInvoiceRepository interface {
	Record(ctx context.Context, inv *entity.IssuedInvoice) error
	// List devuelve las más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.IssuedInvoice, error)
	// LastNumber número de la última factura registrada ("" si no hay ninguna).
	LastNumber(ctx context.Context) (string, error)
}
