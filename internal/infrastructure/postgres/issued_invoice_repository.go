package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/jhoicas/invoicer/internal/domain/repository"
)

var _ repository.IssuedInvoiceRepository = (*IssuedInvoiceRepo)(nil)

// IssuedInvoiceRepo implementación de IssuedInvoiceRepository (usable con pool o tx).
type IssuedInvoiceRepo struct {
	q Querier
}

// NewIssuedInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssuedInvoiceRepository(q Querier) *IssuedInvoiceRepo {
	return &IssuedInvoiceRepo{q: q}
}

// Record inserta la cabecera y totales de una factura generada.
func (r *IssuedInvoiceRepo) Record(ctx context.Context, inv *entity.IssuedInvoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO issued_invoices (id, number, client_name, invoice_date, item_count, subtotal, tax, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Number, inv.ClientName, inv.InvoiceDate, inv.ItemCount,
		inv.Subtotal, inv.Tax, inv.GrandTotal, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert issued invoice: %w", err)
	}
	return nil
}

// List devuelve las facturas más recientes primero.
func (r *IssuedInvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.IssuedInvoice, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT id, number, client_name, invoice_date, item_count, subtotal, tax, grand_total, created_at
		FROM issued_invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list issued invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.IssuedInvoice
	for rows.Next() {
		var inv entity.IssuedInvoice
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.ClientName, &inv.InvoiceDate, &inv.ItemCount,
			&inv.Subtotal, &inv.Tax, &inv.GrandTotal, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan issued invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// LastNumber número de la última factura registrada; "" si la tabla está vacía.
func (r *IssuedInvoiceRepo) LastNumber(ctx context.Context) (string, error) {
	query := `SELECT number FROM issued_invoices ORDER BY created_at DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("last issued number: %w", err)
	}
	return number, nil
}
