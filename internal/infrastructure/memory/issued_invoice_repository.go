// Package memory guarda el historial de facturas en memoria cuando no hay
// base de datos configurada. Se pierde al reiniciar.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/jhoicas/invoicer/internal/domain/repository"
)

var _ repository.IssuedInvoiceRepository = (*IssuedInvoiceRepo)(nil)

// IssuedInvoiceRepo historial en memoria, seguro para uso concurrente.
type IssuedInvoiceRepo struct {
	mu    sync.RWMutex
	items []entity.IssuedInvoice // orden de inserción
}

// NewIssuedInvoiceRepository construye un historial vacío.
func NewIssuedInvoiceRepository() *IssuedInvoiceRepo {
	return &IssuedInvoiceRepo{}
}

func (r *IssuedInvoiceRepo) Record(_ context.Context, inv *entity.IssuedInvoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	r.items = append(r.items, *inv)
	r.mu.Unlock()
	return nil
}

// List devuelve copias, las más recientes primero.
func (r *IssuedInvoiceRepo) List(_ context.Context, limit, offset int) ([]*entity.IssuedInvoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.IssuedInvoice
	for i := len(r.items) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		inv := r.items[i]
		out = append(out, &inv)
	}
	return out, nil
}

func (r *IssuedInvoiceRepo) LastNumber(context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return "", nil
	}
	return r.items[len(r.items)-1].Number, nil
}
