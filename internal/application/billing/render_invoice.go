package billing

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicer/internal/application/dto"
	"github.com/jhoicas/invoicer/internal/application/ports"
	"github.com/jhoicas/invoicer/internal/domain"
	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/jhoicas/invoicer/internal/domain/invoice"
	"github.com/jhoicas/invoicer/internal/domain/repository"
	"github.com/jhoicas/invoicer/pkg/logger"
)

// dateInputLayout formato de la fecha en el formulario (<input type="date">).
const dateInputLayout = "2006-01-02"

// RenderedInvoice PDF listo para descargar.
type RenderedInvoice struct {
	PDF       []byte
	FileName  string
	Number    string
	Totals    invoice.Totals
	Rows      int
	LogoDrawn bool
}

// RenderInvoiceUseCase convierte los datos del formulario en un PDF. Cada
// petición usa un documento nuevo; no hay estado de dibujo compartido.
type RenderInvoiceUseCase struct {
	assembler     *Assembler
	documents     ports.DocumentFactory
	logos         LogoStore
	issued        repository.IssuedInvoiceRepository // nil = sin historial
	log           *logger.Logger
	defaultNumber string
	now           func() time.Time
}

// NewRenderInvoiceUseCase construye el caso de uso inyectando todas sus dependencias.
func NewRenderInvoiceUseCase(
	assembler *Assembler,
	documents ports.DocumentFactory,
	logos LogoStore,
	issued repository.IssuedInvoiceRepository,
	log *logger.Logger,
	defaultNumber string,
) *RenderInvoiceUseCase {
	if defaultNumber == "" {
		defaultNumber = entity.DefaultInvoiceNumber
	}
	return &RenderInvoiceUseCase{
		assembler:     assembler,
		documents:     documents,
		logos:         logos,
		issued:        issued,
		log:           log,
		defaultNumber: defaultNumber,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj usado para la fecha por defecto.
func (uc *RenderInvoiceUseCase) WithClock(now func() time.Time) *RenderInvoiceUseCase {
	uc.now = now
	return uc
}

// RenderInvoice valida, completa valores por defecto, calcula totales y dibuja la factura.
//
// Retorna:
//   - domain.ErrClientNameRequired si falta el cliente.
//   - domain.ErrInvalidInput       si hay cantidades, precios, tasa o fecha inválidos.
//   - domain.ErrRenderFailed       si el lienzo no pudo escribir el PDF.
func (uc *RenderInvoiceUseCase) RenderInvoice(ctx context.Context, req dto.RenderInvoiceRequest) (*RenderedInvoice, error) {
	// ── 1. Cabecera y valores por defecto ─────────────────────────────────────
	header, err := uc.buildHeader(ctx, req)
	if err != nil {
		return nil, err
	}
	inv := &entity.Invoice{Header: header, Items: make([]entity.LineItem, 0, len(req.Items))}
	for _, it := range req.Items {
		inv.Items = append(inv.Items, entity.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
		})
	}

	// ── 2. Validar y calcular totales ─────────────────────────────────────────
	if err := invoice.Validate(inv); err != nil {
		return nil, err
	}
	totals := invoice.ComputeTotals(inv.Items, inv.Header.TaxRate)

	// ── 3. Logo: temporal por petición, o el del repositorio ──────────────────
	logoPath, release := uc.resolveLogo(req.Logo)
	defer func() {
		if release == nil {
			return
		}
		if err := release(); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo borrar el logo temporal")
		}
	}()

	// ── 4. Dibujar sobre un documento nuevo ───────────────────────────────────
	doc := uc.documents.NewDocument()
	res := uc.assembler.Assemble(doc, AssembleInput{Invoice: inv, Totals: totals, LogoPath: logoPath})
	if logoPath != "" && !res.LogoDrawn {
		uc.log.Debug().Str("logo", logoPath).Msg("logo ilegible, se omite")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	// ── 5. Historial (best effort) ────────────────────────────────────────────
	uc.record(ctx, inv, totals, res.Rows)

	uc.log.Info().
		Str("invoice_number", inv.Header.Number).
		Int("rows", res.Rows).
		Str("grand_total", totals.GrandTotal.StringFixed(2)).
		Bool("logo", res.LogoDrawn).
		Msg("factura generada")

	return &RenderedInvoice{
		PDF:       buf.Bytes(),
		FileName:  inv.FileName(),
		Number:    inv.Header.Number,
		Totals:    totals,
		Rows:      res.Rows,
		LogoDrawn: res.LogoDrawn,
	}, nil
}

// NextInvoiceNumber siguiente número según el historial; sin historial, el número por defecto.
func (uc *RenderInvoiceUseCase) NextInvoiceNumber(ctx context.Context) string {
	if uc.issued == nil {
		return uc.defaultNumber
	}
	last, err := uc.issued.LastNumber(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("historial no disponible, se usa el número por defecto")
		return uc.defaultNumber
	}
	return invoice.NextNumber(last, uc.defaultNumber)
}

// Today fecha por defecto del formulario.
func (uc *RenderInvoiceUseCase) Today() time.Time {
	return uc.now()
}

// ListIssued historial de facturas generadas, las más recientes primero.
func (uc *RenderInvoiceUseCase) ListIssued(ctx context.Context, page dto.PageRequest) ([]dto.IssuedInvoiceResponse, error) {
	page.DefaultPage()
	out := make([]dto.IssuedInvoiceResponse, 0)
	if uc.issued == nil {
		return out, nil
	}
	list, err := uc.issued.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("historial: listar: %w", err)
	}
	for _, inv := range list {
		out = append(out, dto.IssuedInvoiceResponse{
			ID:          inv.ID,
			Number:      inv.Number,
			ClientName:  inv.ClientName,
			InvoiceDate: inv.InvoiceDate.Format(dateInputLayout),
			ItemCount:   inv.ItemCount,
			Subtotal:    inv.Subtotal,
			Tax:         inv.Tax,
			GrandTotal:  inv.GrandTotal,
			CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (uc *RenderInvoiceUseCase) buildHeader(ctx context.Context, req dto.RenderInvoiceRequest) (entity.InvoiceHeader, error) {
	h := entity.InvoiceHeader{
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientAddress: strings.TrimSpace(req.ClientAddress),
		Number:        strings.TrimSpace(req.InvoiceNumber),
		TaxRate:       req.TaxRate,
	}
	if h.Number == "" {
		h.Number = uc.NextInvoiceNumber(ctx)
	}

	dateStr := strings.TrimSpace(req.InvoiceDate)
	if dateStr == "" {
		now := uc.now()
		h.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return h, nil
	}
	date, err := time.Parse(dateInputLayout, dateStr)
	if err != nil {
		return h, fmt.Errorf("%w: invoice date %q, expected YYYY-MM-DD", domain.ErrInvalidInput, dateStr)
	}
	h.Date = date
	return h, nil
}

// resolveLogo devuelve la ruta a dibujar y, si se creó un temporal, su release.
// Un logo subido que no sea PNG/JPEG se omite sin usar el del repositorio.
func (uc *RenderInvoiceUseCase) resolveLogo(upload []byte) (string, func() error) {
	if len(upload) == 0 {
		if path, ok := uc.logos.DefaultLogo(); ok {
			return path, nil
		}
		return "", nil
	}

	var ext string
	switch http.DetectContentType(upload) {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	default:
		uc.log.Debug().Int("bytes", len(upload)).Msg("logo subido no es PNG/JPEG, se omite")
		return "", nil
	}

	path, release, err := uc.logos.Acquire(upload, ext)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo guardar el logo subido")
		return "", nil
	}
	return path, release
}

func (uc *RenderInvoiceUseCase) record(ctx context.Context, inv *entity.Invoice, totals invoice.Totals, rows int) {
	if uc.issued == nil {
		return
	}
	entry := &entity.IssuedInvoice{
		ID:          uuid.New().String(),
		Number:      inv.Header.Number,
		ClientName:  inv.Header.ClientName,
		InvoiceDate: inv.Header.Date,
		ItemCount:   rows,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		GrandTotal:  totals.GrandTotal,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.issued.Record(ctx, entry); err != nil {
		uc.log.Warn().Err(err).Str("invoice_number", entry.Number).Msg("no se pudo registrar la factura en el historial")
	}
}
