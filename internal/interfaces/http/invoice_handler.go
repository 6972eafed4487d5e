package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicer/internal/application/billing"
	"github.com/jhoicas/invoicer/internal/application/dto"
	"github.com/jhoicas/invoicer/pkg/logger"
)

// InvoiceHandler API JSON de facturas (protegida si hay JWT_SECRET).
type InvoiceHandler struct {
	uc           *billing.RenderInvoiceUseCase
	maxLogoBytes int
	log          *logger.Logger
}

// NewInvoiceHandler construye el handler. log nil = sin registro.
func NewInvoiceHandler(uc *billing.RenderInvoiceUseCase, maxLogoBytes int, log *logger.Logger) *InvoiceHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceHandler{uc: uc, maxLogoBytes: maxLogoBytes, log: log}
}

// RenderPDF genera la factura y la devuelve como descarga.
// POST /api/invoices/pdf
func (h *InvoiceHandler) RenderPDF(c *fiber.Ctx) error {
	var in dto.RenderInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Logo) > h.maxLogoBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("logo is larger than %d bytes", h.maxLogoBytes),
		})
	}
	out, err := h.uc.RenderInvoice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().
		Str("api_client", GetAPIClient(c)).
		Str("invoice_number", out.Number).
		Int("bytes", len(out.PDF)).
		Msg("factura emitida vía API")
	c.Set("X-Invoice-Number", out.Number)
	return sendPDF(c, out.FileName, out.PDF)
}

// List historial de facturas generadas.
// GET /api/invoices?limit=&offset=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid limit/offset"})
	}
	list, err := h.uc.ListIssued(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "invoice history unavailable"})
	}
	return c.JSON(list)
}

// NextNumber número sugerido para la próxima factura.
// GET /api/invoices/next-number
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	return c.JSON(dto.NextNumberResponse{InvoiceNumber: h.uc.NextInvoiceNumber(c.UserContext())})
}
