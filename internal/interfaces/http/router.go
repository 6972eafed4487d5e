package http

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicer/internal/application/billing"
	"github.com/jhoicas/invoicer/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RenderInvoice *billing.RenderInvoiceUseCase
	Templates     *template.Template
	AppName       string
	MaxLogoBytes  int
	JWTSecret     string // vacío = /api sin autenticación
	JWTIssuer     string
	Log           *logger.Logger
}

// Router registra el formulario HTML y la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Formulario (público)
	formHandler := NewFormHandler(deps.RenderInvoice, deps.Templates, deps.AppName, deps.MaxLogoBytes)
	app.Get("/", formHandler.Show)
	app.Post("/invoice", formHandler.Submit)

	// API JSON; protegida con Bearer Token si hay secreto configurado
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.RenderInvoice, deps.MaxLogoBytes, deps.Log)
	invoices.Post("/pdf", invoiceHandler.RenderPDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/next-number", invoiceHandler.NextNumber)
}
