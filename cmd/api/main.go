package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/invoicer/internal/application/billing"
	"github.com/jhoicas/invoicer/internal/domain/entity"
	"github.com/jhoicas/invoicer/internal/domain/layout"
	"github.com/jhoicas/invoicer/internal/domain/repository"
	"github.com/jhoicas/invoicer/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/invoicer/internal/infrastructure/pdf"
	"github.com/jhoicas/invoicer/internal/infrastructure/postgres"
	"github.com/jhoicas/invoicer/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/invoicer/internal/interfaces/http"
	"github.com/jhoicas/invoicer/pkg/config"
	"github.com/jhoicas/invoicer/pkg/logger"
	"github.com/jhoicas/invoicer/pkg/textenc"
	"github.com/jhoicas/invoicer/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Historial: PostgreSQL si está configurado, si no en memoria
	ctx := context.Background()
	var issuedRepo repository.IssuedInvoiceRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		issuedRepo = postgres.NewIssuedInvoiceRepository(pool)
	} else {
		log.Warn().Msg("sin base de datos: el historial de facturas vive en memoria")
		issuedRepo = memory.NewIssuedInvoiceRepository()
	}

	company := entity.CompanyProfile{
		Name:      cfg.Company.Name,
		Address:   cfg.Company.Address,
		City:      cfg.Company.City,
		PayableTo: cfg.Company.PayableTo,
	}
	assembler := billing.NewAssembler(company, layout.DefaultTable(), textenc.Windows1252())
	renderUC := billing.NewRenderInvoiceUseCase(
		assembler,
		infrapdf.NewGofpdfFactory(company.Name),
		storage.NewTempLogoStore("", cfg.Invoice.LogoPath),
		issuedRepo,
		log,
		cfg.Invoice.DefaultNumber,
	)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// El logo llega en el cuerpo (multipart o base64); margen para el resto del formulario.
		BodyLimit: cfg.Invoice.MaxLogoBytes*2 + 1<<20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoicer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		RenderInvoice: renderUC,
		Templates:     tmpl,
		AppName:       cfg.App.Name,
		MaxLogoBytes:  cfg.Invoice.MaxLogoBytes,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
