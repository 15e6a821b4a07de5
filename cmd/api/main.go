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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/bootstrap"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/infrastructure/csvexport"
	infrapdf "github.com/jhoicas/configurador-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/configurador-api/internal/interfaces/http"
	"github.com/jhoicas/configurador-api/pkg/config"
	"github.com/jhoicas/configurador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	specs := catalog.Default()

	catalogUC, closeStore, err := bootstrap.CatalogUseCase(ctx, cfg, specs)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de catálogo")
	}
	defer closeStore()

	csvWriter, err := csvexport.NewWriter(cfg.Export.Encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación de exportación")
	}

	// PDF: hoja técnica del modelo configurado
	datasheets := infrapdf.NewDatasheetGenerator(cfg.App.Name)
	configuratorUC := usecase.NewConfiguratorUseCase(specs, catalogUC, datasheets, usecase.SessionConfig{
		TTL: cfg.Session.TTL(),
		Max: cfg.Session.Max,
	})
	exportUC := usecase.NewExportUseCase(specs, catalogUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Configurador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  cfg.App.Name,
			"sessions": configuratorUC.Active(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConfiguratorUC: configuratorUC,
		CatalogUC:      catalogUC,
		ExportUC:       exportUC,
		CSV:            csvWriter,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
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
