package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/infrastructure/csvexport"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConfiguratorUC *usecase.ConfiguratorUseCase
	CatalogUC      *usecase.CatalogUseCase
	ExportUC       *usecase.ExportUseCase
	CSV            *csvexport.Writer
	JWTSecret      string
	JWTIssuer      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesiones del asistente (público)
	sessions := api.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.ConfiguratorUC)
	sessions.Post("/", sessionHandler.Start)
	sessions.Get("/:id", sessionHandler.Get)
	sessions.Delete("/:id", sessionHandler.Close)
	sessions.Post("/:id/category", sessionHandler.SelectCategory)
	sessions.Post("/:id/type", sessionHandler.SelectType)
	sessions.Post("/:id/filters/confirm", sessionHandler.ConfirmFilters)
	sessions.Post("/:id/filters/:filterId/toggle", sessionHandler.ToggleFilter)
	sessions.Post("/:id/model", sessionHandler.SelectModel)
	sessions.Put("/:id/specifications/:name", sessionHandler.SetSpecification)
	sessions.Post("/:id/finalize", sessionHandler.Finalize)
	sessions.Post("/:id/back", sessionHandler.Back)
	sessions.Post("/:id/reset", sessionHandler.Reset)
	sessions.Post("/:id/refresh", sessionHandler.Refresh)
	sessions.Get("/:id/datasheet", sessionHandler.Datasheet)

	// Catálogo (público, solo lectura)
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ExportUC, deps.CSV)
	catalog.Get("/candidates", catalogHandler.Candidates)
	catalog.Get("/export", catalogHandler.Export)

	// Administración (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(RoleAdmin))
	adminHandler := NewAdminHandler(deps.CatalogUC)
	admin.Post("/filters", adminHandler.CreateFilter)
	admin.Delete("/filters/:id", adminHandler.DeleteFilter)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Get("/products/:id", adminHandler.GetProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
}
