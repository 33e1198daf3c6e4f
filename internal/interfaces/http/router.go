package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/partsflow/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC *usecase.SupplierUseCase
	CategoryUC *usecase.CategoryUseCase
	PartUC     *usecase.PartUseCase
	MovementUC *usecase.MovementUseCase
	ReportUC   *usecase.ReportUseCase
	StatsUC    *usecase.StatsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Parts. Las rutas fijas van antes de /:id (fiber matchea en orden de registro).
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/low-stock", partHandler.LowStock)
	parts.Get("/number/:partNumber", partHandler.GetByPartNumber)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Post("/", partHandler.Create)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Movements (append-only: sin PUT ni DELETE)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/part/:partId", movementHandler.ListByPart)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", movementHandler.Create)

	// Stats
	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.Get)

	// Reports (append-only)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Post("/", reportHandler.Create)
}
