package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC      *ledger.UseCase
	MovementQuery *usecase.MovementQueryUseCase
	ItemTypeUC    *usecase.ItemTypeUseCase
	ImportUC      *usecase.ImportUseCase
	SupplierUC    *usecase.SupplierUseCase
	ReferenceUC   *usecase.ReferenceUseCase
	DashboardUC   *report.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movements (libro de movimientos)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.MovementQuery)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)
	movements.Post("/reconcile", movementHandler.Reconcile)
	movements.Delete("/:id", movementHandler.Delete)

	// Item types (catálogo)
	itemTypes := api.Group("/item-types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypeUC, deps.ImportUC)
	itemTypes.Post("/", itemTypeHandler.Create)
	itemTypes.Post("/bulk", itemTypeHandler.CreateMany)
	itemTypes.Post("/import", itemTypeHandler.Import)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Get("/low-stock", itemTypeHandler.LowStock)
	itemTypes.Get("/:id", itemTypeHandler.GetByID)
	itemTypes.Put("/:id", itemTypeHandler.Update)
	itemTypes.Delete("/:id", itemTypeHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Data de referencia
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	api.Get("/departments", referenceHandler.Departments)
	api.Get("/movement-types", referenceHandler.MovementTypes)

	// Dashboard (solo lectura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/purchased-value", dashboardHandler.PurchasedValue)
	dashboard.Get("/consumed-value", dashboardHandler.ConsumedValue)
	dashboard.Get("/purchased-units", dashboardHandler.PurchasedUnits)
	dashboard.Get("/consumed-units", dashboardHandler.ConsumedUnits)
	dashboard.Get("/purchases-this-month", dashboardHandler.PurchasedCount)
	dashboard.Get("/last-purchases", dashboardHandler.LastPurchases)
	dashboard.Get("/monthly-flow", dashboardHandler.MonthlyFlow)
}
