package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	DocumentUC    *usecase.DocumentUseCase
	DeliveryNote  *usecase.DeliveryNoteUseCase
	ValidateUC    *inventory.ValidateDocumentUseCase
	AdjustUC      *inventory.AdjustStockUseCase
	MovementQuery *inventory.MovementQueryUseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las mutaciones de stock exigen rol de gestión; la consulta es libre
	// para cualquier operador autenticado.
	manager := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", manager, productHandler.Deactivate)

	// Warehouses y locations
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/:id/locations", warehouseHandler.CreateLocation)
	warehouses.Get("/:id/locations", warehouseHandler.ListLocations)

	// Documents: creación y consulta genéricas
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.ValidateUC, deps.DeliveryNote)
	inventoryHandler := NewInventoryHandler(deps.AdjustUC, deps.MovementQuery)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Get("/:id/moves", inventoryHandler.ListDocumentMoves)

	// Validación por tipo: el endpoint fija el tipo esperado y rechaza
	// documentos de otro tipo.
	protected.Post("/receipts/:id/validate", manager, documentHandler.ValidateReceipt)
	protected.Post("/deliveries/:id/validate", manager, documentHandler.ValidateDelivery)
	protected.Post("/adjustments/:id/validate", manager, documentHandler.ValidateAdjustment)
	protected.Get("/deliveries/:id/note", documentHandler.DeliveryNote)

	// Inventory: ajuste libre y libro de movimientos
	invGroup := protected.Group("/inventory")
	invGroup.Post("/adjustments", manager, inventoryHandler.Adjust)
	invGroup.Get("/moves", inventoryHandler.ListMoves)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/counters", dashboardHandler.Counters)
	dashboard.Get("/stock-summary", dashboardHandler.StockSummary)
}
