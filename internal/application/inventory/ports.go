package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del libro
// de stock: deltas de líneas, movimientos y transición de estado confirman
// juntos o no confirma nada.
type TxRunner interface {
	// Run transacción para la validación de documentos.
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockLevelRepository,
		moveRepo repository.StockMoveRepository,
	) error) error

	// RunAdjustment transacción para el ajuste libre de stock (necesita
	// producto y datos de referencia para el bootstrap de la ubicación).
	RunAdjustment(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		locationRepo repository.LocationRepository,
		stockRepo repository.StockLevelRepository,
		moveRepo repository.StockMoveRepository,
	) error) error
}
