package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar existencias
// por (producto, bodega, ubicación). Usado dentro de transacciones para
// garantizar consistencia.
type StockLevelRepository interface {
	// Get devuelve la fila de stock; si no existe devuelve una fila en cero
	// (la creación perezosa ocurre en Upsert, nunca aquí).
	Get(productID, warehouseID, locationID int64) (*entity.StockLevel, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID, locationID int64) (*entity.StockLevel, error)
	// FirstByProductForUpdate devuelve la fila de stock de menor
	// (bodega, ubicación) para el producto, bloqueada, o nil si el producto
	// aún no tiene stock en ninguna parte.
	FirstByProductForUpdate(productID int64) (*entity.StockLevel, error)
	// Upsert inserta o actualiza la cantidad (creación perezosa explícita).
	Upsert(level *entity.StockLevel) error
}
