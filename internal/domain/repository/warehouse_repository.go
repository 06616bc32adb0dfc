package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	// First devuelve la bodega de menor id (orden determinista) o nil si no
	// hay ninguna. Usada por el bootstrap del ajuste libre de stock.
	First() (*entity.Warehouse, error)
}

// LocationRepository define el puerto de persistencia para Location.
// Una ubicación pertenece a exactamente una bodega; código único por bodega.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	GetByWarehouseAndCode(warehouseID int64, code string) (*entity.Location, error)
	ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.Location, error)
	// FirstInWarehouse devuelve la ubicación de menor id dentro de la bodega
	// o nil si la bodega no tiene ubicaciones.
	FirstInWarehouse(warehouseID int64) (*entity.Location, error)
}
