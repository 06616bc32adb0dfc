package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	// Deactivate marca el producto como inactivo (soft delete): conserva
	// historial de movimientos y stock pero lo oculta de los flujos operativos.
	Deactivate(id int64) error
}
