package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockMoveRepository define el puerto de persistencia del libro de movimientos.
// Solo inserta y lee: los movimientos nunca se actualizan ni se borran.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	ListByProduct(productID int64, limit, offset int) ([]*entity.StockMove, error)
	ListByDocument(documentID int64) ([]*entity.StockMove, error)
	ListRecent(limit, offset int) ([]*entity.StockMove, error)
}
