package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación del puerto StockMoveRepository sobre PostgreSQL.
// Tabla de solo inserción: no hay UPDATE ni DELETE sobre stock_moves.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

const stockMoveColumns = `id, batch_id, product_id, from_warehouse_id, from_location_id,
		to_warehouse_id, to_location_id, quantity, move_type, document_id,
		reason, created_by, created_at`

// Create inserta una entrada del libro de movimientos y asigna su ID.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (batch_id, product_id, from_warehouse_id, from_location_id,
			to_warehouse_id, to_location_id, quantity, move_type, document_id,
			reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		move.BatchID, move.ProductID,
		move.FromWarehouseID, move.FromLocationID, move.ToWarehouseID, move.ToLocationID,
		move.Quantity, move.MoveType, move.DocumentID,
		move.Reason, move.CreatedBy, move.CreatedAt,
	).Scan(&move.ID)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *StockMoveRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMove, error) {
	query := `
		SELECT ` + stockMoveColumns + `
		FROM stock_moves
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, productID, limit, offset)
}

// ListByDocument lista los movimientos generados por un documento, en orden
// de inserción (el orden de las líneas).
func (r *StockMoveRepo) ListByDocument(documentID int64) ([]*entity.StockMove, error) {
	query := `
		SELECT ` + stockMoveColumns + `
		FROM stock_moves
		WHERE document_id = $1
		ORDER BY id`
	return r.list(query, documentID)
}

// ListRecent lista los últimos movimientos de todo el almacén.
func (r *StockMoveRepo) ListRecent(limit, offset int) ([]*entity.StockMove, error) {
	query := `
		SELECT ` + stockMoveColumns + `
		FROM stock_moves
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *StockMoveRepo) list(query string, args ...any) ([]*entity.StockMove, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMove
	for rows.Next() {
		m, err := scanStockMove(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanStockMove(row pgx.Row) (*entity.StockMove, error) {
	var m entity.StockMove
	err := row.Scan(
		&m.ID, &m.BatchID, &m.ProductID,
		&m.FromWarehouseID, &m.FromLocationID, &m.ToWarehouseID, &m.ToLocationID,
		&m.Quantity, &m.MoveType, &m.DocumentID,
		&m.Reason, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan stock move: %w", err)
	}
	return &m, nil
}
