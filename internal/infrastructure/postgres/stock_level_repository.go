package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del puerto StockLevelRepository sobre
// PostgreSQL. Pensado para usarse dentro de transacciones (Querier = tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

const stockLevelColumns = "id, product_id, warehouse_id, location_id, quantity_on_hand, updated_at"

// Get devuelve la fila de stock; si no existe, una fila en cero con las claves
// pedidas. La fila real la crea Upsert.
func (r *StockLevelRepo) Get(productID, warehouseID, locationID int64) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2 AND location_id = $3`
	return r.scanOrZero(query, productID, warehouseID, locationID)
}

// GetForUpdate igual que Get pero bloquea la fila si existe. Si no existe no
// hay nada que bloquear: el constraint único sobre la tripleta resuelve la
// carrera de dos inserciones simultáneas en Upsert.
func (r *StockLevelRepo) GetForUpdate(productID, warehouseID, locationID int64) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2 AND location_id = $3
		FOR UPDATE`
	return r.scanOrZero(query, productID, warehouseID, locationID)
}

// FirstByProductForUpdate devuelve la fila de stock de menor (bodega,
// ubicación) para el producto, bloqueada, o nil si no tiene stock registrado.
// El orden es deliberado para que el ajuste libre sea determinista.
func (r *StockLevelRepo) FirstByProductForUpdate(productID int64) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels
		WHERE product_id = $1
		ORDER BY warehouse_id, location_id
		LIMIT 1
		FOR UPDATE`
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&l.ID, &l.ProductID, &l.WarehouseID, &l.LocationID, &l.QuantityOnHand, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// Upsert inserta la fila o actualiza su cantidad (creación perezosa).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, warehouse_id, location_id, quantity_on_hand, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id, location_id)
		DO UPDATE SET quantity_on_hand = EXCLUDED.quantity_on_hand, updated_at = now()
		RETURNING id, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		level.ProductID, level.WarehouseID, level.LocationID, level.QuantityOnHand,
	).Scan(&level.ID, &level.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

func (r *StockLevelRepo) scanOrZero(query string, productID, warehouseID, locationID int64) (*entity.StockLevel, error) {
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, locationID).Scan(
		&l.ID, &l.ProductID, &l.WarehouseID, &l.LocationID, &l.QuantityOnHand, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{
				ProductID:      productID,
				WarehouseID:    warehouseID,
				LocationID:     locationID,
				QuantityOnHand: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}
