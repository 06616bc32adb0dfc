package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)
var _ repository.LocationRepository = (*LocationRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = "id, code, name, address, created_at, updated_at"

// Create persiste una bodega nueva y asigna su ID.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (code, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		warehouse.Code, warehouse.Name, warehouse.Address, warehouse.CreatedAt, warehouse.UpdatedAt,
	).Scan(&warehouse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID, o nil si no existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return r.scanOne(`SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id)
}

// GetByCode obtiene una bodega por código, o nil si no existe.
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	return r.scanOne(`SELECT `+warehouseColumns+` FROM warehouses WHERE code = $1`, code)
}

// List lista bodegas ordenadas por id.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// First devuelve la bodega de menor id, o nil si no hay ninguna.
// El orden por id es deliberado: el bootstrap del ajuste libre necesita un
// resultado determinista, no "la primera fila que devuelva la BD".
func (r *WarehouseRepo) First() (*entity.Warehouse, error) {
	return r.scanOne(`SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY id LIMIT 1`)
}

func (r *WarehouseRepo) scanOne(query string, args ...any) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&w.ID, &w.Code, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = "id, warehouse_id, code, name, created_at, updated_at"

// Create persiste una ubicación nueva y asigna su ID.
// El constraint único (warehouse_id, code) lo impone la BD.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (warehouse_id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.WarehouseID, location.Code, location.Name, location.CreatedAt, location.UpdatedAt,
	).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID, o nil si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	return r.scanOne(`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
}

// GetByWarehouseAndCode obtiene una ubicación por bodega y código.
func (r *LocationRepo) GetByWarehouseAndCode(warehouseID int64, code string) (*entity.Location, error) {
	return r.scanOne(`SELECT `+locationColumns+` FROM locations WHERE warehouse_id = $1 AND code = $2`, warehouseID, code)
}

// ListByWarehouse lista las ubicaciones de una bodega ordenadas por id.
func (r *LocationRepo) ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE warehouse_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// FirstInWarehouse devuelve la ubicación de menor id dentro de la bodega,
// o nil si no tiene ubicaciones.
func (r *LocationRepo) FirstInWarehouse(warehouseID int64) (*entity.Location, error) {
	return r.scanOne(`SELECT `+locationColumns+` FROM locations WHERE warehouse_id = $1 ORDER BY id LIMIT 1`, warehouseID)
}

func (r *LocationRepo) scanOne(query string, args ...any) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
