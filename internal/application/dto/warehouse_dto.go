package dto

import "time"

// CreateWarehouseRequest cuerpo de POST /api/warehouses.
type CreateWarehouseRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseResponse representación de una bodega en respuestas.
type WarehouseResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLocationRequest cuerpo de POST /api/warehouses/:id/locations.
type CreateLocationRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocationResponse representación de una ubicación en respuestas.
type LocationResponse struct {
	ID          int64     `json:"id"`
	WarehouseID int64     `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}
