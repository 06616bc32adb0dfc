package entity

import "time"

// Warehouse representa una bodega de la cadena. El código es único a nivel global.
type Warehouse struct {
	ID        int64
	Code      string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación (zona, estante, muelle) dentro de una bodega.
// Pertenece a exactamente una bodega; el código es único dentro de la bodega,
// no globalmente. Identidad inmutable una vez creada.
type Location struct {
	ID          int64
	WarehouseID int64
	Code        string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
