package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// El SKU es único e inmutable; el stock se maneja por (bodega, ubicación) en StockLevel.
// Nunca se borra físicamente: IsActive=false lo oculta de los flujos operativos
// pero conserva su historial de movimientos.
type Product struct {
	ID           int64
	SKU          string
	Name         string
	UnitMeasure  string          // unidad de medida: UND, KG, LT, ...
	ReorderLevel decimal.Decimal // umbral de reposición; 0 = sin alerta de stock bajo
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
