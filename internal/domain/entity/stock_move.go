package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Coinciden con los tipos de documento que los
// originan; ADJUSTMENT también puede nacer del ajuste libre (sin documento).
const (
	MoveTypeReceipt    = "RECEIPT"
	MoveTypeDelivery   = "DELIVERY"
	MoveTypeTransfer   = "TRANSFER"
	MoveTypeAdjustment = "ADJUSTMENT"
)

// StockMove es una entrada inmutable del libro de movimientos: registra un
// traslado de cantidad con origen y/o destino opcionales según la dirección.
// Quantity siempre es magnitud positiva; el signo lo da la dirección.
// Nunca se actualiza ni se borra después del insert: es la pista de auditoría.
type StockMove struct {
	ID              int64
	BatchID         string // agrupa los movimientos de una misma validación (UUID)
	ProductID       int64
	FromWarehouseID *int64
	FromLocationID  *int64
	ToWarehouseID   *int64
	ToLocationID    *int64
	Quantity        decimal.Decimal
	MoveType        string
	DocumentID      *int64 // nil en ajustes libres
	Reason          string // nota del ajuste libre; vacío en movimientos de documento
	CreatedBy       int64
	CreatedAt       time.Time
}
