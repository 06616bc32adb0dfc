package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest cuerpo de POST /api/inventory/adjustments: delta con
// signo aplicado directamente al stock del producto, sin documento.
type AdjustStockRequest struct {
	ProductID int64           `json:"product_id"`
	Delta     decimal.Decimal `json:"delta"`
	Reason    string          `json:"reason"`
}

// StockLevelResponse representación de una fila de stock en respuestas.
type StockLevelResponse struct {
	ProductID      int64           `json:"product_id"`
	WarehouseID    int64           `json:"warehouse_id"`
	LocationID     int64           `json:"location_id"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockSummaryItem fila del resumen de existencias por producto.
type StockSummaryItem struct {
	Product       ProductResponse `json:"product"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// StockMoveResponse entrada del libro de movimientos en respuestas.
type StockMoveResponse struct {
	ID              int64           `json:"id"`
	BatchID         string          `json:"batch_id"`
	ProductID       int64           `json:"product_id"`
	FromWarehouseID *int64          `json:"from_warehouse_id,omitempty"`
	FromLocationID  *int64          `json:"from_location_id,omitempty"`
	ToWarehouseID   *int64          `json:"to_warehouse_id,omitempty"`
	ToLocationID    *int64          `json:"to_location_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	MoveType        string          `json:"move_type"`
	DocumentID      *int64          `json:"document_id,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	CreatedBy       int64           `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}
