package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DocumentCounters agrupa los contadores de documentos del dashboard.
// "Pendiente" = ni DONE ni CANCELED.
type DocumentCounters struct {
	PendingReceipts   int64
	TotalReceipts     int64
	PendingDeliveries int64
	TotalDeliveries   int64
	WaitingDeliveries int64
	InternalTransfers int64 // TRANSFER en WAITING o READY
}

// StockSummaryRow es una fila del resumen de existencias: producto activo y
// su cantidad total sumada en todas las ubicaciones (cero si no tiene stock).
type StockSummaryRow struct {
	Product       entity.Product
	TotalQuantity decimal.Decimal
}

// DashboardRepository consultas de solo lectura para KPIs y resumen de stock.
// Derivadas del estado confirmado; sin estado propio.
type DashboardRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	// CountLowStockProducts cuenta productos activos con reorder_level > 0
	// cuya suma de existencias en todas las ubicaciones está por debajo del
	// umbral. Un producto con reorder_level = 0 nunca cuenta.
	CountLowStockProducts(ctx context.Context) (int64, error)
	GetDocumentCounters(ctx context.Context) (DocumentCounters, error)
	// GetStockSummary lista productos activos con su total de existencias.
	// search filtra por nombre o SKU (insensible a mayúsculas y acentos).
	GetStockSummary(ctx context.Context, search string) ([]StockSummaryRow, error)
}
