package dto

// DashboardCountersDTO respuesta de GET /api/dashboard/counters.
// Agregaciones de solo lectura sobre el estado confirmado.
type DashboardCountersDTO struct {
	TotalProducts     int64 `json:"total_products"`
	LowStockCount     int64 `json:"low_stock_count"`
	PendingReceipts   int64 `json:"pending_receipts"`
	TotalReceipts     int64 `json:"total_receipts"`
	PendingDeliveries int64 `json:"pending_deliveries"`
	TotalDeliveries   int64 `json:"total_deliveries"`
	WaitingDeliveries int64 `json:"waiting_deliveries"`
	InternalTransfers int64 `json:"internal_transfers"`
}
