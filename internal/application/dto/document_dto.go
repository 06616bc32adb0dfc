package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea de un documento nuevo. Quantity debe ser > 0.
type DocumentLineRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateDocumentRequest cuerpo de POST /api/documents.
// RECEIPT y ADJUSTMENT usan solo destino; DELIVERY solo origen.
type CreateDocumentRequest struct {
	Type            string                `json:"type"`
	FromWarehouseID *int64                `json:"from_warehouse_id"`
	FromLocationID  *int64                `json:"from_location_id"`
	ToWarehouseID   *int64                `json:"to_warehouse_id"`
	ToLocationID    *int64                `json:"to_location_id"`
	SupplierName    string                `json:"supplier_name"`
	CustomerName    string                `json:"customer_name"`
	Lines           []DocumentLineRequest `json:"lines"`
}

// DocumentLineResponse línea de documento en respuestas.
type DocumentLineResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// DocumentResponse representación de un documento en respuestas.
type DocumentResponse struct {
	ID              int64                  `json:"id"`
	Type            string                 `json:"type"`
	Status          string                 `json:"status"`
	FromWarehouseID *int64                 `json:"from_warehouse_id,omitempty"`
	FromLocationID  *int64                 `json:"from_location_id,omitempty"`
	ToWarehouseID   *int64                 `json:"to_warehouse_id,omitempty"`
	ToLocationID    *int64                 `json:"to_location_id,omitempty"`
	SupplierName    string                 `json:"supplier_name,omitempty"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	CreatedBy       int64                  `json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
	ValidatedAt     *time.Time             `json:"validated_at,omitempty"`
	Lines           []DocumentLineResponse `json:"lines"`
}

// DocumentListResponse respuesta de GET /api/documents.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
