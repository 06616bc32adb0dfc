package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de POST /api/products.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	UnitMeasure  string          `json:"unit_measure"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. El SKU es inmutable.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	UnitMeasure  *string          `json:"unit_measure"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
	IsActive     *bool            `json:"is_active"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	UnitMeasure  string          `json:"unit_measure"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
