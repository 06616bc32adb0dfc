package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa la existencia actual de un producto en una
// (bodega, ubicación). Se crea de forma perezosa con el primer evento que la
// toca y solo la muta el motor de validación; nunca se borra (saldo cero es
// un estado válido, no ausencia).
//
// Invariante: QuantityOnHand nunca queda negativa tras una mutación confirmada.
type StockLevel struct {
	ID             int64
	ProductID      int64
	WarehouseID    int64
	LocationID     int64
	QuantityOnHand decimal.Decimal
	UpdatedAt      time.Time
}
