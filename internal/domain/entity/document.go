package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de inventario.
const (
	DocTypeReceipt    = "RECEIPT"    // recepción de mercancía (solo destino)
	DocTypeDelivery   = "DELIVERY"   // despacho/entrega (solo origen)
	DocTypeTransfer   = "TRANSFER"   // traslado entre bodegas (reservado, sin regla de validación)
	DocTypeAdjustment = "ADJUSTMENT" // ajuste documentado (solo destino, siempre aditivo)
)

// Estados del ciclo de vida de un documento.
// DRAFT → WAITING → READY → DONE; CANCELED es alcanzable desde cualquier
// estado no-DONE (no hay operación que lleve a CANCELED todavía: el motor
// solo rechaza operar sobre documentos ya cancelados).
const (
	DocStatusDraft    = "DRAFT"
	DocStatusWaiting  = "WAITING"
	DocStatusReady    = "READY"
	DocStatusDone     = "DONE"
	DocStatusCanceled = "CANCELED"
)

// Document representa una intención de transacción de inventario.
// Según el tipo usa origen (FromWarehouseID/FromLocationID), destino
// (ToWarehouseID/ToLocationID) o ambos (TRANSFER, fuera de alcance).
// Las líneas se fijan en la creación y son inmutables una vez DONE.
type Document struct {
	ID              int64
	Type            string
	Status          string
	FromWarehouseID *int64
	FromLocationID  *int64
	ToWarehouseID   *int64
	ToLocationID    *int64
	SupplierName    string
	CustomerName    string
	CreatedBy       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ValidatedAt     *time.Time

	Lines []DocumentLine
}

// DocumentLine es una línea de documento: producto + cantidad (> 0), inmutable.
type DocumentLine struct {
	ID         int64
	DocumentID int64
	ProductID  int64
	Quantity   decimal.Decimal
}

// IsTerminal indica si el documento ya no admite transiciones.
func (d *Document) IsTerminal() bool {
	return d.Status == DocStatusDone || d.Status == DocStatusCanceled
}
