package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ValidateDocumentUseCase valida documentos de inventario (RECEIPT, DELIVERY,
// ADJUSTMENT): aplica el delta de stock de cada línea, registra un StockMove
// por línea y marca el documento DONE, todo dentro de una sola transacción
// con bloqueo de fila (SELECT FOR UPDATE) sobre el documento y cada fila de
// stock tocada. Si cualquier línea falla, nada queda aplicado.
type ValidateDocumentUseCase struct {
	txRunner TxRunner
}

// NewValidateDocumentUseCase construye el caso de uso.
func NewValidateDocumentUseCase(txRunner TxRunner) *ValidateDocumentUseCase {
	return &ValidateDocumentUseCase{txRunner: txRunner}
}

// ValidateReceipt valida una recepción: suma cada línea al stock del destino.
// Recibir en una ubicación sin fila de stock siempre es válido (se crea con
// la cantidad de la línea).
func (uc *ValidateDocumentUseCase) ValidateReceipt(ctx context.Context, documentID int64) (*entity.Document, error) {
	return uc.validate(ctx, documentID, entity.DocTypeReceipt)
}

// ValidateDelivery valida una entrega: resta cada línea del stock del origen.
// Falla con ErrInsufficientStock si la ubicación no tiene existencias
// suficientes para alguna línea.
func (uc *ValidateDocumentUseCase) ValidateDelivery(ctx context.Context, documentID int64) (*entity.Document, error) {
	return uc.validate(ctx, documentID, entity.DocTypeDelivery)
}

// ValidateAdjustment valida un documento de ajuste. Por comportamiento
// heredado el documento de ajuste es siempre aditivo sobre el destino; el
// ajuste con signo existe como operación aparte (AdjustStockUseCase).
func (uc *ValidateDocumentUseCase) ValidateAdjustment(ctx context.Context, documentID int64) (*entity.Document, error) {
	return uc.validate(ctx, documentID, entity.DocTypeAdjustment)
}

// validate ejecuta la transición READY→DONE de un documento del tipo esperado.
//
// Precondiciones: el documento existe, su tipo coincide con el endpoint, no
// está DONE (la validación rechaza repetir, nunca re-aplica), no está
// CANCELED y tiene al menos una línea.
func (uc *ValidateDocumentUseCase) validate(ctx context.Context, documentID int64, wantType string) (*entity.Document, error) {
	var validated *entity.Document

	err := uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		stockRepo repository.StockLevelRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		// Bloquea la fila del documento: dos validaciones concurrentes se
		// serializan aquí y la perdedora ve status=DONE.
		doc, err := docRepo.GetForUpdate(documentID)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Type != wantType {
			return domain.ErrInvalidInput
		}
		switch doc.Status {
		case entity.DocStatusDone:
			return domain.ErrAlreadyValidated
		case entity.DocStatusCanceled:
			return domain.ErrCanceledDocument
		}
		if len(doc.Lines) == 0 {
			return domain.ErrEmptyDocument
		}

		now := time.Now()
		batchID := uuid.New().String()
		for _, line := range doc.Lines {
			if err := uc.applyLine(stockRepo, moveRepo, doc, line, now, batchID); err != nil {
				return err
			}
		}

		if err := docRepo.MarkValidated(doc.ID, now); err != nil {
			return err
		}
		doc.Status = entity.DocStatusDone
		doc.ValidatedAt = &now
		validated = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return validated, nil
}

// applyLine aplica la regla de delta del tipo de documento a una línea y
// registra exactamente un StockMove.
func (uc *ValidateDocumentUseCase) applyLine(
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
	doc *entity.Document,
	line entity.DocumentLine,
	now time.Time,
	batchID string,
) error {
	move := &entity.StockMove{
		BatchID:    batchID,
		ProductID:  line.ProductID,
		Quantity:   line.Quantity,
		MoveType:   doc.Type,
		DocumentID: &doc.ID,
		CreatedBy:  doc.CreatedBy,
		CreatedAt:  now,
	}

	switch doc.Type {
	case entity.DocTypeReceipt, entity.DocTypeAdjustment:
		// Entrada al destino; la fila de stock se crea en cero si no existe.
		stock, err := stockRepo.GetForUpdate(line.ProductID, *doc.ToWarehouseID, *doc.ToLocationID)
		if err != nil {
			return err
		}
		stock.QuantityOnHand = stock.QuantityOnHand.Add(line.Quantity)
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		move.ToWarehouseID = doc.ToWarehouseID
		move.ToLocationID = doc.ToLocationID

	case entity.DocTypeDelivery:
		stock, err := stockRepo.GetForUpdate(line.ProductID, *doc.FromWarehouseID, *doc.FromLocationID)
		if err != nil {
			return err
		}
		// Una fila inexistente llega en cero: también es stock insuficiente.
		if stock.QuantityOnHand.LessThan(line.Quantity) {
			return domain.ErrInsufficientStock
		}
		stock.QuantityOnHand = stock.QuantityOnHand.Sub(line.Quantity)
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		move.FromWarehouseID = doc.FromWarehouseID
		move.FromLocationID = doc.FromLocationID

	default:
		// TRANSFER queda en el esquema sin regla de delta implementada.
		return domain.ErrInvalidInput
	}

	return moveRepo.Create(move)
}
