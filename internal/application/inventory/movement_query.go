package inventory

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del libro de movimientos. El libro es de solo
// inserción; aquí no hay mutaciones.
type MovementQueryUseCase struct {
	moveRepo repository.StockMoveRepository
	docRepo  repository.DocumentRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(moveRepo repository.StockMoveRepository, docRepo repository.DocumentRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{moveRepo: moveRepo, docRepo: docRepo}
}

// ListByProduct historial de movimientos de un producto, más recientes primero.
func (uc *MovementQueryUseCase) ListByProduct(productID int64, limit, offset int) ([]dto.StockMoveResponse, error) {
	moves, err := uc.moveRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMoveResponses(moves), nil
}

// ListByDocument movimientos generados por la validación de un documento.
// Devuelve ErrNotFound si el documento no existe.
func (uc *MovementQueryUseCase) ListByDocument(documentID int64) ([]dto.StockMoveResponse, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	moves, err := uc.moveRepo.ListByDocument(documentID)
	if err != nil {
		return nil, err
	}
	return toMoveResponses(moves), nil
}

// ListRecent últimos movimientos de todo el almacén.
func (uc *MovementQueryUseCase) ListRecent(limit, offset int) ([]dto.StockMoveResponse, error) {
	moves, err := uc.moveRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMoveResponses(moves), nil
}

func toMoveResponses(moves []*entity.StockMove) []dto.StockMoveResponse {
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.StockMoveResponse{
			ID:              m.ID,
			BatchID:         m.BatchID,
			ProductID:       m.ProductID,
			FromWarehouseID: m.FromWarehouseID,
			FromLocationID:  m.FromLocationID,
			ToWarehouseID:   m.ToWarehouseID,
			ToLocationID:    m.ToLocationID,
			Quantity:        m.Quantity,
			MoveType:        m.MoveType,
			DocumentID:      m.DocumentID,
			Reason:          m.Reason,
			CreatedBy:       m.CreatedBy,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out
}
