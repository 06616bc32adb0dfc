package usecase

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DocumentUseCase creación y consulta de documentos de inventario.
// Los documentos nacen en READY con sus líneas fijas; la única transición
// implementada (READY→DONE) vive en inventory.ValidateDocumentUseCase.
type DocumentUseCase struct {
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
) *DocumentUseCase {
	return &DocumentUseCase{
		docRepo:       docRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
	}
}

// Create crea un documento en READY con sus líneas.
// RECEIPT y ADJUSTMENT exigen destino; DELIVERY exige origen. TRANSFER está
// reservado en el esquema pero no se acepta (sin regla de validación).
func (uc *DocumentUseCase) Create(createdBy int64, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	switch in.Type {
	case entity.DocTypeReceipt, entity.DocTypeAdjustment:
		if in.ToWarehouseID == nil || in.ToLocationID == nil {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.checkBin(*in.ToWarehouseID, *in.ToLocationID); err != nil {
			return nil, err
		}
		in.FromWarehouseID, in.FromLocationID = nil, nil
	case entity.DocTypeDelivery:
		if in.FromWarehouseID == nil || in.FromLocationID == nil {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.checkBin(*in.FromWarehouseID, *in.FromLocationID); err != nil {
			return nil, err
		}
		in.ToWarehouseID, in.ToLocationID = nil, nil
	default:
		return nil, domain.ErrInvalidInput
	}

	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	lines := make([]entity.DocumentLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if !l.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.DocumentLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	now := time.Now()
	doc := &entity.Document{
		Type:            in.Type,
		Status:          entity.DocStatusReady,
		FromWarehouseID: in.FromWarehouseID,
		FromLocationID:  in.FromLocationID,
		ToWarehouseID:   in.ToWarehouseID,
		ToLocationID:    in.ToLocationID,
		SupplierName:    in.SupplierName,
		CustomerName:    in.CustomerName,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
		Lines:           lines,
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return ToDocumentResponse(doc), nil
}

// GetByID obtiene un documento con sus líneas.
func (uc *DocumentUseCase) GetByID(id int64) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return ToDocumentResponse(doc), nil
}

// ListByType lista documentos de un tipo con paginación.
func (uc *DocumentUseCase) ListByType(docType string, limit, offset int) (*dto.DocumentListResponse, error) {
	switch docType {
	case entity.DocTypeReceipt, entity.DocTypeDelivery, entity.DocTypeAdjustment, entity.DocTypeTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.docRepo.ListByType(docType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// checkBin verifica que la bodega exista y que la ubicación le pertenezca.
func (uc *DocumentUseCase) checkBin(warehouseID, locationID int64) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if location == nil || location.WarehouseID != warehouseID {
		return domain.ErrNotFound
	}
	return nil
}

// ToDocumentResponse convierte la entidad a su representación de respuesta.
// Exportada porque los handlers de validación también la usan.
func ToDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	lines := make([]dto.DocumentLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, dto.DocumentLineResponse{ID: l.ID, ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return &dto.DocumentResponse{
		ID:              d.ID,
		Type:            d.Type,
		Status:          d.Status,
		FromWarehouseID: d.FromWarehouseID,
		FromLocationID:  d.FromLocationID,
		ToWarehouseID:   d.ToWarehouseID,
		ToLocationID:    d.ToLocationID,
		SupplierName:    d.SupplierName,
		CustomerName:    d.CustomerName,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		ValidatedAt:     d.ValidatedAt,
		Lines:           lines,
	}
}
