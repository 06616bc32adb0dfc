package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DeliveryNoteLine línea del albarán con los datos del producto resueltos.
type DeliveryNoteLine struct {
	SKU         string
	ProductName string
	UnitMeasure string
	Quantity    decimal.Decimal
}

// DeliveryNoteData todo lo que necesita el generador para pintar el albarán.
type DeliveryNoteData struct {
	Document      *entity.Document
	Lines         []DeliveryNoteLine
	WarehouseCode string
	WarehouseName string
	LocationCode  string
	LocationName  string
}

// DeliveryNotePDFGenerator puerto del generador de PDF del albarán de entrega.
type DeliveryNotePDFGenerator interface {
	GenerateDeliveryNotePDF(ctx context.Context, data *DeliveryNoteData) ([]byte, error)
}

// DeliveryNoteUseCase arma los datos del albarán de una entrega y delega el
// render al generador.
type DeliveryNoteUseCase struct {
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	pdfGen        DeliveryNotePDFGenerator
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	pdfGen DeliveryNotePDFGenerator,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{
		docRepo:       docRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		pdfGen:        pdfGen,
	}
}

// Generate genera el PDF del albarán de una entrega y devuelve bytes y nombre
// de archivo sugerido. Solo aplica a documentos DELIVERY no cancelados.
func (uc *DeliveryNoteUseCase) Generate(ctx context.Context, documentID int64) ([]byte, string, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	if doc.Type != entity.DocTypeDelivery {
		return nil, "", domain.ErrInvalidInput
	}
	if doc.Status == entity.DocStatusCanceled {
		return nil, "", domain.ErrCanceledDocument
	}

	data := &DeliveryNoteData{Document: doc}
	if doc.FromWarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(*doc.FromWarehouseID)
		if err != nil {
			return nil, "", err
		}
		if warehouse != nil {
			data.WarehouseCode, data.WarehouseName = warehouse.Code, warehouse.Name
		}
	}
	if doc.FromLocationID != nil {
		location, err := uc.locationRepo.GetByID(*doc.FromLocationID)
		if err != nil {
			return nil, "", err
		}
		if location != nil {
			data.LocationCode, data.LocationName = location.Code, location.Name
		}
	}

	data.Lines = make([]DeliveryNoteLine, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, "", err
		}
		line := DeliveryNoteLine{Quantity: l.Quantity}
		if product != nil {
			line.SKU, line.ProductName, line.UnitMeasure = product.SKU, product.Name, product.UnitMeasure
		}
		data.Lines = append(data.Lines, line)
	}

	pdf, err := uc.pdfGen.GenerateDeliveryNotePDF(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("albaran-%d.pdf", doc.ID), nil
}
