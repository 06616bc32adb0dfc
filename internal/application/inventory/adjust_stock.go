package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DefaultBin identifica la (bodega, ubicación) donde aterriza el stock de un
// producto que aún no tiene existencias cuando se le aplica un ajuste libre.
// Los códigos vienen de configuración; si están vacíos se usa la bodega de
// menor id y su ubicación de menor id (orden determinista, no "la primera
// fila que devuelva la BD").
type DefaultBin struct {
	WarehouseCode string
	LocationCode  string
}

// AdjustStockUseCase aplica un delta con signo directamente al stock de un
// producto, sin documento. Es la segunda vía hacia movimientos ADJUSTMENT:
// el documento de ajuste siempre suma; este camino admite signo.
type AdjustStockUseCase struct {
	txRunner   TxRunner
	defaultBin DefaultBin
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, defaultBin DefaultBin) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, defaultBin: defaultBin}
}

// Adjust aplica delta (positivo o negativo) al stock del producto y registra
// un StockMove ADJUSTMENT con magnitud |delta| y dirección según el signo,
// sin referencia a documento. Falla con ErrInsufficientStock si la cantidad
// resultante sería negativa; en ese caso no queda ningún efecto parcial.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, productID int64, delta decimal.Decimal, actorID int64, reason string) (*entity.StockLevel, error) {
	if delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.StockLevel
	err := uc.txRunner.RunAdjustment(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		locationRepo repository.LocationRepository,
		stockRepo repository.StockLevelRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Fila de stock del producto (la de menor bodega/ubicación), o una
		// nueva en cero sobre la ubicación por defecto si no tiene ninguna.
		stock, err := stockRepo.FirstByProductForUpdate(productID)
		if err != nil {
			return err
		}
		if stock == nil {
			stock, err = uc.bootstrapLevel(productID, warehouseRepo, locationRepo)
			if err != nil {
				return err
			}
		}

		newQty := stock.QuantityOnHand.Add(delta)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		now := time.Now()
		stock.QuantityOnHand = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		move := &entity.StockMove{
			BatchID:   uuid.New().String(),
			ProductID: productID,
			Quantity:  delta.Abs(),
			MoveType:  entity.MoveTypeAdjustment,
			Reason:    reason,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		if delta.IsPositive() {
			move.ToWarehouseID = &stock.WarehouseID
			move.ToLocationID = &stock.LocationID
		} else {
			move.FromWarehouseID = &stock.WarehouseID
			move.FromLocationID = &stock.LocationID
		}
		if err := moveRepo.Create(move); err != nil {
			return err
		}

		result = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// bootstrapLevel resuelve la (bodega, ubicación) por defecto y devuelve una
// fila de stock en cero para el producto. Es una conveniencia de arranque,
// no una política general de ubicación por defecto.
func (uc *AdjustStockUseCase) bootstrapLevel(
	productID int64,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
) (*entity.StockLevel, error) {
	var warehouse *entity.Warehouse
	var err error
	if uc.defaultBin.WarehouseCode != "" {
		warehouse, err = warehouseRepo.GetByCode(uc.defaultBin.WarehouseCode)
	} else {
		warehouse, err = warehouseRepo.First()
	}
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNoWarehouse
	}

	var location *entity.Location
	if uc.defaultBin.LocationCode != "" {
		location, err = locationRepo.GetByWarehouseAndCode(warehouse.ID, uc.defaultBin.LocationCode)
	} else {
		location, err = locationRepo.FirstInWarehouse(warehouse.ID)
	}
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNoLocation
	}

	return &entity.StockLevel{
		ProductID:      productID,
		WarehouseID:    warehouse.ID,
		LocationID:     location.ID,
		QuantityOnHand: decimal.Zero,
	}, nil
}
