package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newAdjustFixture(bin inventory.DefaultBin) (*memState, *inventory.AdjustStockUseCase) {
	s := newMemState()
	seedCatalog(s)
	return s, inventory.NewAdjustStockUseCase(&fakeTxRunner{s}, bin)
}

// Un delta positivo suma sobre la fila de stock existente y registra un
// movimiento ADJUSTMENT entrante con magnitud |delta|.
func TestAdjust_DeltaPositivo(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	seedStock(s, 1, 1, 1, "10")

	level, err := uc.Adjust(context.Background(), 1, qty("4"), 7, "conteo físico")
	require.NoError(t, err)

	assert.True(t, qty("14").Equal(level.QuantityOnHand))
	require.Len(t, s.moves, 1)
	move := s.moves[0]
	assert.Equal(t, entity.MoveTypeAdjustment, move.MoveType)
	assert.True(t, qty("4").Equal(move.Quantity), "el movimiento lleva la magnitud")
	require.NotNil(t, move.ToWarehouseID, "delta positivo = movimiento entrante")
	assert.Nil(t, move.FromWarehouseID)
	assert.Nil(t, move.DocumentID, "el ajuste libre no referencia documento")
	assert.Equal(t, "conteo físico", move.Reason)
	assert.Equal(t, int64(7), move.CreatedBy)
}

// Un delta negativo resta y registra un movimiento saliente.
func TestAdjust_DeltaNegativo(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	seedStock(s, 1, 1, 1, "10")

	level, err := uc.Adjust(context.Background(), 1, qty("-3"), 7, "merma")
	require.NoError(t, err)

	assert.True(t, qty("7").Equal(level.QuantityOnHand))
	require.Len(t, s.moves, 1)
	assert.True(t, qty("3").Equal(s.moves[0].Quantity))
	require.NotNil(t, s.moves[0].FromWarehouseID, "delta negativo = movimiento saliente")
	assert.Nil(t, s.moves[0].ToWarehouseID)
}

// Dejar el stock por debajo de cero se rechaza sin efecto parcial.
func TestAdjust_NoPermiteNegativo(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	seedStock(s, 1, 1, 1, "2")

	_, err := uc.Adjust(context.Background(), 1, qty("-5"), 7, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty("2").Equal(s.quantityAt(1, 1, 1)))
	assert.Empty(t, s.moves)
}

// Delta cero no es un ajuste.
func TestAdjust_DeltaCero(t *testing.T) {
	_, uc := newAdjustFixture(inventory.DefaultBin{})
	_, err := uc.Adjust(context.Background(), 1, qty("0"), 7, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente.
func TestAdjust_ProductoInexistente(t *testing.T) {
	_, uc := newAdjustFixture(inventory.DefaultBin{})
	_, err := uc.Adjust(context.Background(), 99, qty("1"), 7, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto sin stock en ninguna parte aterriza en la ubicación por defecto
// (sin configuración: bodega y ubicación de menor id).
func TestAdjust_BootstrapSinConfiguracion(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	s.warehouses[2] = &entity.Warehouse{ID: 2, Code: "SECUNDARIA", Name: "Bodega Secundaria"}
	s.locations[2] = &entity.Location{ID: 2, WarehouseID: 1, Code: "A-02", Name: "Estantería A-02"}

	level, err := uc.Adjust(context.Background(), 1, qty("6"), 7, "alta inicial")
	require.NoError(t, err)

	assert.Equal(t, int64(1), level.WarehouseID, "debe elegir la bodega de menor id")
	assert.Equal(t, int64(1), level.LocationID, "debe elegir la ubicación de menor id")
	assert.True(t, qty("6").Equal(level.QuantityOnHand))
}

// Con códigos configurados, el bootstrap usa esa (bodega, ubicación).
func TestAdjust_BootstrapConCodigos(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{WarehouseCode: "SECUNDARIA", LocationCode: "B-01"})
	s.warehouses[2] = &entity.Warehouse{ID: 2, Code: "SECUNDARIA", Name: "Bodega Secundaria"}
	s.locations[2] = &entity.Location{ID: 2, WarehouseID: 2, Code: "B-01", Name: "Estantería B-01"}

	level, err := uc.Adjust(context.Background(), 1, qty("3"), 7, "")
	require.NoError(t, err)

	assert.Equal(t, int64(2), level.WarehouseID)
	assert.Equal(t, int64(2), level.LocationID)
}

// Un ajuste negativo sobre un producto sin stock parte de cero y por tanto
// siempre falla.
func TestAdjust_NegativoSinStockPrevio(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	_, err := uc.Adjust(context.Background(), 1, qty("-1"), 7, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.stock, "no debe materializarse ninguna fila de stock")
}

// Sin bodegas ni ubicaciones el bootstrap no tiene dónde aterrizar.
func TestAdjust_SinBodegas(t *testing.T) {
	s := newMemState()
	s.products[1] = &entity.Product{ID: 1, SKU: "SKU-001", Name: "Tornillo M8", UnitMeasure: "UND", IsActive: true}
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{s}, inventory.DefaultBin{})

	_, err := uc.Adjust(context.Background(), 1, qty("5"), 7, "")
	assert.ErrorIs(t, err, domain.ErrNoWarehouse)
}

// Con stock existente, el ajuste opera sobre la fila de menor
// (bodega, ubicación), no sobre la ubicación por defecto.
func TestAdjust_UsaLaFilaDeMenorBodega(t *testing.T) {
	s, uc := newAdjustFixture(inventory.DefaultBin{})
	s.warehouses[2] = &entity.Warehouse{ID: 2, Code: "SECUNDARIA", Name: "Bodega Secundaria"}
	s.locations[2] = &entity.Location{ID: 2, WarehouseID: 2, Code: "B-01", Name: "Estantería B-01"}
	seedStock(s, 1, 2, 2, "50")
	seedStock(s, 1, 1, 1, "20")

	level, err := uc.Adjust(context.Background(), 1, qty("5"), 7, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), level.WarehouseID)
	assert.True(t, qty("25").Equal(level.QuantityOnHand))
	assert.True(t, qty("50").Equal(s.quantityAt(1, 2, 2)), "la otra fila no se toca")
}
