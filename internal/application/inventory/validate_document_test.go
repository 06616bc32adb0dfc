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

func newValidateFixture() (*memState, *inventory.ValidateDocumentUseCase) {
	s := newMemState()
	seedCatalog(s)
	return s, inventory.NewValidateDocumentUseCase(&fakeTxRunner{s})
}

// Validar una recepción de 50 unidades sobre una ubicación sin stock debe
// dejar 50 en destino, un movimiento y el documento DONE.
func TestValidateReceipt_SumaAlDestino(t *testing.T) {
	s, uc := newValidateFixture()
	seedDocument(s, 10, entity.DocTypeReceipt, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 10, ProductID: 1, Quantity: qty("50")},
	)

	doc, err := uc.ValidateReceipt(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, entity.DocStatusDone, doc.Status)
	require.NotNil(t, doc.ValidatedAt, "la validación debe estampar validated_at")
	assert.True(t, qty("50").Equal(s.quantityAt(1, 1, 1)), "el destino debe quedar en 50")

	require.Len(t, s.moves, 1, "una línea = un movimiento")
	move := s.moves[0]
	assert.Equal(t, entity.MoveTypeReceipt, move.MoveType)
	assert.True(t, qty("50").Equal(move.Quantity))
	require.NotNil(t, move.DocumentID)
	assert.Equal(t, int64(10), *move.DocumentID)
	require.NotNil(t, move.ToWarehouseID)
	assert.Equal(t, int64(1), *move.ToWarehouseID)
	assert.Nil(t, move.FromWarehouseID, "una recepción no tiene origen")
	assert.NotEmpty(t, move.BatchID)
}

// El documento de ajuste es siempre aditivo sobre el destino, igual que la
// recepción.
func TestValidateAdjustment_EsAditivo(t *testing.T) {
	s, uc := newValidateFixture()
	seedStock(s, 1, 1, 1, "10")
	seedDocument(s, 11, entity.DocTypeAdjustment, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 11, ProductID: 1, Quantity: qty("5")},
	)

	_, err := uc.ValidateAdjustment(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, qty("15").Equal(s.quantityAt(1, 1, 1)))
}

// Una entrega con stock suficiente resta del origen.
func TestValidateDelivery_RestaDelOrigen(t *testing.T) {
	s, uc := newValidateFixture()
	seedStock(s, 1, 1, 1, "30")
	seedDocument(s, 12, entity.DocTypeDelivery, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 12, ProductID: 1, Quantity: qty("12")},
	)

	doc, err := uc.ValidateDelivery(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, entity.DocStatusDone, doc.Status)
	assert.True(t, qty("18").Equal(s.quantityAt(1, 1, 1)))
	require.Len(t, s.moves, 1)
	require.NotNil(t, s.moves[0].FromWarehouseID)
	assert.Nil(t, s.moves[0].ToWarehouseID, "una entrega no tiene destino")
}

// Entregar más de lo disponible falla con ErrInsufficientStock y no deja
// ningún efecto.
func TestValidateDelivery_StockInsuficiente(t *testing.T) {
	s, uc := newValidateFixture()
	seedStock(s, 1, 1, 1, "5")
	doc := seedDocument(s, 13, entity.DocTypeDelivery, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 13, ProductID: 1, Quantity: qty("8")},
	)

	_, err := uc.ValidateDelivery(context.Background(), 13)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty("5").Equal(s.quantityAt(1, 1, 1)), "el stock no debe cambiar")
	assert.Empty(t, s.moves, "no debe registrarse ningún movimiento")
	assert.Equal(t, entity.DocStatusReady, doc.Status, "el documento sigue READY")
}

// Entregar desde una ubicación sin fila de stock equivale a stock cero.
func TestValidateDelivery_SinFilaDeStock(t *testing.T) {
	s, uc := newValidateFixture()
	seedDocument(s, 14, entity.DocTypeDelivery, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 14, ProductID: 1, Quantity: qty("1")},
	)

	_, err := uc.ValidateDelivery(context.Background(), 14)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Si una línea intermedia falla, las líneas anteriores se deshacen: o todo el
// documento o nada.
func TestValidate_AtomicidadEntreLineas(t *testing.T) {
	s, uc := newValidateFixture()
	s.products[2] = &entity.Product{ID: 2, SKU: "SKU-002", Name: "Tuerca M8", UnitMeasure: "UND", IsActive: true}
	seedStock(s, 1, 1, 1, "100")
	seedStock(s, 2, 1, 1, "1")
	seedDocument(s, 15, entity.DocTypeDelivery, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 15, ProductID: 1, Quantity: qty("40")},
		entity.DocumentLine{ID: 2, DocumentID: 15, ProductID: 2, Quantity: qty("9")}, // insuficiente
	)

	_, err := uc.ValidateDelivery(context.Background(), 15)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty("100").Equal(s.quantityAt(1, 1, 1)), "la primera línea debe revertirse")
	assert.True(t, qty("1").Equal(s.quantityAt(2, 1, 1)))
	assert.Empty(t, s.moves)
}

// N líneas válidas producen exactamente N movimientos con el mismo batch.
func TestValidate_UnMovimientoPorLinea(t *testing.T) {
	s, uc := newValidateFixture()
	s.products[2] = &entity.Product{ID: 2, SKU: "SKU-002", Name: "Tuerca M8", UnitMeasure: "UND", IsActive: true}
	s.products[3] = &entity.Product{ID: 3, SKU: "SKU-003", Name: "Arandela M8", UnitMeasure: "UND", IsActive: true}
	seedDocument(s, 16, entity.DocTypeReceipt, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 16, ProductID: 1, Quantity: qty("10")},
		entity.DocumentLine{ID: 2, DocumentID: 16, ProductID: 2, Quantity: qty("20")},
		entity.DocumentLine{ID: 3, DocumentID: 16, ProductID: 3, Quantity: qty("30")},
	)

	_, err := uc.ValidateReceipt(context.Background(), 16)
	require.NoError(t, err)

	require.Len(t, s.moves, 3)
	batch := s.moves[0].BatchID
	for _, m := range s.moves {
		assert.Equal(t, batch, m.BatchID, "todas las líneas comparten batch")
	}
}

// Revalidar un documento DONE se rechaza sin re-aplicar los deltas.
func TestValidate_Idempotencia(t *testing.T) {
	s, uc := newValidateFixture()
	seedDocument(s, 17, entity.DocTypeReceipt, entity.DocStatusReady,
		entity.DocumentLine{ID: 1, DocumentID: 17, ProductID: 1, Quantity: qty("50")},
	)

	_, err := uc.ValidateReceipt(context.Background(), 17)
	require.NoError(t, err)

	_, err = uc.ValidateReceipt(context.Background(), 17)
	require.ErrorIs(t, err, domain.ErrAlreadyValidated)

	assert.True(t, qty("50").Equal(s.quantityAt(1, 1, 1)), "el delta no debe aplicarse dos veces")
	assert.Len(t, s.moves, 1)
}

// Precondiciones de la transición READY→DONE.
func TestValidate_Precondiciones(t *testing.T) {
	t.Run("documento inexistente", func(t *testing.T) {
		_, uc := newValidateFixture()
		_, err := uc.ValidateReceipt(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("documento cancelado", func(t *testing.T) {
		s, uc := newValidateFixture()
		seedDocument(s, 20, entity.DocTypeReceipt, entity.DocStatusCanceled,
			entity.DocumentLine{ID: 1, DocumentID: 20, ProductID: 1, Quantity: qty("5")},
		)
		_, err := uc.ValidateReceipt(context.Background(), 20)
		assert.ErrorIs(t, err, domain.ErrCanceledDocument)
	})

	t.Run("documento sin líneas", func(t *testing.T) {
		s, uc := newValidateFixture()
		seedDocument(s, 21, entity.DocTypeReceipt, entity.DocStatusReady)
		_, err := uc.ValidateReceipt(context.Background(), 21)
		assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	})

	t.Run("tipo distinto al endpoint", func(t *testing.T) {
		s, uc := newValidateFixture()
		seedDocument(s, 22, entity.DocTypeDelivery, entity.DocStatusReady,
			entity.DocumentLine{ID: 1, DocumentID: 22, ProductID: 1, Quantity: qty("5")},
		)
		_, err := uc.ValidateReceipt(context.Background(), 22)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// Un documento WAITING también puede validarse: la precondición solo excluye
// DONE y CANCELED.
func TestValidate_DesdeWaiting(t *testing.T) {
	s, uc := newValidateFixture()
	seedDocument(s, 23, entity.DocTypeReceipt, entity.DocStatusWaiting,
		entity.DocumentLine{ID: 1, DocumentID: 23, ProductID: 1, Quantity: qty("2")},
	)

	doc, err := uc.ValidateReceipt(context.Background(), 23)
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusDone, doc.Status)
}
