package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// fakeDashboardRepo respuestas fijas para el caso de uso; registra el término
// de búsqueda recibido para verificar la normalización.
type fakeDashboardRepo struct {
	activeProducts int64
	lowStock       int64
	counters       repository.DocumentCounters
	summary        []repository.StockSummaryRow
	searchSeen     string
	failCounters   error
}

var _ repository.DashboardRepository = (*fakeDashboardRepo)(nil)

func (f *fakeDashboardRepo) CountActiveProducts(context.Context) (int64, error) {
	return f.activeProducts, nil
}

func (f *fakeDashboardRepo) CountLowStockProducts(context.Context) (int64, error) {
	return f.lowStock, nil
}

func (f *fakeDashboardRepo) GetDocumentCounters(context.Context) (repository.DocumentCounters, error) {
	if f.failCounters != nil {
		return repository.DocumentCounters{}, f.failCounters
	}
	return f.counters, nil
}

func (f *fakeDashboardRepo) GetStockSummary(_ context.Context, search string) ([]repository.StockSummaryRow, error) {
	f.searchSeen = search
	return f.summary, nil
}

func TestGetCounters_AgregaLasTresConsultas(t *testing.T) {
	repo := &fakeDashboardRepo{
		activeProducts: 42,
		lowStock:       3,
		counters: repository.DocumentCounters{
			PendingReceipts:   5,
			TotalReceipts:     20,
			PendingDeliveries: 2,
			TotalDeliveries:   15,
			WaitingDeliveries: 1,
			InternalTransfers: 4,
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetCounters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.TotalProducts)
	assert.Equal(t, int64(3), out.LowStockCount)
	assert.Equal(t, int64(5), out.PendingReceipts)
	assert.Equal(t, int64(20), out.TotalReceipts)
	assert.Equal(t, int64(2), out.PendingDeliveries)
	assert.Equal(t, int64(15), out.TotalDeliveries)
	assert.Equal(t, int64(1), out.WaitingDeliveries)
	assert.Equal(t, int64(4), out.InternalTransfers)
}

func TestGetCounters_PropagaError(t *testing.T) {
	repo := &fakeDashboardRepo{failCounters: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetCounters(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documentos")
}

func TestGetStockSummary_NormalizaLaBusqueda(t *testing.T) {
	repo := &fakeDashboardRepo{
		summary: []repository.StockSummaryRow{
			{
				Product:       entity.Product{ID: 1, SKU: "SKU-001", Name: "Botón dorado", IsActive: true},
				TotalQuantity: decimal.NewFromInt(7),
			},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStockSummary(context.Background(), "BOTÓN")
	require.NoError(t, err)

	assert.Equal(t, "boton", repo.searchSeen, "minúsculas y sin acentos")
	require.Len(t, out, 1)
	assert.Equal(t, "Botón dorado", out[0].Product.Name)
	assert.True(t, decimal.NewFromInt(7).Equal(out[0].TotalQuantity))
}
