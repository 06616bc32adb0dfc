// Package analytics contiene los casos de uso de lectura derivada: contadores
// del dashboard y resumen de existencias. Sin invariantes propios más allá de
// "refleja el estado confirmado"; todo se delega en consultas del repositorio.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/textutil"
)

// DashboardUseCase agrega KPIs de inventario y documentos.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetCounters construye el DashboardCountersDTO.
//
// Tres llamadas en paralelo:
//  1. CountActiveProducts     → TotalProducts
//  2. CountLowStockProducts   → LowStockCount
//  3. GetDocumentCounters     → contadores de recepciones/entregas/traslados
func (uc *DashboardUseCase) GetCounters(ctx context.Context) (*dto.DashboardCountersDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type docsResult struct {
		counters repository.DocumentCounters
		err      error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	docsCh := make(chan docsResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountActiveProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLowStockProducts(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		counters, err := uc.dashboardRepo.GetDocumentCounters(ctx)
		docsCh <- docsResult{counters, err}
	}()

	products := <-productsCh
	lowStock := <-lowStockCh
	docs := <-docsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos activos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if docs.err != nil {
		return nil, fmt.Errorf("dashboard: documentos: %w", docs.err)
	}

	return &dto.DashboardCountersDTO{
		TotalProducts:     products.n,
		LowStockCount:     lowStock.n,
		PendingReceipts:   docs.counters.PendingReceipts,
		TotalReceipts:     docs.counters.TotalReceipts,
		PendingDeliveries: docs.counters.PendingDeliveries,
		TotalDeliveries:   docs.counters.TotalDeliveries,
		WaitingDeliveries: docs.counters.WaitingDeliveries,
		InternalTransfers: docs.counters.InternalTransfers,
	}, nil
}

// GetStockSummary lista productos activos con su total de existencias sumado
// en todas las ubicaciones. El término de búsqueda se normaliza (minúsculas,
// sin acentos) antes de filtrar por nombre o SKU.
func (uc *DashboardUseCase) GetStockSummary(ctx context.Context, search string) ([]dto.StockSummaryItem, error) {
	rows, err := uc.dashboardRepo.GetStockSummary(ctx, textutil.FoldForSearch(search))
	if err != nil {
		return nil, fmt.Errorf("resumen de stock: %w", err)
	}
	items := make([]dto.StockSummaryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.StockSummaryItem{
			Product: dto.ProductResponse{
				ID:           row.Product.ID,
				SKU:          row.Product.SKU,
				Name:         row.Product.Name,
				UnitMeasure:  row.Product.UnitMeasure,
				ReorderLevel: row.Product.ReorderLevel,
				IsActive:     row.Product.IsActive,
				CreatedAt:    row.Product.CreatedAt,
				UpdatedAt:    row.Product.UpdatedAt,
			},
			TotalQuantity: row.TotalQuantity,
		})
	}
	return items, nil
}
