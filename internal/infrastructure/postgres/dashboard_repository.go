package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los KPIs del dashboard.
// Todo se deriva del estado confirmado; no mantiene estado propio.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountActiveProducts cuenta los productos activos del catálogo.
func (r *DashboardRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE is_active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active products: %w", err)
	}
	return n, nil
}

// CountLowStockProducts cuenta productos activos con umbral de reposición
// definido (> 0) cuya existencia total queda por debajo del umbral. Los
// productos sin filas de stock cuentan con total cero.
func (r *DashboardRepo) CountLowStockProducts(ctx context.Context) (int64, error) {
	query := `
		SELECT count(*) FROM (
			SELECT p.id
			FROM products p
			LEFT JOIN stock_levels s ON s.product_id = p.id
			WHERE p.is_active AND p.reorder_level > 0
			GROUP BY p.id, p.reorder_level
			HAVING COALESCE(sum(s.quantity_on_hand), 0) < p.reorder_level
		) low`
	var n int64
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return n, nil
}

// GetDocumentCounters agrega todos los contadores de documentos en una sola
// pasada sobre la tabla, con agregados FILTER.
func (r *DashboardRepo) GetDocumentCounters(ctx context.Context) (repository.DocumentCounters, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE doc_type = 'RECEIPT' AND status NOT IN ('DONE', 'CANCELED')),
			count(*) FILTER (WHERE doc_type = 'RECEIPT'),
			count(*) FILTER (WHERE doc_type = 'DELIVERY' AND status NOT IN ('DONE', 'CANCELED')),
			count(*) FILTER (WHERE doc_type = 'DELIVERY'),
			count(*) FILTER (WHERE doc_type = 'DELIVERY' AND status = 'WAITING'),
			count(*) FILTER (WHERE doc_type = 'TRANSFER' AND status IN ('WAITING', 'READY'))
		FROM documents`
	var c repository.DocumentCounters
	err := r.q.QueryRow(ctx, query).Scan(
		&c.PendingReceipts, &c.TotalReceipts,
		&c.PendingDeliveries, &c.TotalDeliveries,
		&c.WaitingDeliveries, &c.InternalTransfers,
	)
	if err != nil {
		return repository.DocumentCounters{}, fmt.Errorf("get document counters: %w", err)
	}
	return c, nil
}

// GetStockSummary lista productos activos con su existencia total sumada en
// todas las ubicaciones. search llega ya normalizado (minúsculas, sin
// acentos); del lado de la BD lo empareja la extensión unaccent (ver la
// migración inicial).
func (r *DashboardRepo) GetStockSummary(ctx context.Context, search string) ([]repository.StockSummaryRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.unit_measure, p.reorder_level, p.is_active,
			p.created_at, p.updated_at,
			COALESCE(sum(s.quantity_on_hand), 0) AS total_quantity
		FROM products p
		LEFT JOIN stock_levels s ON s.product_id = p.id
		WHERE p.is_active
			AND ($1 = '' OR unaccent(lower(p.name)) LIKE '%' || $1 || '%'
				OR unaccent(lower(p.sku)) LIKE '%' || $1 || '%')
		GROUP BY p.id
		ORDER BY p.name, p.id`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("get stock summary: %w", err)
	}
	defer rows.Close()

	var list []repository.StockSummaryRow
	for rows.Next() {
		var row repository.StockSummaryRow
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.UnitMeasure, &p.ReorderLevel, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt, &row.TotalQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan stock summary row: %w", err)
		}
		row.Product = p
		list = append(list, row)
	}
	return list, rows.Err()
}
