package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL
// (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, doc_type, status, from_warehouse_id, from_location_id,
		to_warehouse_id, to_location_id, supplier_name, customer_name,
		created_by, created_at, updated_at, validated_at`

// Create inserta el documento y todas sus líneas.
func (r *DocumentRepo) Create(document *entity.Document) error {
	ctx := context.Background()
	query := `
		INSERT INTO documents (doc_type, status, from_warehouse_id, from_location_id,
			to_warehouse_id, to_location_id, supplier_name, customer_name,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		document.Type, document.Status,
		document.FromWarehouseID, document.FromLocationID,
		document.ToWarehouseID, document.ToLocationID,
		document.SupplierName, document.CustomerName,
		document.CreatedBy, document.CreatedAt, document.UpdatedAt,
	).Scan(&document.ID)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	lineQuery := `
		INSERT INTO document_lines (document_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	for i := range document.Lines {
		line := &document.Lines[i]
		line.DocumentID = document.ID
		if err := r.q.QueryRow(ctx, lineQuery, line.DocumentID, line.ProductID, line.Quantity).Scan(&line.ID); err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve el documento con sus líneas, o nil si no existe.
func (r *DocumentRepo) GetByID(id int64) (*entity.Document, error) {
	return r.getOne(`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
}

// GetForUpdate devuelve el documento con sus líneas bloqueando la fila del
// documento (SELECT FOR UPDATE): dos validaciones concurrentes del mismo
// documento se serializan sobre este lock.
func (r *DocumentRepo) GetForUpdate(id int64) (*entity.Document, error) {
	return r.getOne(`SELECT `+documentColumns+` FROM documents WHERE id = $1 FOR UPDATE`, id)
}

// ListByType lista documentos de un tipo, más recientes primero, con líneas.
func (r *DocumentRepo) ListByType(docType string, limit, offset int) ([]*entity.Document, error) {
	ctx := context.Background()
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE doc_type = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, docType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	ids := make([]int64, 0)
	byID := make(map[int64]*entity.Document)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
		ids = append(ids, d.ID)
		byID[d.ID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	// Líneas de toda la página en una sola consulta.
	lineRows, err := r.q.Query(ctx, `
		SELECT id, document_id, product_id, quantity
		FROM document_lines
		WHERE document_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var l entity.DocumentLine
		if err := lineRows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		if d, ok := byID[l.DocumentID]; ok {
			d.Lines = append(d.Lines, l)
		}
	}
	return list, lineRows.Err()
}

// MarkValidated fija status=DONE y estampa validated_at.
func (r *DocumentRepo) MarkValidated(id int64, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE documents SET status = $2, validated_at = $3, updated_at = $3
		WHERE id = $1`, id, entity.DocStatusDone, at)
	if err != nil {
		return fmt.Errorf("mark document validated: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DocumentRepo) getOne(query string, id int64) (*entity.Document, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, query, id)
	d, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, document_id, product_id, quantity
		FROM document_lines
		WHERE document_id = $1
		ORDER BY id`, d.ID)
	if err != nil {
		return nil, fmt.Errorf("get document lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		d.Lines = append(d.Lines, l)
	}
	return d, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.Type, &d.Status,
		&d.FromWarehouseID, &d.FromLocationID, &d.ToWarehouseID, &d.ToLocationID,
		&d.SupplierName, &d.CustomerName,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt, &d.ValidatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
