package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado en memoria compartido por los fakes
// ──────────────────────────────────────────────────────────────────────────────

type binKey struct {
	productID   int64
	warehouseID int64
	locationID  int64
}

// memState simula la base de datos: documentos, stock, movimientos y datos de
// referencia. Los fakes de repositorio operan todos sobre la misma instancia.
type memState struct {
	docs        map[int64]*entity.Document
	stock       map[binKey]*entity.StockLevel
	moves       []*entity.StockMove
	products    map[int64]*entity.Product
	warehouses  map[int64]*entity.Warehouse
	locations   map[int64]*entity.Location
	nextStockID int64
	nextMoveID  int64
}

func newMemState() *memState {
	return &memState{
		docs:       make(map[int64]*entity.Document),
		stock:      make(map[binKey]*entity.StockLevel),
		products:   make(map[int64]*entity.Product),
		warehouses: make(map[int64]*entity.Warehouse),
		locations:  make(map[int64]*entity.Location),
	}
}

// clone copia profunda del estado, para simular el rollback transaccional.
func (s *memState) clone() *memState {
	c := newMemState()
	for id, d := range s.docs {
		dc := *d
		dc.Lines = append([]entity.DocumentLine(nil), d.Lines...)
		c.docs[id] = &dc
	}
	for k, l := range s.stock {
		lc := *l
		c.stock[k] = &lc
	}
	for _, m := range s.moves {
		mc := *m
		c.moves = append(c.moves, &mc)
	}
	for id, p := range s.products {
		pc := *p
		c.products[id] = &pc
	}
	for id, w := range s.warehouses {
		wc := *w
		c.warehouses[id] = &wc
	}
	for id, l := range s.locations {
		lc := *l
		c.locations[id] = &lc
	}
	c.nextStockID = s.nextStockID
	c.nextMoveID = s.nextMoveID
	return c
}

func (s *memState) quantityAt(productID, warehouseID, locationID int64) decimal.Decimal {
	if l, ok := s.stock[binKey{productID, warehouseID, locationID}]; ok {
		return l.QuantityOnHand
	}
	return decimal.Zero
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocRepo struct{ s *memState }

var _ repository.DocumentRepository = (*fakeDocRepo)(nil)

func (r *fakeDocRepo) Create(d *entity.Document) error {
	r.s.docs[d.ID] = d
	return nil
}

func (r *fakeDocRepo) GetByID(id int64) (*entity.Document, error) {
	d, ok := r.s.docs[id]
	if !ok {
		return nil, nil
	}
	dc := *d
	dc.Lines = append([]entity.DocumentLine(nil), d.Lines...)
	return &dc, nil
}

func (r *fakeDocRepo) GetForUpdate(id int64) (*entity.Document, error) {
	return r.GetByID(id)
}

func (r *fakeDocRepo) ListByType(docType string, limit, offset int) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.s.docs {
		if d.Type == docType {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocRepo) MarkValidated(id int64, at time.Time) error {
	d, ok := r.s.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Status = entity.DocStatusDone
	d.ValidatedAt = &at
	return nil
}

type fakeStockRepo struct{ s *memState }

var _ repository.StockLevelRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Get(productID, warehouseID, locationID int64) (*entity.StockLevel, error) {
	if l, ok := r.s.stock[binKey{productID, warehouseID, locationID}]; ok {
		lc := *l
		return &lc, nil
	}
	return &entity.StockLevel{
		ProductID:      productID,
		WarehouseID:    warehouseID,
		LocationID:     locationID,
		QuantityOnHand: decimal.Zero,
	}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID, locationID int64) (*entity.StockLevel, error) {
	return r.Get(productID, warehouseID, locationID)
}

func (r *fakeStockRepo) FirstByProductForUpdate(productID int64) (*entity.StockLevel, error) {
	var keys []binKey
	for k := range r.s.stock {
		if k.productID == productID {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].warehouseID != keys[j].warehouseID {
			return keys[i].warehouseID < keys[j].warehouseID
		}
		return keys[i].locationID < keys[j].locationID
	})
	lc := *r.s.stock[keys[0]]
	return &lc, nil
}

func (r *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	k := binKey{level.ProductID, level.WarehouseID, level.LocationID}
	if existing, ok := r.s.stock[k]; ok {
		existing.QuantityOnHand = level.QuantityOnHand
		existing.UpdatedAt = level.UpdatedAt
		level.ID = existing.ID
		return nil
	}
	r.s.nextStockID++
	level.ID = r.s.nextStockID
	lc := *level
	r.s.stock[k] = &lc
	return nil
}

type fakeMoveRepo struct{ s *memState }

var _ repository.StockMoveRepository = (*fakeMoveRepo)(nil)

func (r *fakeMoveRepo) Create(m *entity.StockMove) error {
	r.s.nextMoveID++
	m.ID = r.s.nextMoveID
	mc := *m
	r.s.moves = append(r.s.moves, &mc)
	return nil
}

func (r *fakeMoveRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for _, m := range r.s.moves {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMoveRepo) ListByDocument(documentID int64) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for _, m := range r.s.moves {
		if m.DocumentID != nil && *m.DocumentID == documentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMoveRepo) ListRecent(limit, offset int) ([]*entity.StockMove, error) {
	return r.s.moves, nil
}

type fakeProductRepo struct{ s *memState }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	pc := *p
	return &pc, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			pc := *p
			return &pc, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	pc := *p
	r.s.products[p.ID] = &pc
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if !onlyActive || p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	return nil
}

type fakeWarehouseRepo struct{ s *memState }

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	wc := *w
	return &wc, nil
}

func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if w.Code == code {
			wc := *w
			return &wc, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) First() (*entity.Warehouse, error) {
	var first *entity.Warehouse
	for _, w := range r.s.warehouses {
		if first == nil || w.ID < first.ID {
			first = w
		}
	}
	if first == nil {
		return nil, nil
	}
	wc := *first
	return &wc, nil
}

type fakeLocationRepo struct{ s *memState }

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.s.locations[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) GetByID(id int64) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	lc := *l
	return &lc, nil
}

func (r *fakeLocationRepo) GetByWarehouseAndCode(warehouseID int64, code string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.WarehouseID == warehouseID && l.Code == code {
			lc := *l
			return &lc, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.WarehouseID == warehouseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) FirstInWarehouse(warehouseID int64) (*entity.Location, error) {
	var first *entity.Location
	for _, l := range r.s.locations {
		if l.WarehouseID != warehouseID {
			continue
		}
		if first == nil || l.ID < first.ID {
			first = l
		}
	}
	if first == nil {
		return nil, nil
	}
	lc := *first
	return &lc, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner fake con semántica de rollback
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner simula la atomicidad de la transacción: toma una copia del
// estado antes de ejecutar el callback y la restaura si este falla, de modo
// que un error a mitad de documento no deja efectos parciales.
type fakeTxRunner struct{ s *memState }

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
) error) error {
	snap := r.s.clone()
	err := fn(&fakeDocRepo{r.s}, &fakeStockRepo{r.s}, &fakeMoveRepo{r.s})
	if err != nil {
		*r.s = *snap
	}
	return err
}

func (r *fakeTxRunner) RunAdjustment(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
) error) error {
	snap := r.s.clone()
	err := fn(
		&fakeProductRepo{r.s}, &fakeWarehouseRepo{r.s}, &fakeLocationRepo{r.s},
		&fakeStockRepo{r.s}, &fakeMoveRepo{r.s},
	)
	if err != nil {
		*r.s = *snap
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func qty(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func int64Ptr(v int64) *int64 { return &v }

// seedCatalog crea un producto, una bodega y una ubicación base.
func seedCatalog(s *memState) {
	s.products[1] = &entity.Product{ID: 1, SKU: "SKU-001", Name: "Tornillo M8", UnitMeasure: "UND", IsActive: true}
	s.warehouses[1] = &entity.Warehouse{ID: 1, Code: "PRINCIPAL", Name: "Bodega Principal"}
	s.locations[1] = &entity.Location{ID: 1, WarehouseID: 1, Code: "A-01", Name: "Estantería A-01"}
}

func seedDocument(s *memState, id int64, docType, status string, lines ...entity.DocumentLine) *entity.Document {
	doc := &entity.Document{
		ID:        id,
		Type:      docType,
		Status:    status,
		CreatedBy: 7,
		CreatedAt: time.Now(),
		Lines:     lines,
	}
	switch docType {
	case entity.DocTypeReceipt, entity.DocTypeAdjustment:
		doc.ToWarehouseID, doc.ToLocationID = int64Ptr(1), int64Ptr(1)
	case entity.DocTypeDelivery:
		doc.FromWarehouseID, doc.FromLocationID = int64Ptr(1), int64Ptr(1)
	}
	s.docs[id] = doc
	return doc
}

func seedStock(s *memState, productID, warehouseID, locationID int64, quantity string) {
	s.nextStockID++
	s.stock[binKey{productID, warehouseID, locationID}] = &entity.StockLevel{
		ID:             s.nextStockID,
		ProductID:      productID,
		WarehouseID:    warehouseID,
		LocationID:     locationID,
		QuantityOnHand: qty(quantity),
	}
}
