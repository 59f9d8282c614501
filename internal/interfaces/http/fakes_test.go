package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/stock"
)

// world es el estado en memoria que respalda los repos falsos de estos
// tests. Los handlers se ejercitan con los casos de uso reales; solo la
// persistencia es simulada.
type world struct {
	mu           sync.Mutex
	items        map[int64]entity.ItemType
	movements    map[int64]entity.Movement
	suppliers    map[int64]entity.Supplier
	nextItem     int64
	nextMovement int64
	nextSupplier int64
}

func newWorld() *world {
	return &world{
		items:        make(map[int64]entity.ItemType),
		movements:    make(map[int64]entity.Movement),
		suppliers:    make(map[int64]entity.Supplier),
		nextItem:     1,
		nextMovement: 1,
		nextSupplier: 1,
	}
}

func (w *world) seedSupplier(name string) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextSupplier
	w.nextSupplier++
	w.suppliers[id] = entity.Supplier{ID: id, Name: name}
	return id
}

func (w *world) seedItem(name string, boxQuantity, total int64) int64 {
	return w.seedItemWithAlert(name, boxQuantity, total, 0)
}

func (w *world) seedItemWithAlert(name string, boxQuantity, total, alertMin int64) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextItem
	w.nextItem++
	w.items[id] = entity.ItemType{
		ID:            id,
		Name:          name,
		UnitPrice:     decimal.RequireFromString("1.00"),
		BoxQuantity:   boxQuantity,
		AlertMin:      alertMin,
		TotalQuantity: total,
		SupplierID:    1,
	}
	return id
}

func (w *world) itemTotal(id int64) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.items[id].TotalQuantity
}

func (w *world) movementCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.movements)
}

// ledgerTotal recalcula el total de un artículo desde su historial, con
// la misma regla de conversión que la sentencia real. Llamar con mu
// tomado.
func (w *world) ledgerTotal(itemID int64) int64 {
	item := w.items[itemID]
	var total int64
	for id := range w.movements {
		m := w.movements[id]
		if m.ItemTypeID != itemID {
			continue
		}
		units := stock.UnitEquivalent(m.Quantity, m.IsBoxes, item.BoxQuantity)
		total += stock.Sign(entity.MovementKind(m.MovementTypeID)) * units
	}
	return total
}

// memTxRunner ejecuta fn directamente sobre el mundo. El ledger valida
// antes de escribir, así que estos tests no necesitan rollback; la
// atomicidad real se cubre en los tests del propio ledger.
type memTxRunner struct {
	w *world
}

func (r *memTxRunner) Run(
	_ context.Context,
	fn func(movRepo repository.MovementRepository, itemRepo repository.ItemTypeRepository) error,
) error {
	return fn(&memMovementRepo{w: r.w}, &memItemRepo{w: r.w})
}

type memMovementRepo struct {
	w *world
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	m.ID = r.w.nextMovement
	r.w.nextMovement++
	r.w.movements[m.ID] = *m
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	m, ok := r.w.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memMovementRepo) List(_ context.Context) ([]*entity.Movement, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*entity.Movement, 0, len(r.w.movements))
	for id := range r.w.movements {
		m := r.w.movements[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *memMovementRepo) ListByItemType(_ context.Context, itemTypeID int64) ([]*entity.Movement, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var out []*entity.Movement
	for id := range r.w.movements {
		if r.w.movements[id].ItemTypeID == itemTypeID {
			m := r.w.movements[id]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) Delete(_ context.Context, id int64) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	delete(r.w.movements, id)
	return nil
}

type memItemRepo struct {
	w *world
}

func (r *memItemRepo) Create(_ context.Context, item *entity.ItemType) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	item.ID = r.w.nextItem
	r.w.nextItem++
	r.w.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) CreateMany(ctx context.Context, items []*entity.ItemType) (int, error) {
	for _, item := range items {
		if err := r.Create(ctx, item); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

func (r *memItemRepo) GetByID(_ context.Context, id int64) (*entity.ItemType, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	item, ok := r.w.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.ItemType, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.ItemType, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*entity.ItemType, 0, len(r.w.items))
	for id := range r.w.items {
		item := r.w.items[id]
		out = append(out, &item)
	}
	return out, nil
}

func (r *memItemRepo) ListBySupplier(_ context.Context, supplierID int64) ([]*entity.ItemType, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var out []*entity.ItemType
	for id := range r.w.items {
		if r.w.items[id].SupplierID == supplierID {
			item := r.w.items[id]
			out = append(out, &item)
		}
	}
	return out, nil
}

func (r *memItemRepo) ListBelowAlert(_ context.Context) ([]*entity.ItemType, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var out []*entity.ItemType
	for id := range r.w.items {
		if item := r.w.items[id]; item.BelowAlert() {
			out = append(out, &item)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.ItemType) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	existing, ok := r.w.items[item.ID]
	if !ok {
		return nil
	}
	item.TotalQuantity = existing.TotalQuantity
	r.w.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) UpdateTotalQuantity(_ context.Context, id, totalQuantity int64) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	item, ok := r.w.items[id]
	if !ok {
		return nil
	}
	item.TotalQuantity = totalQuantity
	r.w.items[id] = item
	return nil
}

func (r *memItemRepo) RecomputeTotals(_ context.Context) (int64, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var repaired int64
	for id, item := range r.w.items {
		if computed := r.w.ledgerTotal(id); item.TotalQuantity != computed {
			item.TotalQuantity = computed
			r.w.items[id] = item
			repaired++
		}
	}
	return repaired, nil
}

func (r *memItemRepo) Delete(_ context.Context, id int64) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	delete(r.w.items, id)
	return nil
}

type memSupplierRepo struct {
	w *world
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	s.ID = r.w.nextSupplier
	r.w.nextSupplier++
	r.w.suppliers[s.ID] = *s
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	s, ok := r.w.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memSupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	for id := range r.w.suppliers {
		if r.w.suppliers[id].Name == name {
			s := r.w.suppliers[id]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.w.suppliers))
	for id := range r.w.suppliers {
		s := r.w.suppliers[id]
		out = append(out, &s)
	}
	return out, nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	r.w.suppliers[s.ID] = *s
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id int64) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	delete(r.w.suppliers, id)
	return nil
}

type memMovementTypeRepo struct {
	types map[int64]entity.MovementType
}

func newMemMovementTypeRepo() *memMovementTypeRepo {
	return &memMovementTypeRepo{types: map[int64]entity.MovementType{
		1: {ID: 1, Name: "Remover", Kind: entity.KindRemoval},
		2: {ID: 2, Name: "Adicionar", Kind: entity.KindAddition},
	}}
}

func (r *memMovementTypeRepo) GetByID(_ context.Context, id int64) (*entity.MovementType, error) {
	mt, ok := r.types[id]
	if !ok {
		return nil, nil
	}
	return &mt, nil
}

func (r *memMovementTypeRepo) GetByKind(_ context.Context, kind entity.MovementKind) (*entity.MovementType, error) {
	for id := range r.types {
		if r.types[id].Kind == kind {
			mt := r.types[id]
			return &mt, nil
		}
	}
	return nil, nil
}

func (r *memMovementTypeRepo) List(_ context.Context) ([]*entity.MovementType, error) {
	out := make([]*entity.MovementType, 0, len(r.types))
	for _, id := range []int64{1, 2} {
		mt := r.types[id]
		out = append(out, &mt)
	}
	return out, nil
}

// memReportRepo devuelve agregados en cero y las 12 filas mensuales.
// FindDrift sí compara contra el historial del mundo, igual que la
// consulta real.
type memReportRepo struct {
	w *world
}

func (memReportRepo) MovementsValue(context.Context, entity.MovementKind, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (memReportRepo) MovementsUnits(context.Context, entity.MovementKind, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (memReportRepo) CountMovements(context.Context, entity.MovementKind, time.Time, time.Time) (int, error) {
	return 0, nil
}

func (memReportRepo) LastPurchases(context.Context, int) ([]repository.PurchaseRow, error) {
	return nil, nil
}

func (memReportRepo) MonthlyFlow(context.Context) ([]repository.MonthlyFlowRow, error) {
	rows := make([]repository.MonthlyFlowRow, 12)
	for i := range rows {
		rows[i] = repository.MonthlyFlowRow{Month: i + 1, Purchases: decimal.Zero, Removals: decimal.Zero}
	}
	return rows, nil
}

func (r memReportRepo) FindDrift(context.Context) ([]repository.ItemDrift, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var drift []repository.ItemDrift
	for id, item := range r.w.items {
		if computed := r.w.ledgerTotal(id); item.TotalQuantity != computed {
			drift = append(drift, repository.ItemDrift{
				ItemTypeID: id,
				Cached:     item.TotalQuantity,
				Computed:   computed,
			})
		}
	}
	return drift, nil
}

type memDepartmentRepo struct{}

func (memDepartmentRepo) GetByID(_ context.Context, id int64) (*entity.Department, error) {
	if id == entity.StockDepartmentID {
		return &entity.Department{ID: id, Name: "Stock"}, nil
	}
	return nil, nil
}

func (memDepartmentRepo) List(_ context.Context) ([]*entity.Department, error) {
	return []*entity.Department{{ID: entity.StockDepartmentID, Name: "Stock"}}, nil
}
