package ledger_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// storeState es el contenido del almacén en memoria. El TxRunner falso
// trabaja sobre una copia y solo la publica si fn termina sin error,
// reproduciendo la semántica Commit/Rollback del TxRunner real.
type storeState struct {
	items      map[int64]entity.ItemType
	movements  map[int64]entity.Movement
	nextMovID  int64
	nextItemID int64
}

func (s *storeState) clone() *storeState {
	out := &storeState{
		items:      make(map[int64]entity.ItemType, len(s.items)),
		movements:  make(map[int64]entity.Movement, len(s.movements)),
		nextMovID:  s.nextMovID,
		nextItemID: s.nextItemID,
	}
	for id, it := range s.items {
		out.items[id] = it
	}
	for id, m := range s.movements {
		out.movements[id] = m
	}
	return out
}

type fakeStore struct {
	mu sync.Mutex
	storeState
}

func newFakeStore(items ...entity.ItemType) *fakeStore {
	s := &fakeStore{storeState: storeState{
		items:      make(map[int64]entity.ItemType),
		movements:  make(map[int64]entity.Movement),
		nextMovID:  1,
		nextItemID: 1,
	}}
	for _, it := range items {
		s.items[it.ID] = it
		if it.ID >= s.nextItemID {
			s.nextItemID = it.ID + 1
		}
	}
	return s
}

func (s *fakeStore) movement(id int64) entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movements[id]
}

func (s *fakeStore) itemTotal(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id].TotalQuantity
}

func (s *fakeStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// fakeTxRunner serializa las transacciones con un mutex, igual que el
// FOR UPDATE sobre la fila del artículo serializa las reales.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(
	_ context.Context,
	fn func(movRepo repository.MovementRepository, itemRepo repository.ItemTypeRepository) error,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := r.store.storeState.clone()
	if err := fn(&fakeMovementRepo{s: tx}, &fakeItemRepo{s: tx}); err != nil {
		return err
	}
	r.store.storeState = *tx
	return nil
}

type fakeMovementRepo struct {
	s *storeState
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	r.s.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMovementRepo) List(_ context.Context) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for id := range r.s.movements {
		m := r.s.movements[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByItemType(_ context.Context, itemTypeID int64) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for id := range r.s.movements {
		if r.s.movements[id].ItemTypeID == itemTypeID {
			m := r.s.movements[id]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.movements, id)
	return nil
}

type fakeItemRepo struct {
	s *storeState
	// recomputed es lo que devuelve RecomputeTotals (solo reconciliación)
	recomputed int64
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.ItemType) error {
	if item.ID == 0 {
		item.ID = r.s.nextItemID
		r.s.nextItemID++
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) CreateMany(ctx context.Context, items []*entity.ItemType) (int, error) {
	for _, it := range items {
		if err := r.Create(ctx, it); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*entity.ItemType, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *fakeItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.ItemType, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.ItemType, error) {
	out := make([]*entity.ItemType, 0, len(r.s.items))
	for id := range r.s.items {
		it := r.s.items[id]
		out = append(out, &it)
	}
	return out, nil
}

func (r *fakeItemRepo) ListBySupplier(_ context.Context, supplierID int64) ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for id := range r.s.items {
		if r.s.items[id].SupplierID == supplierID {
			it := r.s.items[id]
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowAlert(_ context.Context) ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for id := range r.s.items {
		if it := r.s.items[id]; it.BelowAlert() {
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.ItemType) error {
	existing, ok := r.s.items[item.ID]
	if !ok {
		return nil
	}
	// Update nunca toca el total cacheado
	item.TotalQuantity = existing.TotalQuantity
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) UpdateTotalQuantity(_ context.Context, id, totalQuantity int64) error {
	it, ok := r.s.items[id]
	if !ok {
		return nil
	}
	it.TotalQuantity = totalQuantity
	it.UpdatedAt = time.Now()
	r.s.items[id] = it
	return nil
}

func (r *fakeItemRepo) RecomputeTotals(_ context.Context) (int64, error) {
	return r.recomputed, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.items, id)
	return nil
}

// fakeMovementTypeRepo sirve el vocabulario fijo desde memoria.
type fakeMovementTypeRepo struct {
	types map[int64]entity.MovementType
}

func newFakeMovementTypeRepo() *fakeMovementTypeRepo {
	return &fakeMovementTypeRepo{types: map[int64]entity.MovementType{
		1: {ID: 1, Name: "Remover", Kind: entity.KindRemoval},
		2: {ID: 2, Name: "Adicionar", Kind: entity.KindAddition},
	}}
}

func (r *fakeMovementTypeRepo) GetByID(_ context.Context, id int64) (*entity.MovementType, error) {
	mt, ok := r.types[id]
	if !ok {
		return nil, nil
	}
	return &mt, nil
}

func (r *fakeMovementTypeRepo) GetByKind(_ context.Context, kind entity.MovementKind) (*entity.MovementType, error) {
	for id := range r.types {
		if r.types[id].Kind == kind {
			mt := r.types[id]
			return &mt, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementTypeRepo) List(_ context.Context) ([]*entity.MovementType, error) {
	out := make([]*entity.MovementType, 0, len(r.types))
	for id := range r.types {
		mt := r.types[id]
		out = append(out, &mt)
	}
	return out, nil
}

// fakeReportRepo solo participa en la reconciliación: devuelve el drift
// que se le cargue. El resto de las consultas no se usan desde el ledger.
type fakeReportRepo struct {
	drift []repository.ItemDrift
}

func (r *fakeReportRepo) MovementsValue(context.Context, entity.MovementKind, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeReportRepo) MovementsUnits(context.Context, entity.MovementKind, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeReportRepo) CountMovements(context.Context, entity.MovementKind, time.Time, time.Time) (int, error) {
	return 0, nil
}

func (r *fakeReportRepo) LastPurchases(context.Context, int) ([]repository.PurchaseRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) MonthlyFlow(context.Context) ([]repository.MonthlyFlowRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) FindDrift(context.Context) ([]repository.ItemDrift, error) {
	return r.drift, nil
}
