package visits_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: estado compartido + repos + TxRunner con rollback real
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado de BD en memoria para los tests del flujo de visitas.
type fakeStore struct {
	visits        map[int64]entity.Visit
	nextVisitID   int64
	services      []entity.VisitService
	nextServiceID int64
	products      []entity.VisitProduct
	nextProductID int64
	stock         map[int64]entity.StorageUnit
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		visits:        map[int64]entity.Visit{},
		nextVisitID:   1,
		nextServiceID: 1,
		nextProductID: 1,
		stock:         map[int64]entity.StorageUnit{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{
		visits:        make(map[int64]entity.Visit, len(s.visits)),
		nextVisitID:   s.nextVisitID,
		services:      append([]entity.VisitService(nil), s.services...),
		nextServiceID: s.nextServiceID,
		products:      append([]entity.VisitProduct(nil), s.products...),
		nextProductID: s.nextProductID,
		stock:         make(map[int64]entity.StorageUnit, len(s.stock)),
	}
	for k, v := range s.visits {
		c.visits[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	return c
}

// fakeTxRunner implementa visits.TxRunner: toma una instantánea del estado al
// empezar y la restaura si el callback falla, igual que un ROLLBACK.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) RunVisit(_ context.Context, fn func(
	visitRepo repository.VisitRepository,
	serviceRepo repository.VisitServiceRepository,
	productRepo repository.VisitProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(
		&fakeVisitRepo{store: r.store},
		&fakeVisitServiceRepo{store: r.store},
		&fakeVisitProductRepo{store: r.store},
		&fakeStockRepo{store: r.store},
	)
	if err != nil {
		*r.store = *snapshot
	}
	return err
}

// ── VisitRepository ──────────────────────────────────────────────────────────

type fakeVisitRepo struct{ store *fakeStore }

func (r *fakeVisitRepo) InfoByPatientName(string, string, *string) ([]repository.VisitInfoRow, error) {
	return nil, nil
}

func (r *fakeVisitRepo) Create(v *entity.Visit) (int64, error) {
	v.ID = r.store.nextVisitID
	r.store.nextVisitID++
	r.store.visits[v.ID] = *v
	return v.ID, nil
}

func (r *fakeVisitRepo) Update(v *entity.Visit) error {
	if _, ok := r.store.visits[v.ID]; !ok {
		return domain.ErrVisitNotFound
	}
	r.store.visits[v.ID] = *v
	return nil
}

func (r *fakeVisitRepo) Exists(id int64) (bool, error) {
	_, ok := r.store.visits[id]
	return ok, nil
}

func (r *fakeVisitRepo) SetReceipt(visitID, receiptID int64) error {
	v, ok := r.store.visits[visitID]
	if !ok {
		return domain.ErrVisitNotFound
	}
	v.ReceiptID = &receiptID
	r.store.visits[visitID] = v
	return nil
}

// ── VisitServiceRepository ───────────────────────────────────────────────────

type fakeVisitServiceRepo struct{ store *fakeStore }

func (r *fakeVisitServiceRepo) DeleteByVisit(visitID int64) (int64, error) {
	var kept []entity.VisitService
	var deleted int64
	for _, s := range r.store.services {
		if s.VisitID == visitID {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.store.services = kept
	return deleted, nil
}

func (r *fakeVisitServiceRepo) Insert(s *entity.VisitService) error {
	s.ID = r.store.nextServiceID
	r.store.nextServiceID++
	r.store.services = append(r.store.services, *s)
	return nil
}

func (r *fakeVisitServiceRepo) ListByVisit(visitID int64) ([]entity.VisitService, error) {
	var out []entity.VisitService
	for _, s := range r.store.services {
		if s.VisitID == visitID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeVisitServiceRepo) FindDuplicateGroups(visitID int64) ([]repository.DuplicateGroup, error) {
	counts := map[[2]int64]int64{}
	for _, s := range r.store.services {
		if s.VisitID == visitID {
			counts[[2]int64{s.ServiceID, s.Quantity}]++
		}
	}
	var groups []repository.DuplicateGroup
	for key, n := range counts {
		if n > 1 {
			groups = append(groups, repository.DuplicateGroup{ServiceID: key[0], Quantity: key[1], Count: n})
		}
	}
	return groups, nil
}

func (r *fakeVisitServiceRepo) DeleteDuplicates(visitID, serviceID, quantity int64) (int64, error) {
	minID := int64(-1)
	for _, s := range r.store.services {
		if s.VisitID == visitID && s.ServiceID == serviceID && s.Quantity == quantity {
			if minID == -1 || s.ID < minID {
				minID = s.ID
			}
		}
	}
	var kept []entity.VisitService
	var deleted int64
	for _, s := range r.store.services {
		if s.VisitID == visitID && s.ServiceID == serviceID && s.Quantity == quantity && s.ID != minID {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.store.services = kept
	return deleted, nil
}

// ── VisitProductRepository ───────────────────────────────────────────────────

type fakeVisitProductRepo struct{ store *fakeStore }

func (r *fakeVisitProductRepo) ListByVisit(visitID int64) ([]entity.VisitProduct, error) {
	var out []entity.VisitProduct
	for _, p := range r.store.products {
		if p.VisitID == visitID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeVisitProductRepo) DeleteByVisit(visitID int64) (int64, error) {
	var kept []entity.VisitProduct
	var deleted int64
	for _, p := range r.store.products {
		if p.VisitID == visitID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.store.products = kept
	return deleted, nil
}

func (r *fakeVisitProductRepo) Insert(p *entity.VisitProduct) error {
	p.ID = r.store.nextProductID
	r.store.nextProductID++
	r.store.products = append(r.store.products, *p)
	return nil
}

func (r *fakeVisitProductRepo) CountByVisit(visitID int64) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.VisitID == visitID {
			n++
		}
	}
	return n, nil
}

// ── StockRepository ──────────────────────────────────────────────────────────

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) GetForUpdate(unitID int64) (*entity.StorageUnit, error) {
	u, ok := r.store.stock[unitID]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (r *fakeStockRepo) Restock(unitID int64, qty decimal.Decimal) error {
	u, ok := r.store.stock[unitID]
	if !ok {
		return domain.ErrUnitNotFound
	}
	u.Amount = u.Amount.Add(qty)
	r.store.stock[unitID] = u
	return nil
}

func (r *fakeStockRepo) SetAmount(unitID int64, amount decimal.Decimal) error {
	u, ok := r.store.stock[unitID]
	if !ok {
		return domain.ErrUnitNotFound
	}
	u.Amount = amount
	r.store.stock[unitID] = u
	return nil
}
