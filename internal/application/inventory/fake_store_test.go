package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// memStore almacenamiento en memoria: Run serializa las transacciones y restaura el estado si fn falla.
type memStore struct {
	mu        sync.Mutex
	products  map[int64]entity.Product
	movements []entity.Movement
	nextProd  int64
	nextMov   int64
	failNext  error // si no es nil, Append devuelve este error una vez
}

func newMemStore() *memStore {
	return &memStore{products: map[int64]entity.Product{}}
}

func (s *memStore) addProduct(p entity.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProd++
	p.ID = s.nextProd
	s.products[p.ID] = p
	return p.ID
}

func (s *memStore) stockOf(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].CurrentStock
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

func (s *memStore) Run(ctx context.Context, fn func(repository.StockRepository, repository.MovementRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prods := make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		prods[k] = v
	}
	movs := append([]entity.Movement(nil), s.movements...)
	nextMov := s.nextMov

	tx := &memTx{s: s}
	if err := fn(tx, tx); err != nil {
		s.products, s.movements, s.nextMov = prods, movs, nextMov
		return err
	}
	return nil
}

// memTx repositorios atados a la "transacción" (el lock ya está tomado).
type memTx struct{ s *memStore }

func (t *memTx) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := t.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *memTx) SetStock(_ context.Context, id int64, newStock int) error {
	p, ok := t.s.products[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.CurrentStock = newStock
	t.s.products[id] = p
	return nil
}

func (t *memTx) List(_ context.Context, _ repository.MovementFilter) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(t.s.movements))
	for i := len(t.s.movements) - 1; i >= 0; i-- {
		m := t.s.movements[i]
		out = append(out, &m)
	}
	return out, nil
}

func (t *memTx) Append(_ context.Context, m *entity.Movement) (int64, error) {
	if t.s.failNext != nil {
		err := t.s.failNext
		t.s.failNext = nil
		return 0, err
	}
	t.s.nextMov++
	m.ID = t.s.nextMov
	t.s.movements = append(t.s.movements, *m)
	return m.ID, nil
}

// memProducts implementa ProductRepository sobre el mismo memStore.
type memProducts struct{ s *memStore }

func (r memProducts) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.products), nil
}

func (r memProducts) List(context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) Create(_ context.Context, p *entity.Product) (int64, error) {
	p.ID = r.s.addProduct(*p)
	return p.ID, nil
}

func (r memProducts) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	kept := r.s.movements[:0]
	for _, m := range r.s.movements {
		if m.ProductID != id {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return true, nil
}
