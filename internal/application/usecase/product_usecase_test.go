package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

type fakeProducts struct {
	items     []*entity.Product
	createErr error
}

func (f *fakeProducts) Count(context.Context) (int, error) { return len(f.items), nil }

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) { return f.items, nil }

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	p.ID = int64(len(f.items) + 1)
	f.items = append(f.items, p)
	return p.ID, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) (bool, error) {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type notifierSpy struct{ calls int }

func (n *notifierSpy) InventoryChanged(context.Context) { n.calls++ }

func TestProductCreate_AppliesDefaults(t *testing.T) {
	repo := &fakeProducts{}
	spy := &notifierSpy{}
	uc := usecase.NewProductUseCase(repo, spy)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "  Pendrive 64GB "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Pendrive 64GB", resp.Name)
	assert.Equal(t, entity.DefaultCategory, resp.Category)
	assert.Equal(t, entity.DefaultSupplier, resp.Supplier)
	assert.Equal(t, entity.DefaultMinStock, resp.MinStock)
	assert.Zero(t, resp.CurrentStock)
	assert.True(t, resp.Cost.IsZero())
	assert.True(t, resp.Price.IsZero())
	assert.Equal(t, "out_of_stock", resp.StockStatus)
	assert.Equal(t, 1, spy.calls)
}

func TestProductCreate_NormalizesNumbers(t *testing.T) {
	repo := &fakeProducts{}
	uc := usecase.NewProductUseCase(repo, nil)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Mouse",
		Cost:         dto.NumericOf("12,50"),
		Price:        dto.NumericOf("1.234,56"),
		MinStock:     dto.NumericOf("4"),
		InitialStock: dto.NumericOf("7"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.50").Equal(resp.Cost))
	assert.True(t, decimal.RequireFromString("1234.56").Equal(resp.Price))
	assert.Equal(t, 4, resp.MinStock)
	assert.Equal(t, 7, resp.CurrentStock)
	assert.Equal(t, "normal", resp.StockStatus)
}

func TestProductCreate_Rejections(t *testing.T) {
	cases := map[string]dto.CreateProductRequest{
		"nombre vacío":        {Name: "   "},
		"costo inválido":      {Name: "X", Cost: dto.NumericOf("abc")},
		"precio negativo":     {Name: "X", Price: dto.NumericOf("-1")},
		"stock fraccionario":  {Name: "X", InitialStock: dto.NumericOf("2,5")},
		"mínimo negativo":     {Name: "X", MinStock: dto.NumericOf("-2")},
		"stock inicial texto": {Name: "X", InitialStock: dto.NumericOf("muitos")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeProducts{}
			_, err := usecase.NewProductUseCase(repo, nil).Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.items, "no debe insertarse ninguna fila")
		})
	}
}

func TestProductCreate_StorageError(t *testing.T) {
	repo := &fakeProducts{createErr: errors.New("conexión cerrada")}
	_, err := usecase.NewProductUseCase(repo, nil).Create(context.Background(), dto.CreateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestProductDelete(t *testing.T) {
	repo := &fakeProducts{items: []*entity.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	spy := &notifierSpy{}
	uc := usecase.NewProductUseCase(repo, spy)

	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 1), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), 0), domain.ErrInvalidInput)
	assert.Equal(t, 1, spy.calls)

	n, err := uc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

type fakeMovements struct {
	got  repository.MovementFilter
	list []*entity.Movement
}

func (f *fakeMovements) List(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	f.got = filter
	return f.list, nil
}

func (f *fakeMovements) Append(context.Context, *entity.Movement) (int64, error) { return 0, nil }

func TestMovementList_FormatsDate(t *testing.T) {
	repo := &fakeMovements{list: []*entity.Movement{{
		ID: 9, ProductID: 1, ProductName: "A", Category: "Áudio",
		Kind: entity.MovementOutbound, Quantity: 2,
		Date: time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC), MonthIndex: 6,
		Reason: "Venda Online", TotalValue: decimal.NewFromInt(100),
	}}}
	out, err := usecase.NewMovementUseCase(repo).List(context.Background(), repository.MovementFilter{Category: "Áudio"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "03/07/2025", out[0].Date)
	assert.Equal(t, "outbound", out[0].Kind)
	assert.Equal(t, "Áudio", repo.got.Category)
}
