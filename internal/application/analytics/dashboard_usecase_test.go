package analytics_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

type stubProducts struct{ items []*entity.Product }

func (s stubProducts) Count(context.Context) (int, error) { return len(s.items), nil }
func (s stubProducts) List(context.Context) ([]*entity.Product, error) { return s.items, nil }
func (s stubProducts) GetByID(context.Context, int64) (*entity.Product, error) { return nil, nil }
func (s stubProducts) Create(context.Context, *entity.Product) (int64, error) { return 0, nil }
func (s stubProducts) Delete(context.Context, int64) (bool, error) { return false, nil }

type stubMovements struct {
	items []*entity.Movement
	calls int
}

func (s *stubMovements) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	s.calls++
	out := []*entity.Movement{}
	for _, m := range s.items {
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *stubMovements) Append(context.Context, *entity.Movement) (int64, error) { return 0, nil }

type mapCache struct {
	data        map[string]*dto.DashboardSummaryDTO
	gen         int
	invalidated int
}

func key(month *int) string {
	if month == nil {
		return "all"
	}
	return string(rune('a' + *month))
}

func (c *mapCache) GetSummary(_ context.Context, month *int) (*dto.DashboardSummaryDTO, analytics.CacheToken, bool) {
	s, ok := c.data[key(month)]
	return s, analytics.CacheToken(strconv.Itoa(c.gen)), ok
}

func (c *mapCache) SetSummary(_ context.Context, token analytics.CacheToken, month *int, s *dto.DashboardSummaryDTO) {
	if string(token) != strconv.Itoa(c.gen) {
		return
	}
	c.data[key(month)] = s
}

func (c *mapCache) Invalidate(context.Context) {
	c.invalidated++
	c.gen++
	c.data = map[string]*dto.DashboardSummaryDTO{}
}

func intPtr(v int) *int { return &v }

func fixture() (stubProducts, *stubMovements) {
	products := stubProducts{items: []*entity.Product{
		{ID: 1, Name: "Fone", Category: "Áudio", Cost: decimal.NewFromInt(30), Price: decimal.NewFromInt(50), MinStock: 5, CurrentStock: 6},
		{ID: 2, Name: "Mouse", Category: "Periféricos", Cost: decimal.NewFromInt(10), Price: decimal.NewFromInt(25), MinStock: 4, CurrentStock: 2},
	}}
	movements := &stubMovements{items: []*entity.Movement{
		// más reciente primero
		{ID: 4, ProductID: 2, ProductName: "Mouse", Category: "Periféricos", Kind: entity.MovementOutbound, Quantity: 3, MonthIndex: 2, TotalValue: decimal.NewFromInt(75)},
		{ID: 3, ProductID: 1, ProductName: "Fone", Category: "Áudio", Kind: entity.MovementInbound, Quantity: 5, MonthIndex: 1, TotalValue: decimal.NewFromInt(150)},
		{ID: 2, ProductID: 1, ProductName: "Fone", Category: "Áudio", Kind: entity.MovementOutbound, Quantity: 4, MonthIndex: 1, TotalValue: decimal.NewFromInt(200)},
		{ID: 1, ProductID: 1, ProductName: "Fone", Category: "Áudio", Kind: entity.MovementOutbound, Quantity: 20, MonthIndex: 0, TotalValue: decimal.NewFromInt(1000)},
	}}
	return products, movements
}

func TestSummary_WholeYear(t *testing.T) {
	products, movements := fixture()
	uc := analytics.NewDashboardUseCase(products, movements, nil)

	s, err := uc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, s.Month)
	assert.Equal(t, "Visão Geral", s.Label)
	assert.True(t, decimal.NewFromInt(150).Equal(s.InboundValue))
	assert.True(t, decimal.NewFromInt(1275).Equal(s.OutboundValue))
	require.Len(t, s.RevenueByCategory, 2)
	assert.Equal(t, "Áudio", s.RevenueByCategory[0].Category)
	assert.True(t, decimal.NewFromInt(1200).Equal(s.RevenueByCategory[0].Revenue))

	assert.Equal(t, 8, s.TotalUnits)
	assert.True(t, decimal.NewFromInt(6*30+2*10).Equal(s.InventoryValue))
	assert.Equal(t, 1, s.CriticalProducts)
	assert.Equal(t, "low", s.Products[0].StockStatus)
	assert.Equal(t, "critical", s.Products[1].StockStatus)
}

func TestSummary_MonthSnapshotReversesLaterMovements(t *testing.T) {
	products, movements := fixture()
	uc := analytics.NewDashboardUseCase(products, movements, nil)

	s, err := uc.Summary(context.Background(), intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, "Fevereiro", s.Label)
	assert.True(t, decimal.NewFromInt(150).Equal(s.InboundValue))
	assert.True(t, decimal.NewFromInt(200).Equal(s.OutboundValue))
	// Mouse: 2 actuales + 3 vendidos en marzo
	assert.Equal(t, 5, s.Products[1].Stock)
	assert.Equal(t, 6, s.Products[0].Stock)

	// Enero: Fone 6 - 5 (entrada feb) + 4 (salida feb) = 5
	s, err = uc.Summary(context.Background(), intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Products[0].Stock)
	assert.Equal(t, 5, s.Products[1].Stock)
	assert.True(t, s.InboundValue.IsZero())
}

func TestSnapshotStock_ClampsAtZero(t *testing.T) {
	products := []*entity.Product{{ID: 1, CurrentStock: 1}}
	movements := []*entity.Movement{{ProductID: 1, Kind: entity.MovementInbound, Quantity: 10, MonthIndex: 5}}
	stock := analytics.SnapshotStock(products, movements, intPtr(2))
	assert.Equal(t, 0, stock[1])

	stock = analytics.SnapshotStock(products, movements, nil)
	assert.Equal(t, 1, stock[1])
}

func TestSummary_InvalidMonth(t *testing.T) {
	products, movements := fixture()
	_, err := analytics.NewDashboardUseCase(products, movements, nil).Summary(context.Background(), intPtr(12))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_UsesCacheUntilInvalidated(t *testing.T) {
	products, movements := fixture()
	cache := &mapCache{data: map[string]*dto.DashboardSummaryDTO{}}
	uc := analytics.NewDashboardUseCase(products, movements, cache)

	_, err := uc.Summary(context.Background(), nil)
	require.NoError(t, err)
	_, err = uc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, movements.calls)

	uc.InventoryChanged(context.Background())
	_, err = uc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, movements.calls)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCategoryDetail(t *testing.T) {
	products, movements := fixture()
	uc := analytics.NewDashboardUseCase(products, movements, nil)

	d, err := uc.CategoryDetail(context.Background(), "Áudio")
	require.NoError(t, err)
	assert.Equal(t, 24, d.TotalQuantity)
	assert.True(t, decimal.NewFromInt(1200).Equal(d.TotalRevenue))
	require.Len(t, d.Products, 1)
	assert.Equal(t, "Fone", d.Products[0].Name)

	d, err = uc.CategoryDetail(context.Background(), "Games")
	require.NoError(t, err)
	assert.Empty(t, d.Products)

	_, err = uc.CategoryDetail(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
